package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/gostryker/internal/model"
	"github.com/hyperifyio/gostryker/internal/normalize"
)

// dashSuffix strips a trailing "- rest" / "– rest" / "— rest" segment from a
// page title when deriving a company name.
var dashSuffix = regexp.MustCompile(`\s*[-–—]\s*.*$`)

// companyFromTitle derives a company name from the page <title>: the part
// before the first "|", with any dash-separated suffix removed.
func companyFromTitle(doc *goquery.Document) string {
	title := doc.Find("title").First().Text()
	name := strings.TrimSpace(strings.SplitN(title, "|", 2)[0])
	name = dashSuffix.ReplaceAllString(name, "")
	return normalize.Clean(name)
}

// pageDescription finds the best description source on the page: the
// description meta tag, then og:description, then the first div or section
// whose class mentions description, overview or about.
func pageDescription(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && content != "" {
		return content
	}
	if content, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok && content != "" {
		return content
	}
	sel := findByClass(doc.Selection, "div, section", "description", "overview", "about")
	if sel.Length() > 0 {
		return sel.First().Text()
	}
	return ""
}

// extractCompany fills in name, type and description. Known domains carry a
// literal name and the "Technology" type; the generic path derives the name
// from the title and leaves the type unset.
func extractCompany(doc *goquery.Document, c *model.Company, literalName string) {
	if literalName != "" {
		c.Name = literalName
		c.Type = "Technology"
	} else {
		c.Name = companyFromTitle(doc)
	}
	if desc := pageDescription(doc); desc != "" {
		c.SetDescription(normalize.Clean(desc))
	}
}
