// Package extract turns parsed page content into company, contact and product
// data. Site-specific strategies are selected by URL substring from a closed,
// ordered rule table; everything else falls through to the generic strategy.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/gostryker/internal/model"
)

// Strategy populates a company record from parsed content. Implementations
// append and set fields but never remove data written by an earlier stage.
type Strategy interface {
	ExtractCompany(doc *goquery.Document, pageURL string, c *model.Company)
	ExtractProduct(doc *goquery.Document, pageURL string, c *model.Company, runID string)
}

type rule struct {
	domain   string
	strategy Strategy
}

// rules is ordered; the first matching rule wins.
var rules = []rule{
	{"apple.com", appleStrategy{}},
	{"microsoft.com", microsoftStrategy{}},
	{"samsung.com", samsungStrategy{}},
}

// ForURL selects the extraction strategy for a URL.
func ForURL(pageURL string) Strategy {
	for _, r := range rules {
		if strings.Contains(pageURL, r.domain) {
			return r.strategy
		}
	}
	return genericStrategy{}
}

// classContains reports whether the selection's class attribute contains any
// of the given substrings, case-insensitively.
func classContains(s *goquery.Selection, words ...string) bool {
	cls, ok := s.Attr("class")
	if !ok {
		return false
	}
	cls = strings.ToLower(cls)
	for _, w := range words {
		if strings.Contains(cls, w) {
			return true
		}
	}
	return false
}

// findByClass returns elements under root matching selector whose class
// attribute contains any of words, in document order.
func findByClass(root *goquery.Selection, selector string, words ...string) *goquery.Selection {
	return root.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return classContains(s, words...)
	})
}

// firstText returns the cleaned text of the first element in sel, or "".
func firstText(sel *goquery.Selection, clean func(string) string) string {
	if sel.Length() == 0 {
		return ""
	}
	return clean(sel.First().Text())
}
