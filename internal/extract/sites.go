package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/gostryker/internal/model"
	"github.com/hyperifyio/gostryker/internal/normalize"
)

// maxFeatures caps the feature candidates considered per extractor pass.
const maxFeatures = 5

// productDescription picks the first class-matched element under root and
// returns its cleaned text when usable.
func productDescription(root *goquery.Selection, selector string, words ...string) string {
	desc := firstText(findByClass(root, selector, words...), normalize.Clean)
	if normalize.IsUsable(desc) {
		return desc
	}
	return ""
}

// productFeatures collects cleaned text from the first maxFeatures
// class-matched elements under root, keeping only usable fragments in
// document order.
func productFeatures(root *goquery.Selection, selector string, words ...string) []string {
	var features []string
	findByClass(root, selector, words...).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxFeatures {
			return false
		}
		if text := normalize.Clean(s.Text()); normalize.IsUsable(text) {
			features = append(features, text)
		}
		return true
	})
	return features
}

type appleStrategy struct{}

func (appleStrategy) ExtractCompany(doc *goquery.Document, pageURL string, c *model.Company) {
	extractCompany(doc, c, "Apple")
}

func (appleStrategy) ExtractProduct(doc *goquery.Document, pageURL string, c *model.Company, runID string) {
	p := model.NewProduct()
	lower := strings.ToLower(pageURL)
	switch {
	case strings.Contains(lower, "iphone"):
		if strings.Contains(lower, "15-pro") {
			p.Name = "iPhone 15 Pro"
		} else {
			p.Name = "iPhone"
		}
		p.MainCategory = "Smartphones"
	case strings.Contains(lower, "macbook"):
		p.Name = "MacBook"
		p.MainCategory = "Laptops"
	case strings.Contains(lower, "ipad"):
		p.Name = "iPad"
		p.MainCategory = "Tablets"
	}

	p.Description = productDescription(doc.Selection, "h1, h2", "headline")
	p.Features = productFeatures(doc.Selection, "div, p", "feature", "highlight")

	p.URL = pageURL
	c.AddProduct(p)
}

type microsoftStrategy struct{}

func (microsoftStrategy) ExtractCompany(doc *goquery.Document, pageURL string, c *model.Company) {
	extractCompany(doc, c, "Microsoft")
}

func (microsoftStrategy) ExtractProduct(doc *goquery.Document, pageURL string, c *model.Company, runID string) {
	p := model.NewProduct()
	lower := strings.ToLower(pageURL)
	switch {
	case strings.Contains(pageURL, "365"):
		p.Name = "Microsoft 365"
		p.MainCategory = "Software"
		p.SubCategory = "Productivity Suite"
	case strings.Contains(lower, "surface"):
		p.Name = "Surface"
		p.MainCategory = "Computers"
	case strings.Contains(lower, "windows"):
		p.Name = "Windows"
		p.MainCategory = "Software"
		p.SubCategory = "Operating System"
	}

	p.Description = productDescription(doc.Selection, "p, div", "description")
	p.Features = productFeatures(doc.Selection, "li, div", "feature", "benefit")

	p.URL = pageURL
	c.AddProduct(p)
}

type samsungStrategy struct{}

func (samsungStrategy) ExtractCompany(doc *goquery.Document, pageURL string, c *model.Company) {
	extractCompany(doc, c, "Samsung")
}

func (samsungStrategy) ExtractProduct(doc *goquery.Document, pageURL string, c *model.Company, runID string) {
	p := model.NewProduct()
	lower := strings.ToLower(pageURL)
	if strings.Contains(lower, "galaxy") && strings.Contains(lower, "s23") {
		p.Name = "Galaxy S23 Ultra"
		p.MainCategory = "Smartphones"
		p.SubCategory = "Android Phones"
	}

	p.Description = productDescription(doc.Selection, "h1, h2, div", "description", "overview")
	p.Features = productFeatures(doc.Selection, "div, li", "feature", "highlight")

	p.URL = pageURL
	c.AddProduct(p)
}
