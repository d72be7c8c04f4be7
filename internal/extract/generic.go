package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/gostryker/internal/model"
	"github.com/hyperifyio/gostryker/internal/normalize"
)

// maxGenericProducts caps how many product sections the generic strategy
// scans on one page.
const maxGenericProducts = 2

type genericStrategy struct{}

func (genericStrategy) ExtractCompany(doc *goquery.Document, pageURL string, c *model.Company) {
	extractCompany(doc, c, "")
}

// ExtractProduct scans up to maxGenericProducts sections whose class mentions
// product, item or model. A section contributes a product only when its first
// heading yields a usable name.
func (genericStrategy) ExtractProduct(doc *goquery.Document, pageURL string, c *model.Company, runID string) {
	findByClass(doc.Selection, "section, div, article", "product", "item", "model").
		EachWithBreak(func(i int, section *goquery.Selection) bool {
			if i >= maxGenericProducts {
				return false
			}

			name := firstText(section.Find("h1, h2, h3"), normalize.Clean)
			if !normalize.IsUsable(name) {
				return true
			}

			p := model.NewProduct()
			p.Name = name
			p.Description = productDescription(section, "p, div", "description")
			p.Features = productFeatures(section, "li, div", "feature", "spec")
			p.URL = pageURL
			c.AddProduct(p)
			return true
		})
}
