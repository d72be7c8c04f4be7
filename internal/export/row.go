// Package export flattens a finished company record into the fixed tabular
// contract and appends it to a configured sink. Sinks are best-effort: the
// pipeline logs their failures and moves on.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperifyio/gostryker/internal/model"
)

// topSpecifications is how many specification pairs the row carries.
const topSpecifications = 3

// topFeatures is how many features the row carries.
const topFeatures = 5

// Header returns the 15 column names, in row order. Consumers of the sheet
// depend on this exact order.
func Header() []string {
	return []string{
		"URL",
		"Company Name",
		"Company Type",
		"Company Description",
		"Contact Emails",
		"Contact Phones",
		"Contact Addresses",
		"Product Name",
		"Product Category",
		"Product Price",
		"Product Description",
		"Product Features",
		"Product Specifications",
		"Additional Products",
		"Extraction Date",
	}
}

// Row flattens a company record into the 15-field export row. The first
// product is the primary one; any further products are summarized in the
// Additional Products column.
func Row(c *model.Company) []string {
	var (
		productName  string
		productCat   string
		productPrice = "N/A"
		productDesc  string
		features     string
		specs        string
	)
	if p := c.PrimaryProduct(); p != nil {
		productName = p.Name
		productCat = p.MainCategory
		productPrice = p.PriceLabel()
		productDesc = model.TruncateRunes(p.Description, model.MaxDescriptionRunes)
		f := p.Features
		if len(f) > topFeatures {
			f = f[:topFeatures]
		}
		features = strings.Join(f, "; ")
		specs = strings.Join(p.SpecLabels(topSpecifications), "; ")
	}

	var additional []string
	if len(c.Products) > 1 {
		for _, p := range c.Products[1:] {
			additional = append(additional, fmt.Sprintf("%s (%s, %s)", p.Name, p.MainCategory, p.PriceLabel()))
		}
	}

	return []string{
		c.URL,
		c.Name,
		c.Type,
		model.TruncateRunes(c.Description, model.MaxDescriptionRunes),
		strings.Join(c.Emails, "; "),
		strings.Join(c.Phones, "; "),
		strings.Join(c.Addresses, "; "),
		productName,
		productCat,
		productPrice,
		productDesc,
		features,
		specs,
		strings.Join(additional, " | "),
		c.ExtractedAt.Format(time.RFC3339),
	}
}
