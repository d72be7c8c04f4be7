package model

import (
	"strings"
	"time"
)

// ProductView is the export-ready JSON shape of a product. Price is
// preformatted and list fields are joined, matching the row sent to the
// tabular sink.
type ProductView struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	SubCategory    string `json:"sub_category"`
	Price          string `json:"price"`
	Features       string `json:"features"`
	Specifications string `json:"specifications"`
	URL            string `json:"url"`
}

// CompanyView is the export-ready JSON shape of a company record.
type CompanyView struct {
	URL            string        `json:"url"`
	CompanyName    string        `json:"company_name"`
	CompanyType    string        `json:"company_type"`
	Description    string        `json:"company_description"`
	ExtractionDate string        `json:"extraction_date"`
	Emails         []string      `json:"emails"`
	Phones         []string      `json:"phones"`
	Addresses      []string      `json:"addresses"`
	Products       []ProductView `json:"products"`
}

// View flattens a product for output.
func (p *Product) View() ProductView {
	return ProductView{
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.MainCategory,
		SubCategory:    p.SubCategory,
		Price:          p.PriceLabel(),
		Features:       strings.Join(p.Features, ", "),
		Specifications: strings.Join(p.SpecLabels(0), ", "),
		URL:            p.URL,
	}
}

// View flattens a company record for output.
func (c *Company) View() CompanyView {
	products := make([]ProductView, 0, len(c.Products))
	for _, p := range c.Products {
		products = append(products, p.View())
	}
	v := CompanyView{
		URL:            c.URL,
		CompanyName:    c.Name,
		CompanyType:    c.Type,
		Description:    c.Description,
		ExtractionDate: c.ExtractedAt.Format(time.RFC3339),
		Emails:         c.Emails,
		Phones:         c.Phones,
		Addresses:      c.Addresses,
		Products:       products,
	}
	if v.Emails == nil {
		v.Emails = []string{}
	}
	if v.Phones == nil {
		v.Phones = []string{}
	}
	if v.Addresses == nil {
		v.Addresses = []string{}
	}
	return v
}
