// Package model holds the company and product records built up during one
// extraction run. A record set is created fresh per run and mutated only by
// that run's pipeline, so no locking is needed here.
package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MaxDescriptionRunes bounds company and product descriptions at ingestion.
const MaxDescriptionRunes = 500

// MaxPhones bounds the phone list after deduplication.
const MaxPhones = 5

// Product is a single product extracted from a page.
type Product struct {
	Name           string
	Description    string
	MainCategory   string
	SubCategory    string
	Price          float64
	Currency       string
	Features       []string
	Specifications map[string]string
	Images         []string
	URL            string
}

// NewProduct returns a Product with the default currency set.
func NewProduct() *Product {
	return &Product{
		Currency:       "USD",
		Specifications: map[string]string{},
	}
}

// PriceLabel formats the price for export. Zero means unknown and renders as
// "N/A".
func (p *Product) PriceLabel() string {
	if p.Price <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%g %s", p.Price, p.Currency)
}

// SpecLabels returns "key: value" pairs in sorted key order, capped at n.
// Sorting keeps the export contract stable across map iteration orders.
func (p *Product) SpecLabels(n int) []string {
	keys := make([]string, 0, len(p.Specifications))
	for k := range p.Specifications {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+": "+p.Specifications[k])
	}
	return out
}

// Company is the record one run accumulates and exports.
type Company struct {
	URL         string
	Name        string
	Type        string
	Description string
	Emails      []string
	Phones      []string
	Addresses   []string
	Products    []*Product
	ExtractedAt time.Time

	seenEmails map[string]struct{}
	seenPhones map[string]struct{}
}

// NewCompany creates an empty record for the given URL, stamped with the
// extraction time.
func NewCompany(url string) *Company {
	return &Company{
		URL:         url,
		ExtractedAt: time.Now(),
		seenEmails:  map[string]struct{}{},
		seenPhones:  map[string]struct{}{},
	}
}

// SetDescription stores a description truncated to MaxDescriptionRunes.
func (c *Company) SetDescription(desc string) {
	c.Description = TruncateRunes(desc, MaxDescriptionRunes)
}

// AddEmail appends a lowercased email, skipping duplicates.
func (c *Company) AddEmail(email string) {
	email = strings.ToLower(email)
	if _, ok := c.seenEmails[email]; ok {
		return
	}
	c.seenEmails[email] = struct{}{}
	c.Emails = append(c.Emails, email)
}

// AddPhone appends a normalized phone number, skipping duplicates and
// enforcing the MaxPhones cap in first-seen order.
func (c *Company) AddPhone(phone string) {
	if _, ok := c.seenPhones[phone]; ok {
		return
	}
	c.seenPhones[phone] = struct{}{}
	if len(c.Phones) >= MaxPhones {
		return
	}
	c.Phones = append(c.Phones, phone)
}

// AddAddress appends an address, skipping short fragments and exact
// duplicates. Document order is preserved.
func (c *Company) AddAddress(addr string) {
	if len(addr) <= 10 {
		return
	}
	for _, existing := range c.Addresses {
		if existing == addr {
			return
		}
	}
	c.Addresses = append(c.Addresses, addr)
}

// AddProduct attaches a product to the company. Products without a name are
// discarded; the first attached product is the primary one.
func (c *Company) AddProduct(p *Product) bool {
	if p == nil || p.Name == "" {
		return false
	}
	c.Products = append(c.Products, p)
	return true
}

// PrimaryProduct returns the first extracted product, or nil.
func (c *Company) PrimaryProduct() *Product {
	if len(c.Products) == 0 {
		return nil
	}
	return c.Products[0]
}

// TruncateRunes cuts s to at most n runes.
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
