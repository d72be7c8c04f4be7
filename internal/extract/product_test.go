package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/gostryker/internal/model"
)

func TestAppleProduct_FromURL(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<h1 class="product-headline">The most powerful iPhone we have ever made</h1>
		<div class="feature-block">Titanium body with aerospace grade finish</div>
		<p class="product-highlight">All day battery life on a single charge</p>
		</body></html>`)

	url := "https://www.apple.com/iphone-15-pro/"
	c := model.NewCompany(url)
	appleStrategy{}.ExtractProduct(doc, url, c, "run-1")

	p := c.PrimaryProduct()
	require.NotNil(t, p)
	assert.Equal(t, "iPhone 15 Pro", p.Name)
	assert.Equal(t, "Smartphones", p.MainCategory)
	assert.Equal(t, "The most powerful iPhone we have ever made", p.Description)
	assert.Equal(t, []string{
		"Titanium body with aerospace grade finish",
		"All day battery life on a single charge",
	}, p.Features)
	assert.Equal(t, url, p.URL)
}

func TestAppleProduct_PlainIphone(t *testing.T) {
	doc := parseHTML(t, `<html><body></body></html>`)
	url := "https://www.apple.com/iphone/"
	c := model.NewCompany(url)
	appleStrategy{}.ExtractProduct(doc, url, c, "run-1")
	require.NotNil(t, c.PrimaryProduct())
	assert.Equal(t, "iPhone", c.PrimaryProduct().Name)
}

func TestAppleProduct_UnknownURLAddsNothing(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="feature">A perfectly usable feature description</div>
		</body></html>`)
	url := "https://www.apple.com/support/"
	c := model.NewCompany(url)
	appleStrategy{}.ExtractProduct(doc, url, c, "run-1")
	assert.Empty(t, c.Products, "product without a name is never attached")
}

func TestMicrosoftProduct_Table(t *testing.T) {
	cases := []struct {
		url      string
		name     string
		category string
		sub      string
	}{
		{"https://www.microsoft.com/en-us/microsoft-365", "Microsoft 365", "Software", "Productivity Suite"},
		{"https://www.microsoft.com/surface", "Surface", "Computers", ""},
		{"https://www.microsoft.com/windows", "Windows", "Software", "Operating System"},
	}
	doc := parseHTML(t, `<html><body></body></html>`)
	for _, tc := range cases {
		c := model.NewCompany(tc.url)
		microsoftStrategy{}.ExtractProduct(doc, tc.url, c, "run-1")
		p := c.PrimaryProduct()
		require.NotNil(t, p, tc.url)
		assert.Equal(t, tc.name, p.Name)
		assert.Equal(t, tc.category, p.MainCategory)
		assert.Equal(t, tc.sub, p.SubCategory)
	}
}

func TestSamsungProduct_Galaxy(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="product-overview">The ultimate Galaxy experience with built in S Pen</div>
		<li class="feature-item">200MP camera with advanced nightography</li>
		</body></html>`)
	url := "https://www.samsung.com/us/smartphones/galaxy-s23-ultra/"
	c := model.NewCompany(url)
	samsungStrategy{}.ExtractProduct(doc, url, c, "run-1")

	p := c.PrimaryProduct()
	require.NotNil(t, p)
	assert.Equal(t, "Galaxy S23 Ultra", p.Name)
	assert.Equal(t, "Smartphones", p.MainCategory)
	assert.Equal(t, "Android Phones", p.SubCategory)
	assert.Equal(t, "The ultimate Galaxy experience with built in S Pen", p.Description)
}

func TestGenericProduct_SectionsAndHeadings(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="product-card">
			<h2>Widget Pro</h2>
			<p class="description">The flagship industrial widget for factories.</p>
			<ul>
				<li class="feature">Hardened titanium gear assembly</li>
				<li class="feature">Lifetime corrosion warranty included</li>
			</ul>
		</div>
		<section class="item-listing">
			<h3>Widget Mini</h3>
		</section>
		<div class="product-card">
			<h2>Widget Max</h2>
		</div>
		</body></html>`)

	url := "https://acme.test/catalog"
	c := model.NewCompany(url)
	genericStrategy{}.ExtractProduct(doc, url, c, "run-1")

	// Only the first two matching sections are scanned.
	require.Len(t, c.Products, 2)
	assert.Equal(t, "Widget Pro", c.Products[0].Name)
	assert.Equal(t, "The flagship industrial widget for factories.", c.Products[0].Description)
	assert.Equal(t, []string{
		"Hardened titanium gear assembly",
		"Lifetime corrosion warranty included",
	}, c.Products[0].Features)
	assert.Equal(t, "Widget Mini", c.Products[1].Name)
}

func TestGenericProduct_SkipsHeadinglessSection(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="product-card">
			<p class="description">A description without any heading above it.</p>
		</div>
		</body></html>`)
	c := model.NewCompany("https://acme.test/")
	genericStrategy{}.ExtractProduct(doc, "https://acme.test/", c, "run-1")
	assert.Empty(t, c.Products)
}

func TestProductFeatures_CapPerPass(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, `<div class="feature">Usable feature number %d here</div>`, i)
	}
	b.WriteString("</body></html>")

	doc := parseHTML(t, b.String())
	features := productFeatures(doc.Selection, "div", "feature")
	assert.Len(t, features, maxFeatures)
	assert.Equal(t, "Usable feature number 0 here", features[0])
}
