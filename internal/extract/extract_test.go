package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/gostryker/internal/model"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestForURL_Dispatch(t *testing.T) {
	assert.IsType(t, appleStrategy{}, ForURL("https://www.apple.com/iphone-15-pro/"))
	assert.IsType(t, microsoftStrategy{}, ForURL("https://www.microsoft.com/en-us/microsoft-365"))
	assert.IsType(t, samsungStrategy{}, ForURL("https://www.samsung.com/us/smartphones/galaxy-s23-ultra/"))
	assert.IsType(t, genericStrategy{}, ForURL("https://acme.example.net/widgets"))
}

func TestExtractCompany_KnownDomainLiterals(t *testing.T) {
	doc := parseHTML(t, `<html><head><title>Something Else</title></head><body></body></html>`)

	c := model.NewCompany("https://www.apple.com/")
	ForURL(c.URL).ExtractCompany(doc, c.URL, c)
	assert.Equal(t, "Apple", c.Name)
	assert.Equal(t, "Technology", c.Type)

	c = model.NewCompany("https://www.samsung.com/")
	ForURL(c.URL).ExtractCompany(doc, c.URL, c)
	assert.Equal(t, "Samsung", c.Name)
}

func TestExtractCompany_NameFromTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Acme Widgets | Home", "Acme Widgets"},
		{"Acme Widgets – the widget people", "Acme Widgets"},
		{"Acme Widgets — About", "Acme Widgets"},
		{"Acme Widgets", "Acme Widgets"},
	}
	for _, tc := range cases {
		doc := parseHTML(t, `<html><head><title>`+tc.title+`</title></head><body></body></html>`)
		c := model.NewCompany("https://acme.test/")
		genericStrategy{}.ExtractCompany(doc, c.URL, c)
		assert.Equal(t, tc.want, c.Name, "title %q", tc.title)
		assert.Empty(t, c.Type, "generic path leaves type unset")
	}
}

func TestExtractCompany_DescriptionPreference(t *testing.T) {
	// Meta description wins.
	doc := parseHTML(t, `<html><head>
		<meta name="description" content="Primary meta description of the company.">
		<meta property="og:description" content="Social description.">
		</head><body><div class="about-us">Fallback body description here.</div></body></html>`)
	c := model.NewCompany("https://acme.test/")
	genericStrategy{}.ExtractCompany(doc, c.URL, c)
	assert.Equal(t, "Primary meta description of the company.", c.Description)

	// og:description is next.
	doc = parseHTML(t, `<html><head>
		<meta property="og:description" content="Social description of the company.">
		</head><body></body></html>`)
	c = model.NewCompany("https://acme.test/")
	genericStrategy{}.ExtractCompany(doc, c.URL, c)
	assert.Equal(t, "Social description of the company.", c.Description)

	// Class-heuristic fallback last.
	doc = parseHTML(t, `<html><head></head><body>
		<section class="company-overview">We build widgets for heavy industry.</section>
		</body></html>`)
	c = model.NewCompany("https://acme.test/")
	genericStrategy{}.ExtractCompany(doc, c.URL, c)
	assert.Equal(t, "We build widgets for heavy industry.", c.Description)
}

func TestExtractCompany_DescriptionTruncated(t *testing.T) {
	long := strings.Repeat("very long description ", 60) // > 500 chars
	doc := parseHTML(t, `<html><head><meta name="description" content="`+long+`"></head></html>`)
	c := model.NewCompany("https://acme.test/")
	genericStrategy{}.ExtractCompany(doc, c.URL, c)
	assert.LessOrEqual(t, len([]rune(c.Description)), model.MaxDescriptionRunes)
}
