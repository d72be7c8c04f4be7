package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/gostryker/internal/model"
	"github.com/hyperifyio/gostryker/internal/normalize"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// phonePattern matches North-American style numbers with optional +1
	// prefix and common separators.
	phonePattern   = regexp.MustCompile(`(?:\+1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	phoneSeparator = regexp.MustCompile(`[-.\s()]`)
)

// emailNoise marks placeholder addresses that never belong to a real contact.
// A term matches as a substring of the local part or as a whole domain label,
// so "jane.doe@example-company.org" survives while "test@example.com" does not.
var emailNoise = []string{"example", "test", "user", "email"}

func isNoiseEmail(email string) bool {
	local, domain, _ := strings.Cut(email, "@")
	if containsAny(local, emailNoise) {
		return true
	}
	for _, label := range strings.Split(domain, ".") {
		for _, term := range emailNoise {
			if label == term {
				return true
			}
		}
	}
	return false
}

// Contacts extracts emails, phone numbers and postal addresses into the
// company record. Emails and phones are scanned from the raw content so that
// script- or attribute-embedded values are still found; addresses come from
// class-annotated elements in document order.
func Contacts(doc *goquery.Document, raw []byte, c *model.Company) {
	content := string(raw)

	for _, match := range emailPattern.FindAllString(content, -1) {
		lower := strings.ToLower(match)
		if isNoiseEmail(lower) {
			continue
		}
		c.AddEmail(lower)
	}

	for _, match := range phonePattern.FindAllString(content, -1) {
		cleaned := phoneSeparator.ReplaceAllString(match, "")
		if len(cleaned) < 10 {
			continue
		}
		switch {
		case strings.HasPrefix(cleaned, "1"):
			cleaned = "+" + cleaned
		case !strings.HasPrefix(cleaned, "+"):
			cleaned = "+1" + cleaned
		}
		c.AddPhone(cleaned)
	}

	findByClass(doc.Selection, "div, p", "address", "location").Each(func(_ int, s *goquery.Selection) {
		c.AddAddress(normalize.Clean(s.Text()))
	})
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
