// Package normalize cleans extracted page text and filters out fragments that
// are navigation chrome rather than content.
package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// disallowed matches every rune outside the extraction allow-list: letters,
// digits, whitespace, common punctuation, currency symbols and brackets.
// Unicode space separators (NBSP and friends) count as whitespace; Go's \s
// alone is ASCII-only.
var disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Zs}\-.,;:'"$£€()+]`)

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// navNoise are substrings that mark a fragment as navigation text. Matching is
// case-insensitive.
var navNoise = []string{"menu", "search", "close", "open", "next", "previous", "submit"}

// Clean collapses whitespace runs to single spaces, strips runes outside the
// allow-list and trims the result. Input is NFC-normalized first so visually
// identical text cleans to the same string. Clean is idempotent.
func Clean(text string) string {
	text = norm.NFC.String(text)
	text = disallowed.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// IsUsable reports whether a cleaned fragment is worth keeping as content.
// Fragments shorter than 10 characters, fragments with fewer than two tokens
// and fragments containing navigation vocabulary are rejected.
func IsUsable(text string) bool {
	if utf8.RuneCountInString(text) < 10 {
		return false
	}
	if len(strings.Fields(text)) < 2 {
		return false
	}
	lower := strings.ToLower(text)
	for _, word := range navNoise {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}
