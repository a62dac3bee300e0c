package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// htmlIDReplacer maps separators to hyphens before filtering.
var htmlIDReplacer = strings.NewReplacer(
	" ", "-",
	"_", "-",
	"[", "-",
	"]", "-",
)

// CleanID converts a string into a valid HTML element id.
//
// Spaces, underscores and square brackets become hyphens, the text is
// lower-cased with fixed en-US rules, everything except ASCII letters,
// digits, hyphens and underscores is stripped (colons and periods are legal
// in HTML4 ids but not in CSS selectors), and hyphen runs collapse to one.
//
//	sanitizer.CleanID("Hello World_Test[1]") // "hello-world-test-1-"
//	sanitizer.CleanID("a---b")               // "a-b"
func CleanID(id string) string {
	id = htmlIDReplacer.Replace(id)

	// A Caser keeps internal state and must not be shared between goroutines.
	id = cases.Lower(language.AmericanEnglish).String(id)

	id = strings.Map(func(r rune) rune {
		if isHTMLIDRune(r) {
			return r
		}
		return -1
	}, id)

	return hyphenRunRegex.ReplaceAllString(id, "-")
}

// IsValidHTMLID reports whether s is non-empty, uses only [A-Za-z0-9_-]
// and has no repeated hyphens.
func IsValidHTMLID(s string) bool {
	if s == "" || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if !isHTMLIDRune(r) {
			return false
		}
	}
	return true
}

func isHTMLIDRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z')
}
