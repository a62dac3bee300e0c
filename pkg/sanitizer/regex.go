package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// CSS identifiers cannot start with a digit, two hyphens, or a hyphen followed by a digit
	invalidCSSPrefixRegex = regexp.MustCompile(`^(?:[0-9]|-[0-9]|--)`)

	// Hyphen runs in HTML ids
	hyphenRunRegex = regexp.MustCompile(`-{2,}`)
)
