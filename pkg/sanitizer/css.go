package sanitizer

import "strings"

// doubleUnderscore survives the filter untouched unless the filter has its own rule for it.
const doubleUnderscore = "__"

// CleanCSSIdentifier converts a string into a valid CSS class or id selector.
// A nil filter selects DefaultCSSFilter.
//
// The filter rules are applied in order, "__" is preserved unless the filter
// defines a rule for it, characters outside [-0-9A-Za-z_] and below U+00A1
// are stripped, a leading digit, "-digit" or "--" is replaced by a single
// underscore, and the result is lower-cased.
//
//	sanitizer.CleanCSSIdentifier("My Class[Name]", nil) // "my-class-name"
//	sanitizer.CleanCSSIdentifier("my__class", nil)      // "my__class"
//	sanitizer.CleanCSSIdentifier("--abc", nil)          // "_abc"
func CleanCSSIdentifier(identifier string, filter Filter) string {
	if filter == nil {
		filter = DefaultCSSFilter()
	}

	if filter.Has(doubleUnderscore) {
		identifier = filter.apply(identifier)
	} else {
		segments := strings.Split(identifier, doubleUnderscore)
		for i, segment := range segments {
			segments[i] = filter.apply(segment)
		}
		identifier = strings.Join(segments, doubleUnderscore)
	}

	identifier = strings.Map(func(r rune) rune {
		if isCSSIdentifierRune(r) {
			return r
		}
		return -1
	}, identifier)

	if loc := invalidCSSPrefixRegex.FindStringIndex(identifier); loc != nil {
		identifier = "_" + identifier[loc[1]:]
	}

	return strings.ToLower(identifier)
}

// CSSIdentifierWith returns a CleanCSSIdentifier transform bound to filter,
// ready for Compose pipelines.
func CSSIdentifierWith(filter Filter) func(string) string {
	return func(s string) string {
		return CleanCSSIdentifier(s, filter)
	}
}

// IsValidCSSIdentifier reports whether s is non-empty and obeys the character
// set and leading-character rules enforced by CleanCSSIdentifier.
func IsValidCSSIdentifier(s string) bool {
	if s == "" || invalidCSSPrefixRegex.MatchString(s) {
		return false
	}
	for _, r := range s {
		if !isCSSIdentifierRune(r) {
			return false
		}
	}
	return true
}

func isCSSIdentifierRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		r >= 0x00A1
}
