// Package sanitizer turns free-form text into identifiers that are safe to
// use as CSS class/id selectors and as HTML element ids.
//
// Two cleaning functions form the core of the package:
//
//   - CleanCSSIdentifier – applies an ordered substitution Filter, keeps
//     literal double underscores (BEM-style "block__element"), strips every
//     character that is not a hyphen, an ASCII letter or digit, an underscore
//     or a code point from U+00A1 upwards, fixes an invalid leading "digit",
//     "-digit" or "--" with a single underscore and lower-cases the result.
//
//   - CleanID – maps spaces, underscores and square brackets to hyphens,
//     lower-cases with fixed en-US rules (never the process locale), keeps
//     only ASCII letters, digits, hyphens and underscores and collapses
//     hyphen runs.
//
// # Filters
//
// A Filter is an ordered list of Rule values. Rules are literal substring
// replacements applied one after another, so a later rule sees the output of
// the earlier ones. Filters can be built in code with NewFilter, parsed from
// "old=new" entries with ParseFilter or loaded from a YAML mapping with
// LoadFilterFile; YAML document order is preserved.
//
//	filter, err := sanitizer.NewFilter("+", "plus", "#", "sharp", " ", "-")
//	if err != nil {
//	    return err
//	}
//	class := sanitizer.CleanCSSIdentifier("Objective C++", filter) // "objective-cplusplus"
//
// Passing a nil Filter selects DefaultCSSFilter.
//
// # Pipelines
//
// Compose chains func(string) string transforms:
//
//	anchor := sanitizer.Compose(strings.TrimSpace, sanitizer.CleanID)
//	anchor("  Getting Started ") // "getting-started"
//
// # Error handling
//
// The cleaning functions are total and never return an error; any string,
// including the empty one, produces a (possibly empty) identifier. Only
// filter construction reports errors, see ErrEmptyFilterKey and friends.
//
// # Concurrency
//
// There is no package state beyond pre-compiled regular expressions, so every
// function is safe for concurrent use.
package sanitizer
