package sanitizer

import "errors"

// Package-specific errors
var (
	// ErrEmptyFilterKey is returned when a filter rule has an empty substring to replace
	ErrEmptyFilterKey = errors.New("filter rule key must not be empty")

	// ErrOddFilterPairs is returned when NewFilter receives an incomplete old/new pair
	ErrOddFilterPairs = errors.New("filter requires an even number of old/new arguments")

	// ErrInvalidFilterEntry is returned when a filter entry is not in old=new form
	ErrInvalidFilterEntry = errors.New("filter entry must be in old=new form")

	// ErrInvalidFilterFile is returned when a filter file is not a YAML mapping of strings
	ErrInvalidFilterFile = errors.New("filter file must contain a mapping of strings")
)
