package sanitizer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule replaces every occurrence of Old with New.
type Rule struct {
	Old string
	New string
}

// Filter is an ordered substitution table. Rules run one after another,
// each one over the output of the previous rules.
//
// A nil Filter passed to CleanCSSIdentifier selects DefaultCSSFilter,
// while an empty non-nil Filter applies no replacements at all.
type Filter []Rule

// DefaultCSSFilter returns a fresh copy of the default CSS identifier filter.
func DefaultCSSFilter() Filter {
	return Filter{
		{Old: " ", New: "-"},
		{Old: "_", New: "-"},
		{Old: "/", New: "-"},
		{Old: "[", New: "-"},
		{Old: "]", New: ""},
	}
}

// NewFilter builds a filter from old/new argument pairs, keeping their order.
//
//	f, err := sanitizer.NewFilter(" ", "-", "+", "plus")
func NewFilter(pairs ...string) (Filter, error) {
	if len(pairs)%2 != 0 {
		return nil, ErrOddFilterPairs
	}

	f := make(Filter, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		f = append(f, Rule{Old: pairs[i], New: pairs[i+1]})
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFilter parses entries in old=new form. Only the first "=" separates
// the key from the value, so values may contain "=" but keys may not.
func ParseFilter(entries []string) (Filter, error) {
	f := make(Filter, 0, len(entries))
	for _, entry := range entries {
		old, replacement, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilterEntry, entry)
		}
		f = append(f, Rule{Old: old, New: replacement})
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadFilterFile reads a YAML mapping of old: new pairs in document order.
func LoadFilterFile(path string) (Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filter file: %w", err)
	}

	var f Filter
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode filter file %s: %w", path, err)
	}
	if f == nil {
		f = Filter{}
	}
	return f, nil
}

// UnmarshalYAML decodes a YAML mapping into rules. Go maps lose key order,
// so the mapping node is walked directly.
func (f *Filter) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return ErrInvalidFilterFile
	}

	rules := make(Filter, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: line %d", ErrInvalidFilterFile, key.Line)
		}
		rules = append(rules, Rule{Old: key.Value, New: value.Value})
	}

	if err := rules.Validate(); err != nil {
		return err
	}
	*f = rules
	return nil
}

// Validate reports rules with an empty key.
func (f Filter) Validate() error {
	var errs []error
	for i, r := range f {
		if r.Old == "" {
			errs = append(errs, fmt.Errorf("%w: rule %d", ErrEmptyFilterKey, i))
		}
	}
	return errors.Join(errs...)
}

// Has reports whether the filter defines a rule for old.
func (f Filter) Has(old string) bool {
	for _, r := range f {
		if r.Old == old {
			return true
		}
	}
	return false
}

// apply runs the rules sequentially. Rules with an empty key are skipped.
func (f Filter) apply(s string) string {
	for _, r := range f {
		if r.Old == "" {
			continue
		}
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}
