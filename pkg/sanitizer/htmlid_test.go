package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/identkit/pkg/sanitizer"
)

func TestCleanID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "replaces separators and lowercases",
			input:    "Hello World_Test[1]",
			expected: "hello-world-test-1-",
		},
		{
			name:     "collapses hyphen runs",
			input:    "a---b",
			expected: "a-b",
		},
		{
			name:     "collapses hyphens created by replacements",
			input:    "a _ b",
			expected: "a-b",
		},
		{
			name:     "strips colons and periods",
			input:    "Foo.Bar:Baz",
			expected: "foobarbaz",
		},
		{
			name:     "strips non-ascii letters",
			input:    "Ünïcödé",
			expected: "ncd",
		},
		{
			name:     "dotted capital I does not keep the combining dot",
			input:    "İstanbul",
			expected: "istanbul",
		},
		{
			name:     "kelvin sign folds to ascii k",
			input:    "Kelvin \u212a",
			expected: "kelvin-k",
		},
		{
			name:     "brackets on both sides",
			input:    "[id]",
			expected: "-id-",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "-",
		},
		{
			name:     "keeps digits",
			input:    "Section 42",
			expected: "section-42",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.CleanID(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCleanID_SecondPassIsNoop(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"Hello World_Test[1]", "a---b", "Section 42"} {
		first := sanitizer.CleanID(input)
		assert.Equal(t, first, sanitizer.CleanID(first), "input %q", input)
	}
}

func TestIsValidHTMLID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "simple", input: "main-content", expected: true},
		{name: "underscore", input: "main_content", expected: true},
		{name: "leading digit", input: "1st", expected: true},
		{name: "empty", input: "", expected: false},
		{name: "double hyphen", input: "a--b", expected: false},
		{name: "period", input: "a.b", expected: false},
		{name: "non-ascii", input: "café", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.IsValidHTMLID(tt.input))
		})
	}
}
