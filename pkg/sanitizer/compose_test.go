package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/identkit/pkg/sanitizer"
)

func TestCompose_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "Main Nav",
			transforms: []func(string) string{sanitizer.CleanID},
			expected:   "main-nav",
		},
		{
			name:  "applies transforms in sequence",
			input: "  Main Nav  ",
			transforms: []func(string) string{
				strings.TrimSpace,
				sanitizer.CSSIdentifierWith(nil),
			},
			expected: "main-nav",
		},
		{
			name:  "order matters",
			input: "  Main Nav  ",
			transforms: []func(string) string{
				sanitizer.CSSIdentifierWith(nil),
				strings.TrimSpace,
			},
			expected: "_main-nav--",
		},
		{
			name:       "handles empty transforms slice",
			input:      "Main Nav",
			transforms: []func(string) string{},
			expected:   "Main Nav",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				strings.TrimSpace,
				sanitizer.CleanID,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.Compose(tt.transforms...)(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	cssClass := sanitizer.Compose(
		strings.TrimSpace,
		sanitizer.CSSIdentifierWith(nil),
	)

	inputs := map[string]string{
		"  Primary Button ": "primary-button",
		"card__title":       "card__title",
		"2 columns":         "_-columns",
		"":                  "",
	}

	for input, expected := range inputs {
		assert.Equal(t, expected, cssClass(input), "input %q", input)
	}

	t.Run("empty pipeline is identity", func(t *testing.T) {
		t.Parallel()

		identity := sanitizer.Compose()
		assert.Equal(t, "Main Nav", identity("Main Nav"))
	})

	t.Run("nil transforms are skipped", func(t *testing.T) {
		t.Parallel()

		clean := sanitizer.Compose(nil, sanitizer.CleanID, nil)
		assert.Equal(t, "main-nav", clean("Main Nav"))
	})

	t.Run("later changes to the transforms slice do not leak", func(t *testing.T) {
		t.Parallel()

		steps := []func(string) string{strings.TrimSpace, sanitizer.CleanID}
		clean := sanitizer.Compose(steps...)
		steps[1] = strings.ToUpper
		assert.Equal(t, "main-nav", clean(" Main Nav "))
	})
}
