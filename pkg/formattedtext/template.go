package formattedtext

import (
	"fmt"
	"strings"
)

const (
	placeholder       = "{}"
	legacyPlaceholder = "{0}"
)

// Template interpolates formatted-text fragments into a literal string
// containing {} placeholder markers. The literal is fixed at construction;
// Format can be called any number of times, each call capturing its own
// values with no shared state between invocations.
type Template struct {
	text string
}

// NewTemplate builds a template from a literal. Literals using the
// deprecated indexed {0} marker are rejected outright so the mistake
// surfaces at construction rather than at render time.
func NewTemplate(text string) (*Template, error) {
	if strings.Contains(text, legacyPlaceholder) {
		return nil, fmt.Errorf("%w: %q", ErrLegacyPlaceholder, text)
	}
	return &Template{text: text}, nil
}

// Format returns a producer that interleaves the template's literal
// segments with the given values, normalized in order. The work happens at
// producer-invocation time, not here: values are re-normalized on every
// call, so producer-valued arguments are re-evaluated per use. The producer
// fails with ErrPlaceholderMismatch when the value count does not equal the
// placeholder count.
func (t *Template) Format(values ...any) Producer {
	return func() (any, error) {
		parts := strings.Split(t.text, placeholder)
		if len(parts)-1 != len(values) {
			return nil, fmt.Errorf("%w: %d placeholder(s), %d value(s)", ErrPlaceholderMismatch, len(parts)-1, len(values))
		}

		result := make(FormattedText, 0, 2*len(parts)-1)
		for i, part := range parts {
			if i > 0 {
				fragments, err := ToFormattedText(values[i-1])
				if err != nil {
					return nil, err
				}
				result = append(result, fragments...)
			}
			result = append(result, Fragment{Text: part})
		}
		return result, nil
	}
}
