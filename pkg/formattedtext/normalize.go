package formattedtext

import "fmt"

// ToFormattedText converts any accepted input shape into canonical
// FormattedText. Resolution order, first match wins:
//
//  1. nil yields an empty result.
//  2. A string becomes a single unstyled fragment.
//  3. A FormattedText value is used as-is; with no extra style it is
//     returned by reference.
//  4. A []Fragment slice is copied into a fresh canonical value.
//  5. A loose []any fragment list (the shape JSON or YAML decoding
//     produces) is validated and converted; only the first element's style
//     and text are type-checked.
//  6. A Provider is asked for its representation, which is normalized
//     recursively; the extra style is applied once afterwards.
//  7. A Producer (or plain func() any) is invoked and its result normalized
//     recursively with the extra style passed through, so the style is
//     applied exactly once inside the recursion.
//  8. Any other value fails with ErrUnsupportedInput, unless AutoConvert
//     was given, in which case it is coerced to its string form.
//
// Errors raised by providers and producers propagate unchanged.
func ToFormattedText(value any, opts ...Option) (FormattedText, error) {
	var o convertOptions
	for _, opt := range opts {
		opt(&o)
	}
	return normalize(value, o.style, o.autoConvert)
}

// IsFormattedText reports whether value is an acceptable ToFormattedText
// input. The check is shallow: it neither inspects sequence contents nor
// invokes producers or providers.
func IsFormattedText(value any) bool {
	switch value.(type) {
	case string, FormattedText, []Fragment, []any:
		return true
	case Provider, Producer, func() (any, error), func() any:
		return true
	}
	return false
}

func normalize(value any, style string, autoConvert bool) (FormattedText, error) {
	var result FormattedText

	switch v := value.(type) {
	case nil:
		result = FormattedText{}
	case string:
		result = FormattedText{{Text: v}}
	case FormattedText:
		if style == "" {
			// Already canonical: share rather than copy.
			return v, nil
		}
		result = v
	case []Fragment:
		result = append(FormattedText(nil), v...)
	case []any:
		loose, err := fromLoose(v)
		if err != nil {
			return nil, err
		}
		result = loose
	case Provider:
		// Style is applied once, below, after the recursion resolves.
		inner, err := normalize(v.FormattedText(), "", autoConvert)
		if err != nil {
			return nil, err
		}
		result = inner
	case Producer:
		return resolveProducer(v, style, autoConvert)
	case func() (any, error):
		return resolveProducer(v, style, autoConvert)
	case func() any:
		// Style passes through the recursion and is applied exactly once
		// inside it.
		return normalize(v(), style, autoConvert)
	default:
		if !autoConvert {
			return nil, fmt.Errorf("%w: expecting a string, fragment list, provider or producer, got %v (%T)", ErrUnsupportedInput, value, value)
		}
		result = FormattedText{{Text: fmt.Sprint(v)}}
	}

	if style != "" {
		result = applyStyle(result, style)
	}
	return result, nil
}

func resolveProducer(p func() (any, error), style string, autoConvert bool) (FormattedText, error) {
	inner, err := p()
	if err != nil {
		return nil, err
	}
	return normalize(inner, style, autoConvert)
}

// fromLoose converts a decoded fragment list into canonical form. Only the
// first element is validated as a representative sample; the remaining
// elements convert best-effort. Callers relying on full validation should
// build []Fragment values instead.
func fromLoose(items []any) (FormattedText, error) {
	if len(items) == 0 {
		return FormattedText{}, nil
	}

	first, ok := items[0].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expecting a (style, text) sequence, got %v (%T)", ErrInvalidFragment, items[0], items[0])
	}
	if len(first) < 2 {
		return nil, fmt.Errorf("%w: expecting style and text fields, got %d field(s)", ErrInvalidFragment, len(first))
	}
	if _, ok := first[0].(string); !ok {
		return nil, fmt.Errorf("%w: expecting string style, got %v (%T)", ErrInvalidFragment, first[0], first[0])
	}
	if _, ok := first[1].(string); !ok {
		return nil, fmt.Errorf("%w: expecting string text, got %v (%T)", ErrInvalidFragment, first[1], first[1])
	}

	result := make(FormattedText, 0, len(items))
	for _, item := range items {
		fields, _ := item.([]any)
		var frag Fragment
		if len(fields) > 0 {
			frag.Style, _ = fields[0].(string)
		}
		if len(fields) > 1 {
			frag.Text, _ = fields[1].(string)
		}
		if len(fields) > 2 {
			frag.Handler = fields[2]
		}
		result = append(result, frag)
	}
	return result, nil
}

// applyStyle rebuilds every fragment with the extra style prepended. Text
// and any attached handler are carried over verbatim.
func applyStyle(fragments FormattedText, style string) FormattedText {
	result := make(FormattedText, len(fragments))
	for i, frag := range fragments {
		frag.Style = style + " " + frag.Style
		result[i] = frag
	}
	return result
}
