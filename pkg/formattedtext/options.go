package formattedtext

// Option customises a single ToFormattedText call.
type Option func(*convertOptions)

type convertOptions struct {
	style       string
	autoConvert bool
}

// WithStyle prefixes the given style string onto every fragment of the
// result. The prefix is applied exactly once per ToFormattedText call, so
// normalizing the same value again at a later pipeline stage with a
// different style never double-prefixes.
func WithStyle(style string) Option {
	return func(o *convertOptions) {
		o.style = style
	}
}

// AutoConvert makes ToFormattedText accept values outside the formatted-text
// union by coercing them to their string representation instead of failing.
func AutoConvert() Option {
	return func(o *convertOptions) {
		o.autoConvert = true
	}
}
