// Package styledtext re-exports the formatted-text contract so small
// consumers can depend on a single import. The implementation lives in
// pkg/formattedtext (canonical representation, normalization, templates,
// merging) and pkg/textutil (measurement and plain-text extraction).
package styledtext

import (
	"iter"

	"github.com/goliatone/go-styledtext/pkg/formattedtext"
	"github.com/goliatone/go-styledtext/pkg/textutil"
)

// Fragment is a single (style, text, optional handler) run of styled text.
type Fragment = formattedtext.Fragment

// FormattedText is the canonical ordered list of fragments.
type FormattedText = formattedtext.FormattedText

// Provider is the self-describing conversion capability.
type Provider = formattedtext.Provider

// Producer is a zero-argument deferred formatted-text computation.
type Producer = formattedtext.Producer

// Template interpolates formatted text into a literal with {} markers.
type Template = formattedtext.Template

// Option customises a ToFormattedText call.
type Option = formattedtext.Option

// Error sentinels from pkg/formattedtext, matchable with errors.Is.
var (
	ErrUnsupportedInput    = formattedtext.ErrUnsupportedInput
	ErrInvalidFragment     = formattedtext.ErrInvalidFragment
	ErrLegacyPlaceholder   = formattedtext.ErrLegacyPlaceholder
	ErrPlaceholderMismatch = formattedtext.ErrPlaceholderMismatch
)

// ToFormattedText normalizes any accepted input into canonical form.
func ToFormattedText(value any, opts ...Option) (FormattedText, error) {
	return formattedtext.ToFormattedText(value, opts...)
}

// IsFormattedText reports whether value is an acceptable input shape.
func IsFormattedText(value any) bool {
	return formattedtext.IsFormattedText(value)
}

// WithStyle prefixes a style string onto every fragment of the result.
func WithStyle(style string) Option {
	return formattedtext.WithStyle(style)
}

// AutoConvert coerces unrecognized values to their string form.
func AutoConvert() Option {
	return formattedtext.AutoConvert()
}

// NewTemplate builds an interpolation template from a literal.
func NewTemplate(text string) (*Template, error) {
	return formattedtext.NewTemplate(text)
}

// Merge concatenates several formatted-text values into one lazy producer.
func Merge(items ...any) Producer {
	return formattedtext.Merge(items...)
}

// MergeSeq is Merge over a sequence, traversed afresh per invocation.
func MergeSeq(items iter.Seq[any]) Producer {
	return formattedtext.MergeSeq(items)
}

// ToPlainText normalizes the input and returns its visible text.
func ToPlainText(value any) (string, error) {
	return textutil.ToPlainText(value)
}
