package formattedtext

// Fragment is a single run of styled text. Style is an opaque identifier
// string (possibly several whitespace-separated identifiers); Text is the
// literal content. Handler optionally carries an interaction callback for
// pointer/selection handling further down the pipeline; this package never
// invokes it, it only passes the reference through unchanged. Fragments are
// treated as immutable once built.
type Fragment struct {
	Style   string
	Text    string
	Handler any
}

// FormattedText is the canonical form of formatted text: an ordered list of
// fragments in left-to-right rendering order. It is the distinguished type
// the rest of the pipeline checks for, so callers can tell canonical text
// apart from a plain fragment slice that happens to have the same shape.
// Values returned by ToFormattedText must be treated as immutable; an
// already-canonical input is returned by reference, not copied.
type FormattedText []Fragment

// FormattedText implements Provider by returning the value itself, letting a
// canonical value satisfy the input union directly.
func (f FormattedText) FormattedText() any {
	return f
}

// Provider is the self-describing conversion capability. Any value that can
// report its own formatted-text representation implements it; the returned
// value may be any accepted input shape and is normalized recursively.
// Markup front ends expose their parse results through this interface.
type Provider interface {
	FormattedText() any
}

// Producer is a zero-argument deferred computation yielding formatted text.
// It is re-evaluated on every call; results are never cached. Template.Format
// and Merge return producers, and producers are themselves accepted inputs
// to ToFormattedText. A plain func() any closure is accepted wherever a
// Producer is, for lazy values that cannot fail.
type Producer func() (any, error)
