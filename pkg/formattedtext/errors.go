package formattedtext

import "errors"

var (
	// ErrUnsupportedInput is returned when a value matches none of the
	// accepted formatted-text shapes and auto-conversion is disabled.
	ErrUnsupportedInput = errors.New("formattedtext: unsupported input")
	// ErrInvalidFragment is returned when a loose fragment list carries a
	// first element without string style and text fields.
	ErrInvalidFragment = errors.New("formattedtext: invalid fragment")
	// ErrLegacyPlaceholder rejects template literals that still use the
	// deprecated indexed placeholder form.
	ErrLegacyPlaceholder = errors.New("formattedtext: legacy indexed placeholder")
	// ErrPlaceholderMismatch is returned by a template producer when the
	// number of values does not equal the number of placeholders.
	ErrPlaceholderMismatch = errors.New("formattedtext: placeholder count mismatch")
)
