// Package textutil measures and reshapes canonical formatted text without
// interpreting styles. Fragments whose style carries the zero-width escape
// marker hold raw escape bytes that occupy no cells on screen; Text, Len and
// Width all skip them.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/goliatone/go-styledtext/pkg/formattedtext"
)

// ZeroWidthEscape marks fragments whose text is written to the terminal but
// takes up no visible space, such as raw escape sequences.
const ZeroWidthEscape = "[ZeroWidthEscape]"

// Text returns the concatenated text of all visible fragments.
func Text(fragments formattedtext.FormattedText) string {
	var b strings.Builder
	for _, frag := range fragments {
		if strings.Contains(frag.Style, ZeroWidthEscape) {
			continue
		}
		b.WriteString(frag.Text)
	}
	return b.String()
}

// Len returns the number of runes in the visible text.
func Len(fragments formattedtext.FormattedText) int {
	return utf8.RuneCountInString(Text(fragments))
}

// Width returns the number of terminal cells the visible text occupies,
// counting East Asian wide runes as two cells.
func Width(fragments formattedtext.FormattedText) int {
	width := 0
	for _, frag := range fragments {
		if strings.Contains(frag.Style, ZeroWidthEscape) {
			continue
		}
		width += runewidth.StringWidth(frag.Text)
	}
	return width
}

// SplitLines splits formatted text on newline characters, keeping each
// piece's style and handler. The newlines themselves are dropped. There is
// always at least one resulting line, and input ending in a newline yields a
// trailing empty line, mirroring how terminals advance the cursor.
func SplitLines(fragments formattedtext.FormattedText) []formattedtext.FormattedText {
	var lines []formattedtext.FormattedText
	line := formattedtext.FormattedText{}

	for _, frag := range fragments {
		parts := strings.Split(frag.Text, "\n")
		for i, part := range parts {
			if i < len(parts)-1 {
				if part != "" {
					line = append(line, formattedtext.Fragment{Style: frag.Style, Text: part, Handler: frag.Handler})
				}
				lines = append(lines, line)
				line = formattedtext.FormattedText{}
				continue
			}
			line = append(line, formattedtext.Fragment{Style: frag.Style, Text: part, Handler: frag.Handler})
		}
	}

	// Always emit the last line, even when it is empty.
	return append(lines, line)
}

// ToPlainText normalizes any accepted formatted-text input and returns its
// visible text.
func ToPlainText(value any) (string, error) {
	fragments, err := formattedtext.ToFormattedText(value)
	if err != nil {
		return "", err
	}
	return Text(fragments), nil
}
