package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width reports the printable width of text, measured per grapheme cluster so
// that emoji sequences and combining marks count the way terminals draw them.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// ExpandTabs replaces tab characters with spaces. Columns restart at every
// newline, so a whole multi-line source can be expanded in one pass.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	column := 0
	for _, r := range text {
		switch r {
		case '\t':
			spaces := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		case '\n':
			b.WriteRune(r)
			column = 0
		default:
			b.WriteRune(r)
			column += runewidth.RuneWidth(r)
		}
	}
	return b.String()
}
