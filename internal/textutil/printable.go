package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// Printable rewrites text so it can be shown on a single terminal line:
// line breaks and tabs become visible escapes, other control characters
// become '?', and invisible formatting runes (bidi overrides, zero-width
// joiners, BOM) are spelled out as ⟪U+XXXX⟫.
func Printable(text string) string {
	clean := true
	for _, r := range text {
		if needsRewrite(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsRewrite(r rune) bool {
	return r < 0x20 || r == 0x7f || unicode.Is(unicode.Cf, r)
}
