package textutil

import (
	"strings"
	"testing"
	"unicode"
)

func TestPrintableLeavesSafeInput(t *testing.T) {
	input := "plain text"
	if got := Printable(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestPrintableEscapesLineBreaksAndControls(t *testing.T) {
	got := Printable("a\nb\tc\x1b[0m")
	if got != `a\nb\tc?[0m` {
		t.Fatalf("unexpected printable text %q", got)
	}
}

func TestPrintableSpellsOutFormattingRunes(t *testing.T) {
	got := Printable("a" + string(rune(0x202E)) + "b" + string(rune(0x200B)))
	if !strings.Contains(got, "⟪U+202E⟫") || !strings.Contains(got, "⟪U+200B⟫") {
		t.Fatalf("expected formatting runes to be labeled, got %q", got)
	}
	if strings.IndexFunc(got, func(r rune) bool { return unicode.Is(unicode.Cf, r) }) >= 0 {
		t.Fatalf("printable text still contains formatting runes: %q", got)
	}
}
