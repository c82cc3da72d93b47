// Package inline tokenizes a run of Markdown text into a tree of inline
// nodes: emphasis, code spans, links, images, footnote references, tags and
// the other span-level constructs.
//
// The text is scanned left to right. At each position the constructs are
// tried in a fixed priority order; a paired construct matches only if its
// closing delimiter is found. When it is not, the opening character is kept
// as literal text and scanning resumes right after it, so unmatched markup
// degrades to plain text.
package inline

import (
	"strings"
	"unicode"

	"github.com/kk-code-lab/mdast/ast"
)

// MaxDepth bounds the nesting of container spans. Text nested deeper than
// this is returned as a single Text node.
const MaxDepth = 64

// escapable lists the characters a backslash can escape.
const escapable = "\\`*_[]()!~=^#>-.|:"

// Tokenize parses text into inline nodes. It never fails: text that matches
// no construct becomes Text nodes. The result is never nil.
//
// Every unmatched opener scans to the end of text looking for its closer, so
// input with many unmatched openers takes time quadratic in its length.
func Tokenize(text string) []ast.Inline {
	return tokenizeDepth(text, 0)
}

func tokenizeDepth(text string, depth int) []ast.Inline {
	if depth >= MaxDepth {
		if text == "" {
			return []ast.Inline{}
		}
		return []ast.Inline{ast.Text{Value: collapseSpaces(text)}}
	}
	s := &scanner{
		src:   []rune(text),
		depth: depth,
		nodes: []ast.Inline{},
	}
	for s.pos < len(s.src) {
		if !s.step() {
			s.literal()
		}
	}
	s.flush()
	return s.nodes
}

type scanner struct {
	src   []rune
	pos   int
	depth int
	text  []rune
	nodes []ast.Inline
}

// step consumes one construct starting at pos. It returns false, leaving pos
// untouched, when the construct found there has no closing delimiter.
func (s *scanner) step() bool {
	r := s.src[s.pos]
	switch {
	case r == '\\':
		s.escape()
		return true
	case r == '`':
		return s.code()
	case s.at(s.pos, "**"):
		return s.span("**", "**", func(children []ast.Inline, raw string) ast.Inline {
			return ast.Strong{Children: children, Raw: raw}
		})
	case r == '_':
		return s.span("_", "_", func(children []ast.Inline, raw string) ast.Inline {
			return ast.Italic{Children: children, Raw: raw}
		})
	case s.at(s.pos, "[^"):
		return s.footnoteReference()
	case r == '[':
		return s.link()
	case s.at(s.pos, "!["):
		return s.image()
	case s.at(s.pos, "~~"):
		return s.span("~~", "~~", func(children []ast.Inline, raw string) ast.Inline {
			return ast.Delete{Children: children, Raw: raw}
		})
	case s.at(s.pos, "=="):
		return s.span("==", "==", func(children []ast.Inline, raw string) ast.Inline {
			return ast.Highlight{Children: children, Raw: raw}
		})
	case r == '^':
		return s.span("^", "^", func(children []ast.Inline, raw string) ast.Inline {
			return ast.Superscript{Children: children, Raw: raw}
		})
	case r == '~':
		return s.span("~", "~", func(children []ast.Inline, raw string) ast.Inline {
			return ast.Subscript{Children: children, Raw: raw}
		})
	case s.at(s.pos, "#["):
		return s.color()
	case r == '|':
		return s.span("|", "|", func(children []ast.Inline, raw string) ast.Inline {
			return ast.Spoiler{Children: children, Raw: raw}
		})
	case r == '#':
		return s.tag()
	default:
		s.literal()
		return true
	}
}

// literal moves the rune at pos into the pending text.
func (s *scanner) literal() {
	s.text = append(s.text, s.src[s.pos])
	s.pos++
}

func (s *scanner) escape() {
	if s.pos+1 < len(s.src) && strings.ContainsRune(escapable, s.src[s.pos+1]) {
		value := string(s.src[s.pos+1])
		s.emit(ast.Escape{Value: value, Raw: `\` + value}, s.pos+2)
		return
	}
	s.literal()
}

func (s *scanner) code() bool {
	value, end, ok := s.capture(s.pos+1, "`")
	if !ok {
		return false
	}
	s.emit(ast.Code{Value: value, Raw: s.raw(end)}, end)
	return true
}

// span matches a container construct whose content is tokenized recursively.
func (s *scanner) span(open, close string, build func([]ast.Inline, string) ast.Inline) bool {
	inner, end, ok := s.capture(s.pos+len(open), close)
	if !ok {
		return false
	}
	s.emit(build(s.children(inner), s.raw(end)), end)
	return true
}

func (s *scanner) footnoteReference() bool {
	value, end, ok := s.capture(s.pos+2, "]")
	if !ok || value == "" {
		return false
	}
	s.emit(ast.FootnoteReference{Value: value, Raw: s.raw(end)}, end)
	return true
}

func (s *scanner) link() bool {
	label, target, end, ok := s.bracketThenParen(s.pos + 1)
	if !ok {
		return false
	}
	s.emit(ast.Link{URL: target, Children: s.children(label), Raw: s.raw(end)}, end)
	return true
}

func (s *scanner) image() bool {
	alt, target, end, ok := s.bracketThenParen(s.pos + 2)
	if !ok {
		return false
	}
	s.emit(ast.Image{URL: target, Alt: alt, Raw: s.raw(end)}, end)
	return true
}

func (s *scanner) color() bool {
	label, color, end, ok := s.bracketThenParen(s.pos + 2)
	if !ok {
		return false
	}
	s.emit(ast.Color{Color: color, Children: s.children(label), Raw: s.raw(end)}, end)
	return true
}

func (s *scanner) tag() bool {
	end := s.pos + 1
	for end < len(s.src) && !unicode.IsSpace(s.src[end]) {
		end++
	}
	if end == s.pos+1 {
		return false
	}
	s.emit(ast.Tag{Value: string(s.src[s.pos+1 : end]), Raw: s.raw(end)}, end)
	return true
}

// bracketThenParen captures "label](target)" starting just after the
// opening bracket. The parenthesis must follow the bracket immediately.
func (s *scanner) bracketThenParen(start int) (label, target string, end int, ok bool) {
	label, mid, ok := s.capture(start, "]")
	if !ok || mid >= len(s.src) || s.src[mid] != '(' {
		return "", "", 0, false
	}
	target, end, ok = s.capture(mid+1, ")")
	if !ok {
		return "", "", 0, false
	}
	return label, target, end, true
}

// capture scans from start for the closing delimiter. A backslash and the
// rune after it are skipped as one unit so escaped delimiters never close.
// It returns the text before the delimiter and the position after it.
func (s *scanner) capture(start int, closer string) (string, int, bool) {
	for i := start; i < len(s.src); {
		if s.src[i] == '\\' && i+1 < len(s.src) {
			i += 2
			continue
		}
		if s.at(i, closer) {
			return string(s.src[start:i]), i + len(closer), true
		}
		i++
	}
	return "", 0, false
}

func (s *scanner) at(i int, prefix string) bool {
	for _, r := range prefix {
		if i >= len(s.src) || s.src[i] != r {
			return false
		}
		i++
	}
	return true
}

func (s *scanner) raw(end int) string {
	return string(s.src[s.pos:end])
}

func (s *scanner) children(text string) []ast.Inline {
	return tokenizeDepth(text, s.depth+1)
}

func (s *scanner) emit(node ast.Inline, end int) {
	s.flush()
	s.nodes = append(s.nodes, node)
	s.pos = end
}

func (s *scanner) flush() {
	if len(s.text) == 0 {
		return
	}
	s.nodes = append(s.nodes, ast.Text{Value: collapseSpaces(string(s.text))})
	s.text = s.text[:0]
}

func collapseSpaces(text string) string {
	if !strings.Contains(text, "  ") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
