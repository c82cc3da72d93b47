package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kk-code-lab/mdast/internal/textutil"
)

// Fprint writes an indented, human-readable dump of the tree rooted at node
// to w. String values are made terminal safe. It returns the first error
// reported by w.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.block(node, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func quote(s string) string {
	return `"` + textutil.Printable(s) + `"`
}

func (p *printer) block(node Node, depth int) {
	switch n := node.(type) {
	case *Program:
		p.program(*n, depth)
	case Program:
		p.program(n, depth)
	case Paragraph:
		p.line(depth, "%s", n.Kind())
		p.inlines(n.Children, depth+1)
	case Heading:
		p.line(depth, "%s level=%d", n.Kind(), n.Level)
		p.inlines(n.Children, depth+1)
	case CodeBlock:
		p.line(depth, "%s language=%s meta=%s value=%s", n.Kind(), quote(n.Language), quote(n.Meta), quote(n.Value))
	case BlockQuote:
		if n.Callout != "" {
			p.line(depth, "%s callout=%s", n.Kind(), quote(n.Callout))
		} else {
			p.line(depth, "%s", n.Kind())
		}
		p.blocks(n.Children, depth+1)
	case OrderedList:
		p.line(depth, "%s start=%d", n.Kind(), n.Start)
		for _, item := range n.Children {
			p.block(item, depth+1)
		}
	case UnorderedList:
		p.line(depth, "%s", n.Kind())
		for _, item := range n.Children {
			p.block(item, depth+1)
		}
	case ListItem:
		if n.Checked != "" {
			p.line(depth, "%s checked=%s", n.Kind(), quote(n.Checked))
		} else {
			p.line(depth, "%s", n.Kind())
		}
		p.blocks(n.Children, depth+1)
	case HorizontalRule:
		p.line(depth, "%s", n.Kind())
	case Table:
		p.line(depth, "%s align=%v", n.Kind(), n.Align)
		p.row("header", n.Header, depth+1)
		for _, row := range n.Rows {
			p.row("row", row, depth+1)
		}
	case LineBreak:
		p.line(depth, "%s", n.Kind())
	case Footnote:
		p.line(depth, "%s name=%s", n.Kind(), quote(n.Name))
		p.blocks(n.Children, depth+1)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

func (p *printer) program(n Program, depth int) {
	p.line(depth, "%s", n.Kind())
	p.blocks(n.Children, depth+1)
}

func (p *printer) blocks(nodes []Node, depth int) {
	for _, n := range nodes {
		p.block(n, depth)
	}
}

func (p *printer) row(label string, cells [][]Inline, depth int) {
	p.line(depth, "%s", label)
	for _, cell := range cells {
		p.line(depth+1, "cell")
		p.inlines(cell, depth+2)
	}
}

func (p *printer) inlines(nodes []Inline, depth int) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			p.line(depth, "%s %s", n.Kind(), quote(n.Value))
		case Escape:
			p.line(depth, "%s %s", n.Kind(), quote(n.Value))
		case Code:
			p.line(depth, "%s %s", n.Kind(), quote(n.Value))
		case Link:
			p.line(depth, "%s url=%s", n.Kind(), quote(n.URL))
			p.inlines(n.Children, depth+1)
		case Image:
			p.line(depth, "%s url=%s alt=%s", n.Kind(), quote(n.URL), quote(n.Alt))
		case Color:
			p.line(depth, "%s color=%s", n.Kind(), quote(n.Color))
			p.inlines(n.Children, depth+1)
		case FootnoteReference:
			p.line(depth, "%s %s", n.Kind(), quote(n.Value))
		case Tag:
			p.line(depth, "%s %s", n.Kind(), quote(n.Value))
		default:
			p.line(depth, "%s", n.Kind())
			p.inlines(InlineChildren(n), depth+1)
		}
	}
}
