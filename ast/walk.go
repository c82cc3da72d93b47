package ast

import (
	"fmt"
	"strings"
)

// Inspect traverses the block tree rooted at node in depth-first order. It
// calls f(node); if f returns true, Inspect recurses into the block children
// of node. Inline content is not visited; use InspectInline for that.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children returns the block children of n, or nil for leaf blocks.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		return n.Children
	case Program:
		return n.Children
	case BlockQuote:
		return n.Children
	case OrderedList:
		return listItems(n.Children)
	case UnorderedList:
		return listItems(n.Children)
	case ListItem:
		return n.Children
	case Footnote:
		return n.Children
	case Paragraph, Heading, CodeBlock, HorizontalRule, Table, LineBreak:
		return nil
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

func listItems(items []ListItem) []Node {
	nodes := make([]Node, len(items))
	for i, item := range items {
		nodes[i] = item
	}
	return nodes
}

// InspectInline traverses every inline tree in nodes in depth-first order,
// descending into a node's children when f returns true.
func InspectInline(nodes []Inline, f func(Inline) bool) {
	for _, n := range nodes {
		if n == nil || !f(n) {
			continue
		}
		InspectInline(InlineChildren(n), f)
	}
}

// InlineChildren returns the nested inline content of n, or nil for leaves.
func InlineChildren(n Inline) []Inline {
	switch n := n.(type) {
	case Strong:
		return n.Children
	case Italic:
		return n.Children
	case Delete:
		return n.Children
	case Highlight:
		return n.Children
	case Superscript:
		return n.Children
	case Subscript:
		return n.Children
	case Color:
		return n.Children
	case Spoiler:
		return n.Children
	case Link:
		return n.Children
	case Text, Escape, Code, Image, FootnoteReference, Tag:
		return nil
	default:
		panic(fmt.Sprintf("ast: unexpected inline type %T", n))
	}
}

// PlainText flattens an inline tree into the text a reader would see, with
// all markup removed. Images contribute their alt text and tags keep their
// leading '#'.
func PlainText(nodes []Inline) string {
	var b strings.Builder
	writePlain(&b, nodes)
	return b.String()
}

func writePlain(b *strings.Builder, nodes []Inline) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			b.WriteString(n.Value)
		case Escape:
			b.WriteString(n.Value)
		case Code:
			b.WriteString(n.Value)
		case Image:
			b.WriteString(n.Alt)
		case FootnoteReference:
			b.WriteString("[^" + n.Value + "]")
		case Tag:
			b.WriteString("#" + n.Value)
		default:
			writePlain(b, InlineChildren(n))
		}
	}
}

// Source returns the markup n was parsed from. Text nodes carry no raw
// form, so their value is returned instead.
func Source(n Inline) string {
	switch n := n.(type) {
	case Text:
		return n.Value
	case Escape:
		return n.Raw
	case Code:
		return n.Raw
	case Strong:
		return n.Raw
	case Italic:
		return n.Raw
	case Delete:
		return n.Raw
	case Highlight:
		return n.Raw
	case Superscript:
		return n.Raw
	case Subscript:
		return n.Raw
	case Color:
		return n.Raw
	case Spoiler:
		return n.Raw
	case Link:
		return n.Raw
	case Image:
		return n.Raw
	case FootnoteReference:
		return n.Raw
	case Tag:
		return n.Raw
	default:
		panic(fmt.Sprintf("ast: unexpected inline type %T", n))
	}
}
