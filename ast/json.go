package ast

import (
	"encoding/json"
	"fmt"
)

// marshalTagged encodes v as a JSON object and prepends a "type" member
// naming the node kind.
func marshalTagged(kind fmt.Stringer, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("ast: %s did not encode as an object", kind)
	}
	out := make([]byte, 0, len(body)+len(kind.String())+12)
	out = append(out, `{"type":`...)
	out = append(out, '"')
	out = append(out, kind.String()...)
	out = append(out, '"')
	if len(body) > 2 {
		out = append(out, ',')
	}
	return append(out, body[1:]...), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (n Program) MarshalJSON() ([]byte, error) {
	type plain Program
	return marshalTagged(n.Kind(), plain(n))
}

func (n Paragraph) MarshalJSON() ([]byte, error) {
	type plain Paragraph
	return marshalTagged(n.Kind(), plain(n))
}

func (n Heading) MarshalJSON() ([]byte, error) {
	type plain Heading
	return marshalTagged(n.Kind(), plain(n))
}

func (n CodeBlock) MarshalJSON() ([]byte, error) {
	type plain CodeBlock
	return marshalTagged(n.Kind(), plain(n))
}

func (n BlockQuote) MarshalJSON() ([]byte, error) {
	return marshalTagged(n.Kind(), struct {
		Children []Node  `json:"children"`
		Callout  *string `json:"callout"`
		Raw      string  `json:"raw"`
	}{n.Children, optional(n.Callout), n.Raw})
}

func (n OrderedList) MarshalJSON() ([]byte, error) {
	type plain OrderedList
	return marshalTagged(n.Kind(), plain(n))
}

func (n UnorderedList) MarshalJSON() ([]byte, error) {
	type plain UnorderedList
	return marshalTagged(n.Kind(), plain(n))
}

func (n ListItem) MarshalJSON() ([]byte, error) {
	return marshalTagged(n.Kind(), struct {
		Children []Node  `json:"children"`
		Checked  *string `json:"checked"`
		Raw      string  `json:"raw"`
	}{n.Children, optional(n.Checked), n.Raw})
}

func (n HorizontalRule) MarshalJSON() ([]byte, error) {
	type plain HorizontalRule
	return marshalTagged(n.Kind(), plain(n))
}

func (n Table) MarshalJSON() ([]byte, error) {
	type plain Table
	return marshalTagged(n.Kind(), plain(n))
}

func (n LineBreak) MarshalJSON() ([]byte, error) {
	return marshalTagged(n.Kind(), struct{}{})
}

func (n Footnote) MarshalJSON() ([]byte, error) {
	type plain Footnote
	return marshalTagged(n.Kind(), plain(n))
}

func (n Text) MarshalJSON() ([]byte, error) {
	type plain Text
	return marshalTagged(n.Kind(), plain(n))
}

func (n Escape) MarshalJSON() ([]byte, error) {
	type plain Escape
	return marshalTagged(n.Kind(), plain(n))
}

func (n Code) MarshalJSON() ([]byte, error) {
	type plain Code
	return marshalTagged(n.Kind(), plain(n))
}

func (n Strong) MarshalJSON() ([]byte, error) {
	type plain Strong
	return marshalTagged(n.Kind(), plain(n))
}

func (n Italic) MarshalJSON() ([]byte, error) {
	type plain Italic
	return marshalTagged(n.Kind(), plain(n))
}

func (n Delete) MarshalJSON() ([]byte, error) {
	type plain Delete
	return marshalTagged(n.Kind(), plain(n))
}

func (n Highlight) MarshalJSON() ([]byte, error) {
	type plain Highlight
	return marshalTagged(n.Kind(), plain(n))
}

func (n Superscript) MarshalJSON() ([]byte, error) {
	type plain Superscript
	return marshalTagged(n.Kind(), plain(n))
}

func (n Subscript) MarshalJSON() ([]byte, error) {
	type plain Subscript
	return marshalTagged(n.Kind(), plain(n))
}

func (n Color) MarshalJSON() ([]byte, error) {
	type plain Color
	return marshalTagged(n.Kind(), plain(n))
}

func (n Spoiler) MarshalJSON() ([]byte, error) {
	type plain Spoiler
	return marshalTagged(n.Kind(), plain(n))
}

func (n Link) MarshalJSON() ([]byte, error) {
	type plain Link
	return marshalTagged(n.Kind(), plain(n))
}

func (n Image) MarshalJSON() ([]byte, error) {
	type plain Image
	return marshalTagged(n.Kind(), plain(n))
}

func (n FootnoteReference) MarshalJSON() ([]byte, error) {
	type plain FootnoteReference
	return marshalTagged(n.Kind(), plain(n))
}

func (n Tag) MarshalJSON() ([]byte, error) {
	type plain Tag
	return marshalTagged(n.Kind(), plain(n))
}
