// Package ast defines the typed tree produced by the Markdown parser.
//
// Block structure is described by Node values (paragraphs, headings, lists,
// tables, ...); the text inside leaf blocks is described by Inline values
// (emphasis, links, code spans, ...). Both are closed sets: every concrete
// type is declared in this package and carries a Kind discriminant, so a
// switch over Kind or over the concrete types can be checked for coverage.
//
// Nodes that were parsed from source carry a Raw field holding the exact
// source text they were built from. For block nodes Raw is the node's source
// lines joined with "\n".
package ast

// NodeKind identifies the concrete type of a block Node.
type NodeKind uint8

const (
	KindProgram NodeKind = iota
	KindParagraph
	KindHeading
	KindCodeBlock
	KindBlockQuote
	KindOrderedList
	KindUnorderedList
	KindListItem
	KindHorizontalRule
	KindTable
	KindLineBreak
	KindFootnote
)

var nodeKindNames = [...]string{
	KindProgram:        "PROGRAM",
	KindParagraph:      "PARAGRAPH",
	KindHeading:        "HEADING",
	KindCodeBlock:      "CODE_BLOCK",
	KindBlockQuote:     "BLOCK_QUOTE",
	KindOrderedList:    "ORDERED_LIST",
	KindUnorderedList:  "UNORDERED_LIST",
	KindListItem:       "LIST_ITEM",
	KindHorizontalRule: "HORIZONTAL_RULE",
	KindTable:          "TABLE",
	KindLineBreak:      "LINE_BREAK",
	KindFootnote:       "FOOTNOTE",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Node is a block-level element of the tree.
type Node interface {
	Kind() NodeKind
	node()
}

// Program is the root of a parsed document.
//
// Footnotes indexes every footnote definition by name (without the ^ sigil).
// The node lists in the index are the same slices held by the Footnote nodes
// in Children.
type Program struct {
	Children  []Node            `json:"children"`
	Footnotes map[string][]Node `json:"footnotes"`
	Raw       string            `json:"raw"`
}

// Paragraph is a run of consecutive text lines.
type Paragraph struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Heading is an ATX heading; Level is between 1 and 6.
type Heading struct {
	Level    int      `json:"level"`
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// CodeBlock is a fenced code block. Language and Meta come from the opening
// fence line and are empty when absent.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Meta     string `json:"meta,omitempty"`
	Value    string `json:"value"`
	Raw      string `json:"raw"`
}

// BlockQuote holds the nested document of a quote. Callout is the KIND of a
// leading [!KIND] marker line, or empty.
type BlockQuote struct {
	Children []Node `json:"children"`
	Callout  string `json:"callout"`
	Raw      string `json:"raw"`
}

// OrderedList is a list with "1." markers; Start is the first number.
type OrderedList struct {
	Children []ListItem `json:"children"`
	Start    int        `json:"start"`
	Raw      string     `json:"raw"`
}

// UnorderedList is a list with "-" markers.
type UnorderedList struct {
	Children []ListItem `json:"children"`
	Raw      string     `json:"raw"`
}

// ListItem is one entry of a list. Checked holds the character between the
// brackets of a task checkbox ("x", " ", ...), or is empty when the item has
// no checkbox.
type ListItem struct {
	Children []Node `json:"children"`
	Checked  string `json:"checked"`
	Raw      string `json:"raw"`
}

// HorizontalRule is a line of three or more dashes; Value is the line.
type HorizontalRule struct {
	Value string `json:"value"`
}

// Table is a pipe table. Header, every row and Align have the same length.
type Table struct {
	Header [][]Inline   `json:"header"`
	Rows   [][][]Inline `json:"rows"`
	Align  []Alignment  `json:"align"`
	Raw    string       `json:"raw"`
}

// LineBreak marks a blank line. The parser consumes blank lines while
// assembling blocks, so LineBreak never appears in a parsed tree.
type LineBreak struct{}

// Footnote is a footnote definition at the place it was written.
type Footnote struct {
	Name     string `json:"name"`
	Children []Node `json:"children"`
	Raw      string `json:"raw"`
}

func (Program) Kind() NodeKind        { return KindProgram }
func (Paragraph) Kind() NodeKind      { return KindParagraph }
func (Heading) Kind() NodeKind        { return KindHeading }
func (CodeBlock) Kind() NodeKind      { return KindCodeBlock }
func (BlockQuote) Kind() NodeKind     { return KindBlockQuote }
func (OrderedList) Kind() NodeKind    { return KindOrderedList }
func (UnorderedList) Kind() NodeKind  { return KindUnorderedList }
func (ListItem) Kind() NodeKind       { return KindListItem }
func (HorizontalRule) Kind() NodeKind { return KindHorizontalRule }
func (Table) Kind() NodeKind          { return KindTable }
func (LineBreak) Kind() NodeKind      { return KindLineBreak }
func (Footnote) Kind() NodeKind       { return KindFootnote }

func (Program) node()        {}
func (Paragraph) node()      {}
func (Heading) node()        {}
func (CodeBlock) node()      {}
func (BlockQuote) node()     {}
func (OrderedList) node()    {}
func (UnorderedList) node()  {}
func (ListItem) node()       {}
func (HorizontalRule) node() {}
func (Table) node()          {}
func (LineBreak) node()      {}
func (Footnote) node()       {}
