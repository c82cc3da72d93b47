package ast

// InlineKind identifies the concrete type of an Inline.
type InlineKind uint8

const (
	InlineText InlineKind = iota
	InlineEscape
	InlineCode
	InlineStrong
	InlineItalic
	InlineDelete
	InlineHighlight
	InlineSuperscript
	InlineSubscript
	InlineColor
	InlineSpoiler
	InlineLink
	InlineImage
	InlineFootnoteReference
	InlineTag
)

var inlineKindNames = [...]string{
	InlineText:              "TEXT",
	InlineEscape:            "ESCAPE",
	InlineCode:              "CODE",
	InlineStrong:            "STRONG",
	InlineItalic:            "ITALIC",
	InlineDelete:            "DELETE",
	InlineHighlight:         "HIGHLIGHT",
	InlineSuperscript:       "SUPERSCRIPT",
	InlineSubscript:         "SUBSCRIPT",
	InlineColor:             "COLOR",
	InlineSpoiler:           "SPOILER",
	InlineLink:              "LINK",
	InlineImage:             "IMAGE",
	InlineFootnoteReference: "FOOTNOTE_REFERENCE",
	InlineTag:               "TAG",
}

func (k InlineKind) String() string {
	if int(k) < len(inlineKindNames) {
		return inlineKindNames[k]
	}
	return "InlineKind(?)"
}

// Inline is a span of formatted text inside a block.
type Inline interface {
	Kind() InlineKind
	inline()
}

// Text is plain text. Runs of spaces are collapsed to one.
type Text struct {
	Value string `json:"value"`
}

// Escape is a backslash escape; Value is the escaped character.
type Escape struct {
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// Code is an inline code span; Value is kept verbatim.
type Code struct {
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// Strong is **strong** text.
type Strong struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Italic is _italic_ text.
type Italic struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Delete is strikethrough text (~~text~~).
type Delete struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Highlight is ==highlighted== text.
type Highlight struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Superscript is ^raised^ text.
type Superscript struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Subscript is ~lowered~ text.
type Subscript struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Color is colored text written as #[text](color).
type Color struct {
	Color    string   `json:"color"`
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Spoiler is |hidden| text.
type Spoiler struct {
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Link is [text](url).
type Link struct {
	URL      string   `json:"url"`
	Children []Inline `json:"children"`
	Raw      string   `json:"raw"`
}

// Image keeps its alt text verbatim; it is not parsed for inline markup.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
	Raw string `json:"raw"`
}

// FootnoteReference is a [^name] reference; Value is the name.
type FootnoteReference struct {
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// Tag is a #word hashtag; Value excludes the '#'.
type Tag struct {
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

func (Text) Kind() InlineKind              { return InlineText }
func (Escape) Kind() InlineKind            { return InlineEscape }
func (Code) Kind() InlineKind              { return InlineCode }
func (Strong) Kind() InlineKind            { return InlineStrong }
func (Italic) Kind() InlineKind            { return InlineItalic }
func (Delete) Kind() InlineKind            { return InlineDelete }
func (Highlight) Kind() InlineKind         { return InlineHighlight }
func (Superscript) Kind() InlineKind       { return InlineSuperscript }
func (Subscript) Kind() InlineKind         { return InlineSubscript }
func (Color) Kind() InlineKind             { return InlineColor }
func (Spoiler) Kind() InlineKind           { return InlineSpoiler }
func (Link) Kind() InlineKind              { return InlineLink }
func (Image) Kind() InlineKind             { return InlineImage }
func (FootnoteReference) Kind() InlineKind { return InlineFootnoteReference }
func (Tag) Kind() InlineKind               { return InlineTag }

func (Text) inline()              {}
func (Escape) inline()            {}
func (Code) inline()              {}
func (Strong) inline()            {}
func (Italic) inline()            {}
func (Delete) inline()            {}
func (Highlight) inline()         {}
func (Superscript) inline()       {}
func (Subscript) inline()         {}
func (Color) inline()             {}
func (Spoiler) inline()           {}
func (Link) inline()              {}
func (Image) inline()             {}
func (FootnoteReference) inline() {}
func (Tag) inline()               {}
