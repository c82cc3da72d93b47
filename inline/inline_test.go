package inline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-code-lab/mdast/ast"
)

func text(v string) ast.Text { return ast.Text{Value: v} }

func TestTokenizeConstructs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []ast.Inline
	}{
		{"plain", "hello", []ast.Inline{text("hello")}},
		{"collapse spaces", "a   b  c", []ast.Inline{text("a b c")}},
		{"strong", "**bold**", []ast.Inline{
			ast.Strong{Children: []ast.Inline{text("bold")}, Raw: "**bold**"},
		}},
		{"italic", "_héllo_", []ast.Inline{
			ast.Italic{Children: []ast.Inline{text("héllo")}, Raw: "_héllo_"},
		}},
		{"code keeps markup", "`a*b*`", []ast.Inline{
			ast.Code{Value: "a*b*", Raw: "`a*b*`"},
		}},
		{"delete", "~~gone~~", []ast.Inline{
			ast.Delete{Children: []ast.Inline{text("gone")}, Raw: "~~gone~~"},
		}},
		{"highlight", "==mark==", []ast.Inline{
			ast.Highlight{Children: []ast.Inline{text("mark")}, Raw: "==mark=="},
		}},
		{"superscript", "x^2^", []ast.Inline{
			text("x"),
			ast.Superscript{Children: []ast.Inline{text("2")}, Raw: "^2^"},
		}},
		{"subscript", "H~2~O", []ast.Inline{
			text("H"),
			ast.Subscript{Children: []ast.Inline{text("2")}, Raw: "~2~"},
			text("O"),
		}},
		{"spoiler", "|secret|", []ast.Inline{
			ast.Spoiler{Children: []ast.Inline{text("secret")}, Raw: "|secret|"},
		}},
		{"link", "see [site](http://x.io) now", []ast.Inline{
			text("see "),
			ast.Link{URL: "http://x.io", Children: []ast.Inline{text("site")}, Raw: "[site](http://x.io)"},
			text(" now"),
		}},
		{"image alt stays raw", "![alt *x*](p.png)", []ast.Inline{
			ast.Image{URL: "p.png", Alt: "alt *x*", Raw: "![alt *x*](p.png)"},
		}},
		{"color", "#[warn](red)", []ast.Inline{
			ast.Color{Color: "red", Children: []ast.Inline{text("warn")}, Raw: "#[warn](red)"},
		}},
		{"footnote reference", "text[^1]", []ast.Inline{
			text("text"),
			ast.FootnoteReference{Value: "1", Raw: "[^1]"},
		}},
		{"tag", "#go rocks", []ast.Inline{
			ast.Tag{Value: "go", Raw: "#go"},
			text(" rocks"),
		}},
		{"unicode tag", "#日本", []ast.Inline{ast.Tag{Value: "日本", Raw: "#日本"}}},
		{"empty span", "****", []ast.Inline{
			ast.Strong{Children: []ast.Inline{}, Raw: "****"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.in))
		})
	}
}

func TestTokenizeUnmatchedDelimitersDegradeToText(t *testing.T) {
	cases := []string{
		"**bold",
		"_open",
		"`tick",
		"~~strike",
		"==mark",
		"x^y",
		"a~b",
		"a | b",
		"[label]",
		"[label] (x)",
		"[a](b",
		"![alt]",
		"#[warn]",
		"[^]",
		"# heading-like",
		"#",
		"!",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, []ast.Inline{text(in)}, Tokenize(in))
		})
	}
}

func TestTokenizeNestedEmphasis(t *testing.T) {
	got := Tokenize("**_x_**")
	require.Len(t, got, 1)
	strong, ok := got[0].(ast.Strong)
	require.True(t, ok, "expected Strong, got %T", got[0])
	require.Len(t, strong.Children, 1)
	italic, ok := strong.Children[0].(ast.Italic)
	require.True(t, ok, "expected Italic, got %T", strong.Children[0])
	assert.Equal(t, []ast.Inline{text("x")}, italic.Children)
	assert.Equal(t, "_x_", italic.Raw)
}

func TestTokenizeLinkLabelIsTokenized(t *testing.T) {
	got := Tokenize("[**a**](u)")
	assert.Equal(t, []ast.Inline{
		ast.Link{
			URL:      "u",
			Children: []ast.Inline{ast.Strong{Children: []ast.Inline{text("a")}, Raw: "**a**"}},
			Raw:      "[**a**](u)",
		},
	}, got)
}

func TestTokenizeEscapes(t *testing.T) {
	got := Tokenize(`\*`)
	require.Equal(t, []ast.Inline{ast.Escape{Value: "*", Raw: `\*`}}, got)

	again := Tokenize(got[0].(ast.Escape).Raw)
	assert.Equal(t, got, again)

	assert.Equal(t, []ast.Inline{
		ast.Escape{Value: "*", Raw: `\*`},
		text("x"),
		ast.Escape{Value: "*", Raw: `\*`},
	}, Tokenize(`\*x\*`))

	assert.Equal(t, []ast.Inline{text(`a\qb`)}, Tokenize(`a\qb`), "unknown escape keeps backslash")
	assert.Equal(t, []ast.Inline{text(`\`)}, Tokenize(`\`))
}

func TestTokenizeEscapedCloserDoesNotClose(t *testing.T) {
	got := Tokenize(`**a\**b**`)
	assert.Equal(t, []ast.Inline{
		ast.Strong{
			Children: []ast.Inline{
				text("a"),
				ast.Escape{Value: "*", Raw: `\*`},
				text("*b"),
			},
			Raw: `**a\**b**`,
		},
	}, got)
}

func TestTokenizeFirstCloserWins(t *testing.T) {
	got := Tokenize("_a **b_ c**")
	require.Len(t, got, 2)
	italic, ok := got[0].(ast.Italic)
	require.True(t, ok, "expected Italic, got %T", got[0])
	assert.Equal(t, []ast.Inline{text("a **b")}, italic.Children)
	assert.Equal(t, text(" c**"), got[1])
}

func TestTokenizeEmptyInput(t *testing.T) {
	got := Tokenize("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTokenizeDepthLimitReturnsText(t *testing.T) {
	got := tokenizeDepth("**x**  y", MaxDepth)
	assert.Equal(t, []ast.Inline{text("**x** y")}, got)

	empty := tokenizeDepth("", MaxDepth)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	nested := tokenizeDepth("**x**", MaxDepth-1)
	assert.Equal(t, []ast.Inline{
		ast.Strong{Children: []ast.Inline{text("x")}, Raw: "**x**"},
	}, nested)
}

func TestTokenizeHostileInputTerminates(t *testing.T) {
	in := strings.Repeat("**[![#[_~=^|`\\", 200)
	got := Tokenize(in)
	require.NotEmpty(t, got)
	for _, n := range got {
		require.NotNil(t, n)
	}
}

func TestTokenizeSourceReproducesNode(t *testing.T) {
	for _, in := range []string{"**a _b_**", "[x](y)", "#[c](red)", "`c`", "#tag"} {
		got := Tokenize(in)
		require.Len(t, got, 1, in)
		assert.Equal(t, got, Tokenize(ast.Source(got[0])), in)
	}
}
