package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/kk-code-lab/mdast/ast"
)

func text(v string) ast.Text { return ast.Text{Value: v} }

func para(v string) ast.Paragraph {
	return ast.Paragraph{Children: []ast.Inline{text(v)}, Raw: v}
}

func sampleSource() string {
	return strings.Join([]string{
		"# Title",
		"para one",
		"para two",
		"",
		"> quote",
		"> more",
		"",
		"- a",
		"  cont",
		"- b",
		"",
		"```go",
		"x",
		"```",
		"",
		"| h |",
		"|---|",
		"| c |",
		"",
		"[^n]: note",
		"  more",
	}, "\n")
}

func TestParseIsDeterministic(t *testing.T) {
	src := sampleSource()
	first := Parse(src)
	second := Parse(src)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical trees, got\n%#v\n%#v", first, second)
	}
}

func TestParseRawRoundTrip(t *testing.T) {
	src := sampleSource()
	prog := Parse(src)
	if prog.Raw != src {
		t.Fatalf("expected program raw to equal source, got %q", prog.Raw)
	}
	want := []string{
		"# Title",
		"para one\npara two",
		"> quote\n> more",
		"- a\n  cont\n- b",
		"```go\nx\n```",
		"| h |\n|---|\n| c |",
		"[^n]: note\n  more",
	}
	if len(prog.Children) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %#v", len(want), len(prog.Children), prog.Children)
	}
	for i, child := range prog.Children {
		if got := rawOf(t, child); got != want[i] {
			t.Fatalf("block %d (%s): expected raw %q, got %q", i, child.Kind(), want[i], got)
		}
		if !strings.Contains(src, want[i]) {
			t.Fatalf("raw %q is not a slice of the source", want[i])
		}
	}
}

func rawOf(t *testing.T, n ast.Node) string {
	t.Helper()
	switch n := n.(type) {
	case ast.Paragraph:
		return n.Raw
	case ast.Heading:
		return n.Raw
	case ast.CodeBlock:
		return n.Raw
	case ast.BlockQuote:
		return n.Raw
	case ast.OrderedList:
		return n.Raw
	case ast.UnorderedList:
		return n.Raw
	case ast.Table:
		return n.Raw
	case ast.Footnote:
		return n.Raw
	default:
		t.Fatalf("node %T has no raw text", n)
		return ""
	}
}

func TestParseEmptySource(t *testing.T) {
	for _, src := range []string{"", "\n\n", "   \r\n"} {
		prog := Parse(src)
		if prog.Children == nil || len(prog.Children) != 0 {
			t.Fatalf("expected empty non-nil children for %q, got %#v", src, prog.Children)
		}
		if prog.Footnotes == nil {
			t.Fatalf("expected non-nil footnote index for %q", src)
		}
	}
}

func TestParseParagraphJoinsTrimmedLines(t *testing.T) {
	prog := Parse("  a  \n b\n\nnext")
	want := []ast.Node{
		ast.Paragraph{Children: []ast.Inline{text("a\nb")}, Raw: "  a  \n b"},
		para("next"),
	}
	if !reflect.DeepEqual(prog.Children, want) {
		t.Fatalf("unexpected paragraphs %#v", prog.Children)
	}
}

func TestParseHeading(t *testing.T) {
	prog := Parse("## Hello **x**  ")
	want := ast.Heading{
		Level: 2,
		Children: []ast.Inline{
			text("Hello "),
			ast.Strong{Children: []ast.Inline{text("x")}, Raw: "**x**"},
		},
		Raw: "## Hello **x**  ",
	}
	if len(prog.Children) != 1 || !reflect.DeepEqual(prog.Children[0], want) {
		t.Fatalf("unexpected heading %#v", prog.Children)
	}
}

func TestParseHeadingKeepsTags(t *testing.T) {
	prog := Parse("# Notes #go")
	heading := prog.Children[0].(ast.Heading)
	want := []ast.Inline{text("Notes "), ast.Tag{Value: "go", Raw: "#go"}}
	if !reflect.DeepEqual(heading.Children, want) {
		t.Fatalf("unexpected heading content %#v", heading.Children)
	}
}

func TestParseCodeBlock(t *testing.T) {
	src := strings.Join([]string{"```go title=main.go", "a", "", "  b", "# not a heading", "```"}, "\n")
	prog := Parse(src)
	want := ast.CodeBlock{
		Language: "go",
		Meta:     "title=main.go",
		Value:    "a\n\n  b\n# not a heading",
		Raw:      src,
	}
	if len(prog.Children) != 1 || !reflect.DeepEqual(prog.Children[0], want) {
		t.Fatalf("unexpected code block %#v", prog.Children)
	}
}

func TestParseCodeBlockLongFence(t *testing.T) {
	prog := Parse("````md\nx\n````\nafter")
	code, ok := prog.Children[0].(ast.CodeBlock)
	if !ok {
		t.Fatalf("expected code block, got %T", prog.Children[0])
	}
	if code.Language != "md" || code.Meta != "" || code.Value != "x" {
		t.Fatalf("unexpected fence info %#v", code)
	}
	if !reflect.DeepEqual(prog.Children[1], para("after")) {
		t.Fatalf("expected paragraph after fence, got %#v", prog.Children[1])
	}
}

func TestParseUnterminatedCodeBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdast.parser")
	defer teardown()

	prog := Parse("```\n- item\n> quote")
	want := []ast.Node{ast.CodeBlock{Value: "- item\n> quote", Raw: "```\n- item\n> quote"}}
	if !reflect.DeepEqual(prog.Children, want) {
		t.Fatalf("expected fence to run to end of input, got %#v", prog.Children)
	}
}

func TestParseBlockQuoteCallout(t *testing.T) {
	prog := Parse("> [!NOTE]\n> Be careful")
	want := ast.BlockQuote{
		Children: []ast.Node{para("Be careful")},
		Callout:  "NOTE",
		Raw:      "> [!NOTE]\n> Be careful",
	}
	if len(prog.Children) != 1 || !reflect.DeepEqual(prog.Children[0], want) {
		t.Fatalf("unexpected callout %#v", prog.Children)
	}
}

func TestParseBlockQuoteWithoutCallout(t *testing.T) {
	for _, src := range []string{"> [!] x", "> [!NOTE] trailing", "> plain"} {
		quote := Parse(src).Children[0].(ast.BlockQuote)
		if quote.Callout != "" {
			t.Fatalf("expected no callout for %q, got %q", src, quote.Callout)
		}
	}
}

func TestParseNestedBlockQuote(t *testing.T) {
	prog := Parse("> > deep\n> shallow")
	outer := prog.Children[0].(ast.BlockQuote)
	inner, ok := outer.Children[0].(ast.BlockQuote)
	if !ok {
		t.Fatalf("expected nested quote, got %#v", outer.Children)
	}
	if !reflect.DeepEqual(inner.Children, []ast.Node{para("deep")}) {
		t.Fatalf("unexpected nested content %#v", inner.Children)
	}
	if !reflect.DeepEqual(outer.Children[1], para("shallow")) {
		t.Fatalf("unexpected outer content %#v", outer.Children)
	}
}

func TestParseHorizontalRule(t *testing.T) {
	prog := Parse("a\n\n-----\nb")
	want := []ast.Node{para("a"), ast.HorizontalRule{Value: "-----"}, para("b")}
	if !reflect.DeepEqual(prog.Children, want) {
		t.Fatalf("unexpected blocks %#v", prog.Children)
	}
}

func TestParseNeverEmitsLineBreak(t *testing.T) {
	prog := Parse(sampleSource())
	ast.Inspect(prog, func(n ast.Node) bool {
		if n.Kind() == ast.KindLineBreak {
			t.Fatalf("unexpected line break node in tree")
		}
		return true
	})
}
