/*
Package parser assembles Markdown source into an ast.Program.

The source is split into line tokens by package lexer and consumed front to
back. Each block construct has a handler that absorbs the tokens belonging to
it; leaf text goes through package inline, while the bodies of block quotes,
list items and footnotes are parsed again as documents of their own, one
level deeper.

Parsing never fails. Input that does not form a valid construct degrades to
something simpler, most often a paragraph:

	| a | b |
	| c | d |

has no alignment row and therefore becomes a paragraph, not a table.

Nesting is bounded by WithMaxDepth. A region nested deeper than the limit is
kept as a single paragraph of its text.

Diagnostic events are traced with key 'mdast.parser'.
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdast.parser'.
func tracer() tracing.Trace {
	return tracing.Select("mdast.parser")
}
