package parser

import (
	"strings"

	"github.com/kk-code-lab/mdast/ast"
	"github.com/kk-code-lab/mdast/inline"
	"github.com/kk-code-lab/mdast/lexer"
)

// table consumes consecutive pipe rows. Without at least a header and a valid
// alignment row the rows are read as a paragraph.
func (p *parser) table() {
	start := p.pos
	var rows []string
	for p.peek().Kind == lexer.Table {
		rows = append(rows, p.next().Text)
	}
	raw := p.rawSince(start)

	if len(rows) < 2 || !isAlignmentRow(rows[1]) {
		p.tableAsParagraph(rows, raw, start)
		return
	}
	header := parseRow(rows[0], -1)
	columns := len(header)
	if columns == 0 {
		p.tableAsParagraph(rows, raw, start)
		return
	}
	body := make([][][]ast.Inline, 0, len(rows)-2)
	for _, row := range rows[2:] {
		body = append(body, parseRow(row, columns))
	}
	p.emit(ast.Table{
		Header: header,
		Rows:   body,
		Align:  parseAlignment(rows[1], columns),
		Raw:    raw,
	})
}

func (p *parser) tableAsParagraph(rows []string, raw string, start int) {
	tracer().Debugf("line %d: %d pipe rows do not form a table, reading as paragraph",
		p.tokens[start].Line, len(rows))
	p.emit(ast.Paragraph{
		Children: inline.Tokenize(strings.TrimSpace(strings.Join(rows, "\n"))),
		Raw:      raw,
	})
}

// parseRow tokenizes the cells of a row. When columns is not negative the
// row is padded with empty cells or truncated to that many columns.
func parseRow(row string, columns int) [][]ast.Inline {
	cells := splitTableRow(row)
	if columns < 0 {
		columns = len(cells)
	}
	out := make([][]ast.Inline, columns)
	for i := range out {
		if i < len(cells) {
			out[i] = inline.Tokenize(cells[i])
		} else {
			out[i] = []ast.Inline{}
		}
	}
	return out
}

func isAlignmentRow(row string) bool {
	cells := splitTableRow(row)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !isAlignmentCell(cell) {
			return false
		}
	}
	return true
}

// isAlignmentCell accepts ":-+:", ":--+", "--+:" and "---+".
func isAlignmentCell(cell string) bool {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":") && len(cell) > 1
	dashes := strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
	if strings.Trim(dashes, "-") != "" {
		return false
	}
	switch {
	case left && right:
		return len(dashes) >= 1
	case left || right:
		return len(dashes) >= 2
	default:
		return len(dashes) >= 3
	}
}

func parseAlignment(row string, columns int) []ast.Alignment {
	cells := splitTableRow(row)
	align := make([]ast.Alignment, columns)
	for i := 0; i < columns && i < len(cells); i++ {
		cell := cells[i]
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			align[i] = ast.AlignCenter
		case right:
			align[i] = ast.AlignRight
		default:
			align[i] = ast.AlignLeft
		}
	}
	return align
}

// splitTableRow returns the trimmed cells between the outer pipes of row.
func splitTableRow(row string) []string {
	parts := splitPipes(strings.TrimSpace(row))
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitPipes splits line at pipes that are neither escaped nor inside a code
// span. Escapes are kept so that the cell text still tokenizes to them. When
// a code span is never closed, its backticks are not treated as a span.
func splitPipes(line string) []string {
	parts, open := splitCells(line, true)
	if open {
		parts, _ = splitCells(line, false)
	}
	return parts
}

func splitCells(line string, codeSpans bool) ([]string, bool) {
	var parts []string
	var buf []rune
	inCode := false
	backticks := 0
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 < len(runes) {
				buf = append(buf, r, runes[i+1])
				i++
				continue
			}
		case '`':
			if !codeSpans {
				break
			}
			n := countRepeat(runes[i:], '`')
			buf = append(buf, runes[i:i+n]...)
			i += n - 1
			switch {
			case !inCode:
				inCode = true
				backticks = n
			case n == backticks:
				inCode = false
				backticks = 0
			}
			continue
		case '|':
			if !inCode {
				parts = append(parts, string(buf))
				buf = buf[:0]
				continue
			}
		}
		buf = append(buf, r)
	}
	return append(parts, string(buf)), inCode
}

func countRepeat(runes []rune, r rune) int {
	n := 0
	for n < len(runes) && runes[n] == r {
		n++
	}
	return n
}
