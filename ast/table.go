package ast

import (
	"fmt"

	"github.com/kk-code-lab/mdast/internal/textutil"
)

// Alignment is the text alignment of a table column.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// MarshalText encodes the alignment as "left", "center" or "right".
func (a Alignment) MarshalText() ([]byte, error) {
	if a > AlignRight {
		return nil, fmt.Errorf("ast: invalid alignment %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// Columns reports the number of columns of the table.
func (t Table) Columns() int {
	return len(t.Header)
}

// ColumnWidths returns, for every column, the widest display width of the
// plain text of its header and data cells.
func (t Table) ColumnWidths() []int {
	widths := make([]int, len(t.Header))
	for i, cell := range t.Header {
		widths[i] = textutil.Width(PlainText(cell))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := textutil.Width(PlainText(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
