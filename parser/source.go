package parser

import (
	"fmt"

	"github.com/kk-code-lab/mdast/ast"
	"github.com/kk-code-lab/mdast/internal/textutil"
)

// ErrInvalidEncoding is returned by ParseBytes for content that is neither
// UTF-8 nor UTF-16 with a byte order mark.
var ErrInvalidEncoding = textutil.ErrInvalidEncoding

// ParseBytes decodes content and parses it. UTF-8 with or without a byte
// order mark and BOM-marked UTF-16 are accepted.
func ParseBytes(content []byte, opts ...Option) (*ast.Program, error) {
	source, err := textutil.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Parse(source, opts...), nil
}
