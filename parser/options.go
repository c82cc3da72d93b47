package parser

import (
	"golang.org/x/text/unicode/norm"

	"github.com/kk-code-lab/mdast/internal/textutil"
)

// DefaultMaxDepth is the block nesting limit used unless WithMaxDepth says
// otherwise.
const DefaultMaxDepth = 64

// Option configures parsing.
type Option func(*config)

type config struct {
	maxDepth  int
	tabWidth  int
	normalize bool
}

func newConfig(opts []Option) *config {
	cfg := &config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithMaxDepth limits how deeply block quotes, list items and footnotes may
// nest. Values below 1 are treated as 1.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		if depth < 1 {
			depth = 1
		}
		cfg.maxDepth = depth
	}
}

// WithTabWidth expands tabs to the next multiple of width columns before
// parsing. A width of 0 keeps tabs as they are.
func WithTabWidth(width int) Option {
	return func(cfg *config) {
		if width < 0 {
			width = 0
		}
		cfg.tabWidth = width
	}
}

// WithNormalization enables or disables Unicode NFC normalization of the
// source before parsing.
func WithNormalization(enabled bool) Option {
	return func(cfg *config) {
		cfg.normalize = enabled
	}
}

// prepare applies the source transformations. Raw fields of the resulting
// tree refer to the prepared text.
func (cfg *config) prepare(source string) string {
	if cfg.normalize {
		source = norm.NFC.String(source)
	}
	if cfg.tabWidth > 0 {
		source = textutil.ExpandTabs(source, cfg.tabWidth)
	}
	return source
}
