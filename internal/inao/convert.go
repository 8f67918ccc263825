// Package inao converts a markdown superset into the inao plain-text
// publishing markup used in technical book and magazine production.
//
// The input markdown may embed raw HTML the way production manuscripts do:
// div.column for columns, span.red/ruby/symbol for styled spans, kbd for
// keyboard input, table with a summary attribute for captioned tables. The
// markdown engine renders the document to HTML, the HTML parser turns it
// into a node tree, and the block and inline renderers walk that tree
// emitting inao tokens.
package inao

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// markdown is the shared rendering engine. goldmark instances are stateless
// and safe for concurrent use. WithUnsafe keeps the raw HTML the manuscript
// superset relies on.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

// Config carries the conversion settings.
type Config struct {
	// DefaultList is the ordered list style used when a list carries no
	// class attribute. Its first character is the reference style code,
	// so the stock "disc" produces (d1), (d2), ... references.
	DefaultList string

	// MaxListLength and MaxInlineListLength are visual column ceilings
	// for captioned and uncaptioned code blocks. Both must be positive.
	MaxListLength       int
	MaxInlineListLength int
}

// Converter turns manuscript markdown into inao markup. A Converter holds
// no per-document state and is safe for concurrent use.
type Converter struct {
	cfg  Config
	log  *slog.Logger
	warn func(LengthWarning)
}

// Option configures a Converter.
type Option func(*Converter)

// WithWarningHandler routes length violations to fn instead of the logger.
func WithWarningHandler(fn func(LengthWarning)) Option {
	return func(c *Converter) { c.warn = fn }
}

// New creates a Converter. Length violations are logged through log unless
// a warning handler is installed.
func New(cfg Config, log *slog.Logger, opts ...Option) *Converter {
	if cfg.DefaultList == "" {
		cfg.DefaultList = "disc"
	}
	c := &Converter{cfg: cfg, log: log}
	for _, o := range opts {
		o(c)
	}
	if c.warn == nil {
		c.warn = func(w LengthWarning) {
			c.log.Warn("line exceeds column limit",
				"width", w.Width,
				"limit", w.Limit,
				"block", w.Block,
			)
		}
	}
	return c
}

// Convert renders a markdown document into inao markup. Malformed document
// content never fails the conversion; only the markdown and HTML engines
// can return an error.
func (c *Converter) Convert(src []byte) (string, error) {
	return c.toInao(src, false)
}

// toInao is the document entry point. Column containers recurse through it
// with inColumn set, so every column numbers its figures from 1 and carries
// its own footnote state.
func (c *Converter) toInao(src []byte, inColumn bool) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	root := findBody(doc)
	if root == nil {
		root = doc
	}
	st := &state{inColumn: inColumn}
	if err := c.renderBlocks(st, root); err != nil {
		return "", err
	}
	return st.out.String(), nil
}

// state is the per-call render state: the output accumulator plus the
// counters the inline renderer threads across sibling nodes.
type state struct {
	out        strings.Builder
	inColumn   bool
	imgCount   int
	inFootnote bool
}
