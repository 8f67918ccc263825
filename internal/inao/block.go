package inao

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	captionLine  = regexp.MustCompile(`●(.+?)::(.+)`)
	cmdMarker    = regexp.MustCompile(`\A!!!\s*cmd[ \t]*\r?\n`)
	codeComment  = regexp.MustCompile(`\(注:(.+?)\)`)
	codeBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	codeItalic   = regexp.MustCompile(`___(.+?)___`)
	tableCaption = regexp.MustCompile(`\A(.+?)::(.+)\z`)
)

// renderBlocks walks root's child elements in document order and appends
// each block's inao form to the output. Tags outside the manuscript
// vocabulary emit nothing.
func (c *Converter) renderBlocks(st *state, root *html.Node) error {
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			st.out.WriteString(strings.Repeat("■", level))
			st.out.WriteString(trimmedText(n))
			st.out.WriteString("\n")

		case "p":
			text := c.renderInline(st, n, st.inColumn)
			if strings.TrimSpace(text) != "" {
				st.out.WriteString(text)
				st.out.WriteString("\n")
			}

		case "pre":
			c.renderCodeBlock(st, n)

		case "ul":
			for _, li := range findAll(n, "li") {
				st.out.WriteString("・")
				st.out.WriteString(c.renderInline(st, li, true))
				st.out.WriteString("\n")
			}

		case "ol":
			style := attr(n, "class")
			if style == "" {
				style = c.cfg.DefaultList
			}
			for i, li := range findAll(n, "li") {
				st.out.WriteString(toListStyle(fmt.Sprintf("(%c%d)", style[0], i+1)))
				st.out.WriteString(c.renderInline(st, li, true))
				st.out.WriteString("\n")
			}

		case "table":
			c.renderTable(st, n)

		case "div":
			if attr(n, "class") == "column" {
				if err := c.renderColumn(st, n); err != nil {
					return err
				}
			}

		case "blockquote":
			c.renderQuote(st, n)
		}
	}
	return nil
}

// renderCodeBlock emits a pre block as an inao list. A leading "!!! cmd"
// line switches the block to the white list variant. The widest line is
// checked against the column ceiling for the block's kind; an oversized
// block is reported but still emitted.
func (c *Converter) renderCodeBlock(st *state, n *html.Node) {
	var text string
	if code := findFirst(n, "code"); code != nil {
		text = textContent(code)
	}
	text = captionLine.ReplaceAllString(text, "●${1}\t${2}")
	label := "list"
	if m := cmdMarker.FindString(text); m != "" {
		text = text[len(m):]
		label = "list-white"
	}
	text = toListStyle(text)
	text = strings.TrimRight(text, "\n")

	limit := c.cfg.MaxInlineListLength
	if strings.HasPrefix(text, "●") {
		limit = c.cfg.MaxListLength
	}
	if w := maxLineWidth(text); w > limit {
		c.warn(LengthWarning{Width: w, Limit: limit, Block: text})
	}

	text = codeComment.ReplaceAllString(text, "◆comment/◆${1}◆/comment◆")
	text = codeBold.ReplaceAllString(text, "◆cmd-b/◆${1}◆/cmd-b◆")
	text = codeItalic.ReplaceAllString(text, "◆i-j/◆${1}◆/i-j◆")

	fmt.Fprintf(&st.out, "◆%s/◆\n%s\n◆/%s◆\n", label, text, label)
}

// renderTable emits header and data cells row by row, tab separated. The
// summary attribute carries an optional title::body caption.
func (c *Converter) renderTable(st *state, n *html.Node) {
	st.out.WriteString("◆table/◆\n")
	if m := tableCaption.FindStringSubmatch(attr(n, "summary")); m != nil {
		fmt.Fprintf(&st.out, "●%s\t%s\n", m[1], m[2])
	}
	st.out.WriteString("◆table-title◆\n")
	for _, tr := range findAll(n, "tr") {
		var cells []string
		for _, th := range findAll(tr, "th") {
			cells = append(cells, trimmedText(th))
		}
		for _, td := range findAll(tr, "td") {
			cells = append(cells, trimmedText(td))
		}
		st.out.WriteString(strings.Join(cells, "\t"))
		st.out.WriteString("\n")
	}
	st.out.WriteString("◆/table◆\n")
}

// renderColumn serializes the container's children back to markup and runs
// them through the document entry point, so the column renders as an
// independent document with its own figure numbering.
func (c *Converter) renderColumn(st *state, n *html.Node) error {
	var buf bytes.Buffer
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return fmt.Errorf("serialize column: %w", err)
		}
	}
	inner, err := c.toInao(buf.Bytes(), true)
	if err != nil {
		return err
	}
	st.out.WriteString("◆column/◆\n")
	st.out.WriteString(inner)
	st.out.WriteString("◆/column◆\n")
	return nil
}

// renderQuote keeps only the last child paragraph of the quote, with every
// whitespace rune stripped. The output target is CJK text where inter-word
// spaces carry no meaning.
func (c *Converter) renderQuote(st *state, n *html.Node) {
	var text string
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			text = c.renderInline(st, child, st.inColumn)
		}
	}
	fmt.Fprintf(&st.out, "◆quote/◆\n%s\n◆/quote◆\n", stripSpace(text))
}
