package inao

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	footnoteOpen  = "◆注/◆"
	footnoteClose = "◆/注◆"
	kbdMark       = "△"
)

var (
	// ●title::body[note] in running text becomes a tabbed caption with
	// the note on its own line.
	inlineCaption = regexp.MustCompile(`●(.+?)::(.+?)\[(.+)\]`)
	rubyText      = regexp.MustCompile(`\A(.+)\((.+)\)\z`)
	newlines      = strings.NewReplacer("\r", "", "\n", "")
)

// renderInline renders the inline children of n in document order and
// returns their concatenated inao form. A footnote marker may open in one
// text run and close in a later sibling; the open flag lives in st so it
// survives the elements in between. altItalic selects the ◆i-j◆ italic used
// inside list items and columns.
func (c *Converter) renderInline(st *state, n *html.Node, altItalic bool) string {
	var out strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			out.WriteString(c.renderTextRun(st, child.Data))
		case html.ElementNode:
			out.WriteString(c.renderElement(st, child, altItalic))
		}
	}
	return out.String()
}

func (c *Converter) renderTextRun(st *state, text string) string {
	if strings.Contains(text, "(注:") {
		text = strings.Replace(text, "(注:", footnoteOpen, 1)
		st.inFootnote = true
	}
	if st.inFootnote && strings.Contains(text, ")") {
		text = strings.Replace(text, ")", footnoteClose, 1)
		st.inFootnote = false
	}
	text = newlines.Replace(text)
	text = inlineCaption.ReplaceAllString(text, "●${1}\t${2}\n${3}")
	return toListStyle(text)
}

// renderElement emits the inao form of a single inline element. Tags
// outside the manuscript vocabulary emit nothing.
func (c *Converter) renderElement(st *state, n *html.Node, altItalic bool) string {
	switch n.Data {
	case "p":
		// Loose list items wrap their content in a paragraph; render it
		// in place so the item text survives.
		return c.renderInline(st, n, altItalic)
	case "a":
		// Link text stays inline; the URL trails as a footnote.
		return trimmedText(n) + footnoteOpen + attr(n, "href") + footnoteClose
	case "img":
		st.imgCount++
		title := attr(n, "alt")
		if title == "" {
			title = attr(n, "title")
		}
		return fmt.Sprintf("●図%d\t%s\n%s\n", st.imgCount, title, attr(n, "src"))
	case "code":
		return "◆cmd/◆" + trimmedText(n) + "◆/cmd◆"
	case "strong", "b":
		return "◆b/◆" + trimmedText(n) + "◆/b◆"
	case "em", "i":
		if altItalic {
			return "◆i-j/◆" + trimmedText(n) + "◆/i-j◆"
		}
		return "◆i/◆" + trimmedText(n) + "◆/i◆"
	case "kbd":
		return trimmedText(n) + kbdMark
	case "span":
		return c.renderSpan(n)
	}
	return ""
}

// renderSpan dispatches on the span's class attribute. Unknown classes are
// suppressed rather than passed through.
func (c *Converter) renderSpan(n *html.Node) string {
	text := trimmedText(n)
	switch attr(n, "class") {
	case "red":
		return "◆red/◆" + text + "◆/red◆"
	case "ruby":
		if m := rubyText.FindStringSubmatch(text); m != nil {
			return "◆ルビ/◆" + m[1] + "◆" + m[2] + "◆/ルビ◆"
		}
		return text
	case "symbol":
		return "◆" + text + "◆"
	}
	return ""
}
