package inao

import (
	"strings"

	"golang.org/x/text/width"
)

// visualWidth returns the number of display columns a line occupies under
// East Asian Width rules: Fullwidth and Wide runes take two columns,
// Halfwidth and Narrow runes take one. Runes outside those classes
// (Neutral, Ambiguous) take none.
func visualWidth(line string) int {
	w := 0
	for _, r := range line {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		case width.EastAsianHalfwidth, width.EastAsianNarrow:
			w++
		}
	}
	return w
}

// maxLineWidth returns the visual width of the widest line in text.
func maxLineWidth(text string) int {
	max := 0
	for _, line := range strings.Split(text, "\n") {
		if w := visualWidth(strings.TrimSuffix(line, "\r")); w > max {
			max = w
		}
	}
	return max
}
