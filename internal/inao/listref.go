package inao

import (
	"fmt"
	"regexp"
	"strconv"
)

// List reference tokens: (d1) is a plain number, (c2) a circled number,
// (s3) a square-bracketed number, (a4) an alphabetic label. A backslash
// escape such as (\d1) suppresses conversion; the backslash is stripped in a
// second pass so escaped tokens come out literal.
var (
	refNumber  = regexp.MustCompile(`\(d(\d+)\)`)
	refCircle  = regexp.MustCompile(`\(c(\d+)\)`)
	refSquare  = regexp.MustCompile(`\(s(\d+)\)`)
	refAlpha   = regexp.MustCompile(`\(a(\d+)\)`)
	refEscaped = regexp.MustCompile(`\(\\([dcsa]?)(\d+)\)`)
)

// toListStyle rewrites list reference tokens into their fullwidth glyph
// forms. Conversion must run before unescaping: the converting patterns
// cannot match across a backslash, and the escape pass then restores the
// literal form.
func toListStyle(s string) string {
	s = refNumber.ReplaceAllString(s, "（${1}）")
	s = refCircle.ReplaceAllString(s, "（○${1}）")
	s = refSquare.ReplaceAllString(s, "［${1}］")
	s = refAlpha.ReplaceAllStringFunc(s, func(m string) string {
		n, _ := strconv.Atoi(refAlpha.FindStringSubmatch(m)[1])
		// Labels past (a26) address beyond 'z'; undefined, left unchecked.
		return fmt.Sprintf("（%c）", rune('a'+n-1))
	})
	return refEscaped.ReplaceAllString(s, "(${1}${2})")
}
