package inao

import "testing"

func TestToListStyle_Conversions(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(d1)", "（1）"},
		{"(d12)", "（12）"},
		{"(c3)", "（○3）"},
		{"(s2)", "［2］"},
		{"(a1)", "（a）"},
		{"(a2)", "（b）"},
		{"(a26)", "（z）"},
		{"see (d1) and (c2)", "see （1） and （○2）"},
	}
	for _, c := range cases {
		if got := toListStyle(c.in); got != c.want {
			t.Errorf("toListStyle(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestToListStyle_Identity(t *testing.T) {
	// Anything that is not a reference token passes through unchanged.
	cases := []string{
		"",
		"plain text",
		"(x1)",
		"(d)",
		"(1)",
		"（1）",
		"parenthesized (content) stays",
	}
	for _, c := range cases {
		if got := toListStyle(c); got != c {
			t.Errorf("toListStyle(%q): expected identity, got %q", c, got)
		}
	}
}

func TestToListStyle_Escapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`(\d1)`, "(d1)"},
		{`(\c3)`, "(c3)"},
		{`(\s2)`, "(s2)"},
		{`(\a1)`, "(a1)"},
		{`(\5)`, "(5)"},
		{`(\d1) but (d1)`, "(d1) but （1）"},
	}
	for _, c := range cases {
		if got := toListStyle(c.in); got != c.want {
			t.Errorf("toListStyle(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
