// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "testing"

var safeTests = []struct {
	stack  []string
	value  string
	before string
	after  string
	encode []string
	out    string
}{
	{[]string{"phrasing"}, "a*b", "\n", "\n", nil, `a\*b`},
	{[]string{"phrasing"}, "# a", "\n", "\n", nil, `\# a`},
	{[]string{"phrasing"}, "# a", "x", "\n", nil, `# a`},
	{[]string{"phrasing"}, "a\n# b", "\n", "\n", nil, "a\n\\# b"},
	{[]string{"phrasing"}, "a\n  - b", "\n", "\n", nil, "a\n&#x20; \\- b"},
	{[]string{"phrasing"}, "1. a", "\n", "\n", nil, `1\. a`},
	{[]string{"phrasing"}, "1.a", "\n", "\n", nil, `1.a`},

	// "!" before "[" needs no escape once "[" is escaped.
	{[]string{"phrasing"}, "![", "x", "x", nil, `!\[`},
	// At a line start "!" is unsafe on its own.
	{[]string{"phrasing"}, "![", "\n", "x", nil, `\!\[`},
	// A neighbor in after is not escaped here, so it cannot break the match.
	{[]string{"phrasing"}, "a!", "\n", "[", nil, `a\!`},
	{[]string{"headingAtx", "phrasing"}, "a !", " ", "\n", nil, `a \!`},

	{[]string{"phrasing"}, "a &amp; b", "\n", "\n", nil, `a \&amp; b`},
	{[]string{"phrasing"}, "a & b", "\n", "\n", nil, `a & b`},
	{[]string{"phrasing"}, "a <b>", "\n", "\n", nil, `a \<b>`},
	{[]string{"phrasing"}, "a < b", "\n", "\n", nil, `a < b`},
	{[]string{"phrasing"}, "a_b`c", "\n", "\n", nil, "a\\_b\\`c"},
	{[]string{"phrasing"}, "a ", "\n", "\n", nil, "a&#x20;"},
	{[]string{"phrasing"}, " a", "\n", "\n", nil, "&#x20;a"},
	{[]string{"phrasing"}, "a\t", "\n", "\n", nil, "a&#x9;"},
	{[]string{"phrasing"}, "a\\", "\n", "\n", nil, `a\\`},

	// Existing backslashes are escaped only where they would escape.
	{[]string{"phrasing"}, `a\b`, "\n", "\n", nil, `a\b`},
	{[]string{"phrasing"}, `a\*`, "\n", "\n", nil, `a\\\*`},
	{[]string{"phrasing"}, `a\`, "\n", "*", nil, `a\\`},
	{[]string{"phrasing"}, `a\-b`, "\n", "\n", nil, `a\\-b`},

	// Inside spans that cannot hold markup, fewer characters are unsafe.
	{[]string{"phrasing", "autolink"}, "a*b_c", "\n", "\n", nil, "a*b_c"},
	{[]string{"phrasing", "label"}, "a]b", "[", "]", nil, `a\]b`},

	// Where a backslash cannot appear, characters are encoded.
	{[]string{"codeFencedLangGraveAccent"}, "a b", "`", " ", []string{"`"}, "a&#x20;b"},
	{[]string{"codeFencedLangGraveAccent"}, "a`b", "`", " ", []string{"`"}, "a&#x60;b"},
	{[]string{"titleQuote"}, `say "hi"`, `"`, `"`, []string{`"`}, "say &#x22;hi&#x22;"},
	{[]string{"tableCell", "phrasing"}, "a|b", " ", " ", nil, `a\|b`},
	{[]string{"tableCell", "phrasing"}, "a\nb", " ", " ", nil, "a&#xA;b"},

	// Outside phrasing, only line-start markers matter.
	{nil, "a*b", "\n", "\n", nil, "a*b"},
	{nil, "* a", "\n", "\n", nil, "* a"},
	{nil, "# a", "\n", "\n", nil, `\# a`},
	{nil, "-- a", "\n", "\n", nil, `\-- a`},
	{nil, "++ a", "\n", "\n", nil, `\++ a`},
}

func TestSafe(t *testing.T) {
	for _, tt := range safeTests {
		s, err := newState(nil)
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range tt.stack {
			s.Enter(name)
		}
		out := s.Safe(tt.value, tt.before, tt.after, tt.encode...)
		if out != tt.out {
			t.Errorf("Safe(%q, %q, %q) in %v\nhave %q\nwant %q", tt.value, tt.before, tt.after, tt.stack, out, tt.out)
		}
	}
}

func TestCharRef(t *testing.T) {
	for r, want := range map[rune]string{
		' ':  "&#x20;",
		'\n': "&#xA;",
		'`':  "&#x60;",
		'é':  "&#xE9;",
		'😀':  "&#x1F600;",
	} {
		if got := charRef(r); got != want {
			t.Errorf("charRef(%q) = %q, want %q", r, got, want)
		}
	}
}

func TestEscapeBackslashes(t *testing.T) {
	for _, tt := range []struct {
		value, after, out string
	}{
		{"abc", "", "abc"},
		{`a\b`, "", `a\b`},
		{`a\.`, "", `a\\.`},
		{`a\`, ".", `a\\`},
		{`a\`, "b", `a\`},
		{`a\`, "", `a\`},
		{`\\`, "", `\\\`},
	} {
		if out := escapeBackslashes(tt.value, tt.after); out != tt.out {
			t.Errorf("escapeBackslashes(%q, %q) = %q, want %q", tt.value, tt.after, out, tt.out)
		}
	}
}

func TestSafeNeighborOutsideValue(t *testing.T) {
	opts := &Options{Unsafe: []Pattern{
		{Character: "@"},
		{Character: "%", Before: "@"},
	}}
	for _, tt := range []struct {
		value, before, out string
	}{
		// The escaped "@" breaks the match of "%".
		{"@%", "\n", `\@%`},
		// An "@" in before is left as it is.
		{"%", "@", `\%`},
	} {
		s, err := newState(opts)
		if err != nil {
			t.Fatal(err)
		}
		if out := s.Safe(tt.value, tt.before, "\n"); out != tt.out {
			t.Errorf("Safe(%q, %q) = %q, want %q", tt.value, tt.before, out, tt.out)
		}
	}
}
