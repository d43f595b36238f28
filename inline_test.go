// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "testing"

var inlineTests = []struct {
	name string
	opts *Options
	in   []Node
	out  string
}{
	{"strong leading space", nil, []Node{para(&Strong{Children: []Node{text(" a")}})}, "''&#x20;a''\n"},
	{
		"emphasis trailing space",
		nil,
		[]Node{para(&Emphasis{Children: []Node{text("a ")}}, text("b"))},
		"//a&#x20;//&#x62;\n",
	},
	{
		"nested",
		nil,
		[]Node{para(&Emphasis{Children: []Node{&Strong{Children: []Node{text("a")}}}})},
		"//''a''//\n",
	},
	{
		"between words",
		nil,
		[]Node{para(text("a "), &Strong{Children: []Node{text("b")}}, text(" c"))},
		"a ''b'' c\n",
	},
	{
		"wiki links",
		&Options{WikiLinks: true},
		[]Node{para(text("x [[T|A]] y ![[E|z]] [[Plain]]"))},
		"x [[A|T]] y {{E}} [[Plain]]\n",
	},
	{
		"wiki links off",
		nil,
		[]Node{para(text("[[T|A]]"))},
		"\\[\\[T|A]]\n",
	},
	{"entity", nil, []Node{para(text("&amp;"))}, "\\&amp;\n"},
	{"bare ampersand", nil, []Node{para(text("a & b"))}, "a & b\n"},
	{"underscore", nil, []Node{para(text("a_b"))}, "a\\_b\n"},
	{"backtick", nil, []Node{para(text("a`b"))}, "a\\`b\n"},
	{"tilde", nil, []Node{para(text("~~a"))}, "\\~~a\n"},
	{"equals", nil, []Node{para(text("= a"))}, "\\= a\n"},
	{"numbered", nil, []Node{para(text("1. a"))}, "1\\. a\n"},
}

func TestInline(t *testing.T) {
	for _, tt := range inlineTests {
		t.Run(tt.name, func(t *testing.T) {
			if out := serialize(t, tt.opts, tt.in...); out != tt.out {
				t.Errorf("have %q, want %q", out, tt.out)
			}
		})
	}
}

func TestEncodeInfo(t *testing.T) {
	tests := []struct {
		outside, inside, marker string
		in, out                 bool
	}{
		{"a", "b", "//", false, false},
		{"a", "b", "_", true, true},
		{"a", " ", "//", true, true},
		{"a", ".", "//", false, true},
		{" ", " ", "//", true, true},
		{" ", "a", "//", false, false},
		{".", " ", "//", true, false},
		{".", "a", "//", false, false},
		{"", "a", "//", false, false},
	}
	for _, tt := range tests {
		in, out := encodeInfo(tt.outside, tt.inside, tt.marker)
		if in != tt.in || out != tt.out {
			t.Errorf("encodeInfo(%q, %q, %q) = %v, %v, want %v, %v", tt.outside, tt.inside, tt.marker, in, out, tt.in, tt.out)
		}
	}
}
