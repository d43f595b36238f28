// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"fmt"
	"strings"
	"testing"
)

var rep = strings.Repeat

func repf(f func(int) string, n int) string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = f(i)
	}
	return strings.Join(out, "")
}

// Pathological trees, in the spirit of cmark-gfm/test/pathological_tests.py.

func para(children ...Node) *Paragraph { return &Paragraph{Children: children} }

func nestQuotes(n int) Node {
	var x Node = para(&Text{Value: "a"})
	for i := 0; i < n; i++ {
		x = &Blockquote{Children: []Node{x}}
	}
	return x
}

func nestLists(n int) Node {
	tight := false
	var x *List
	for i := 0; i < n; i++ {
		item := &ListItem{Spread: &tight, Children: []Node{para(&Text{Value: "a"})}}
		if x != nil {
			item.Children = append(item.Children, x)
		}
		x = &List{Spread: &tight, Children: []Node{item}}
	}
	return x
}

func nestAttention(n int) Node {
	var x Node = &Text{Value: "b"}
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			x = &Strong{Children: []Node{x}}
		} else {
			x = &Emphasis{Children: []Node{x}}
		}
	}
	return para(x)
}

func longTable(n int) Node {
	t := &Table{}
	for i := 0; i < n; i++ {
		cell := &TableCell{Children: []Node{&Text{Value: "abc"}}}
		t.Children = append(t.Children, &TableRow{Children: []Node{cell}})
	}
	return t
}

var bigTests = []struct {
	name string
	in   Node
	out  string
}{
	{
		"nested block quotes",
		nestQuotes(5000),
		rep("> ", 5000) + "a\n",
	},
	{
		"deeply nested lists",
		nestLists(1000),
		repf(func(x int) string { return rep("*", x+1) + " a\n" }, 1000),
	},
	{
		"nested strong emph",
		nestAttention(2000),
		rep("//''", 1000) + "b" + rep("''//", 1000) + "\n",
	},
	{
		"many unmatched stars",
		para(&Text{Value: rep("a* ", 50000) + "a"}),
		rep(`a\* `, 50000) + "a\n",
	},
	{
		"backticks",
		para(&InlineCode{Value: repf(func(x int) string { return "e" + rep("`", x) }, 200)}),
		rep("`", 200) + " " + repf(func(x int) string { return "e" + rep("`", x) }, 200) + " " + rep("`", 200) + "\n",
	},
	{
		"tables",
		longTable(30000),
		"| abc |\n| --- |\n" + rep("| abc |\n", 30000-1),
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Serialize(&Root{Children: []Node{tt.in}}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.out {
				t.Fatalf("%s:\nhave %q\nwant %q", tt.name, compress(out), compress(tt.out))
			}
		})
	}
}
