// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var splitTests = []struct {
	name string
	in   string
	fm   *FrontMatter
	body string
}{
	{"none", "a\n", nil, "a\n"},
	{"yaml", "---\ntitle: x\n---\nbody\n", &FrontMatter{Kind: "yaml", Value: "title: x"}, "body\n"},
	{"empty", "---\n---\nbody", &FrontMatter{Kind: "yaml"}, "body"},
	{"toml", "+++\na = 1\n+++\n", &FrontMatter{Kind: "toml", Value: "a = 1"}, ""},
	{"closed at end", "---\na: b\n---", &FrontMatter{Kind: "yaml", Value: "a: b"}, ""},
	{"crlf", "---\r\na: b\r\n---\r\nx", &FrontMatter{Kind: "yaml", Value: "a: b"}, "x"},
	{"unclosed", "---\na\n", nil, "---\na\n"},
	{"rule", "---\n", nil, "---\n"},
	{"not at start", "a\n---\nb\n---\n", nil, "a\n---\nb\n---\n"},
	{"four dashes", "----\na\n----\n", nil, "----\na\n----\n"},
}

func TestSplitFrontMatter(t *testing.T) {
	for _, tt := range splitTests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := splitFrontMatter([]byte(tt.in))
			if diff := cmp.Diff(tt.fm, fm); diff != "" {
				t.Errorf("front matter (-want +have):\n%s", diff)
			}
			if string(body) != tt.body {
				t.Errorf("body = %q, want %q", body, tt.body)
			}
		})
	}
}

var fieldTests = []struct {
	name string
	in   string
	out  string
}{
	{"empty", "", ""},
	{"title", "title: Hello\n", "title: Hello"},
	{"lower case", "Title: x\n", "title: x"},
	{"tags", "title: Hello\ntags: [a, b c]\n", "title: Hello\ntags: a [[b c]]"},
	{"created", "created: 2024-01-02T03:04:05Z\n", "created: 20240102030405000"},
	{"created date", "modified: 2024-01-02\n", "modified: 20240102000000000"},
	{"created text", "created: soon\n", "created: soon"},
	{"folded", "text: |\n  a\n  b\n", "text: a b"},
	{"number", "n: 3\n", "n: 3"},
	{"alias", "x: &v hi\ny: *v\n", "x: hi\ny: hi"},
}

func TestTidFields(t *testing.T) {
	for _, tt := range fieldTests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tidFields(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.out {
				t.Errorf("have %q, want %q", out, tt.out)
			}
		})
	}
}

func TestTidFieldsError(t *testing.T) {
	tests := []struct {
		in, err string
	}{
		{"- a\n", "want a mapping, found sequence"},
		{"a: {b: c}\n", `field "a": unsupported mapping value`},
		{"a: [[x]]\n", `field "a": list item is a sequence`},
		{"a: [\n", "yaml:"},
	}
	for _, tt := range tests {
		_, err := tidFields(tt.in)
		if err == nil || !strings.Contains(err.Error(), tt.err) {
			t.Errorf("tidFields(%q) = %v, want error containing %q", tt.in, err, tt.err)
		}
	}
}

func TestFrontMatterSerialize(t *testing.T) {
	fields := &Options{FrontMatterFields: true}
	tests := []struct {
		name string
		opts *Options
		in   []Node
		out  string
	}{
		{"yaml", nil, []Node{&FrontMatter{Value: "a: b"}, para(text("x"))}, "---\na: b\n---\n\nx\n"},
		{"empty", nil, []Node{&FrontMatter{}}, "---\n---\n"},
		{"toml", nil, []Node{&FrontMatter{Kind: "toml", Value: "a = 1"}}, "+++\na = 1\n+++\n"},
		{"fields", fields, []Node{&FrontMatter{Value: "title: x"}, para(text("body"))}, "title: x\n\nbody\n"},
		{"toml fields", fields, []Node{&FrontMatter{Kind: "toml", Value: "a = 1"}}, "+++\na = 1\n+++\n"},
		{"rule text", nil, []Node{para(text("---"))}, "\\---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := serialize(t, tt.opts, tt.in...); out != tt.out {
				t.Errorf("have %q, want %q", out, tt.out)
			}
		})
	}
}

func TestFrontMatterFieldsError(t *testing.T) {
	_, err := Serialize(&Root{Children: []Node{&FrontMatter{Value: "- a"}}}, &Options{FrontMatterFields: true})
	if err == nil || err.Error() != "front matter: want a mapping, found sequence" {
		t.Fatalf("err = %v", err)
	}
}
