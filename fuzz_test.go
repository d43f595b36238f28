// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func FuzzToTid(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for _, md := range a.Files {
			if strings.HasSuffix(md.Name, ".md") {
				f.Add(decode(string(md.Data)))
			}
		}
	}
	f.Fuzz(func(t *testing.T, s string) {
		out, err := ToTid([]byte(s), nil)
		if err != nil {
			t.Fatalf("in: %q\nerror: %v", s, err)
		}
		if len(out) > 0 && out[len(out)-1] != '\n' && out[len(out)-1] != '\r' {
			t.Fatalf("in: %q\nout: %q\nmissing final line ending", s, out)
		}
		again, _ := ToTid([]byte(s), nil)
		if string(again) != string(out) {
			t.Fatalf("in: %q\nnot deterministic:\n%q\n%q", s, out, again)
		}
	})
}
