// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

// An HTML is raw HTML, written out verbatim.
// It can be a block or inline, like <b>this</b>.
type HTML struct {
	Value string
}

func (*HTML) Type() string { return "html" }

func handleHTML(n, _ Node, _ *State, _ Info) string {
	return n.(*HTML).Value
}
