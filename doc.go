// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wikitext serializes Markdown syntax trees as TiddlyWiki wikitext.
//
// The tree is built from the node types in this package, by hand or with
// [Parse], and rendered with [Serialize]. Every character that wikitext
// would read as markup is escaped, so the output displays the same text
// the tree holds.
package wikitext

// A Root is the top of a document.
type Root struct {
	Children []Node
}

func (*Root) Type() string         { return "root" }
func (x *Root) ChildNodes() []Node { return x.Children }

func handleRoot(n, _ Node, s *State, info Info) string {
	return s.ContainerFlow(n.(*Root), info)
}
