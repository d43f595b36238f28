// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

// A Paragraph is a block of running text.
type Paragraph struct {
	Children []Node
}

func (*Paragraph) Type() string         { return "paragraph" }
func (x *Paragraph) ChildNodes() []Node { return x.Children }

func handleParagraph(n, _ Node, s *State, info Info) string {
	defer s.Enter("paragraph")()
	defer s.Enter("phrasing")()
	return s.ContainerPhrasing(n.(*Paragraph), info)
}
