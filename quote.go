// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

// A Blockquote is a quoted block; each of its lines starts with "> ".
type Blockquote struct {
	Children []Node // content of quote
}

func (*Blockquote) Type() string         { return "blockquote" }
func (x *Blockquote) ChildNodes() []Node { return x.Children }

func handleBlockquote(n, _ Node, s *State, info Info) string {
	defer s.Enter("blockquote")()
	tracker := NewTracker(info)
	tracker.Move("> ")
	tracker.Shift(2)
	value := s.ContainerFlow(n.(*Blockquote), info.with(info.Before, info.After, tracker.Current()))
	return indentLines(value, func(line string, _ int, blank bool) string {
		if blank {
			return ">"
		}
		return "> " + line
	})
}
