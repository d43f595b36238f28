// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "strings"

// A Heading is a section heading, written "! Title" through "!!!!!! Title".
type Heading struct {
	// Depth is the heading level: 1 through 6.
	// Other values are clamped to the valid range.
	Depth int

	Children []Node
}

func (*Heading) Type() string         { return "heading" }
func (x *Heading) ChildNodes() []Node { return x.Children }

// level returns the effective level, clamping Depth to the range [1, 6].
func (h *Heading) level() int {
	return max(1, min(6, h.Depth))
}

func handleHeading(n, _ Node, s *State, info Info) string {
	h := n.(*Heading)
	seq := strings.Repeat("!", h.level())

	defer s.Enter("headingAtx")()
	defer s.Enter("phrasing")()
	tracker := NewTracker(info)
	tracker.Move(seq + " ")
	value := s.ContainerPhrasing(h, info.with(seq+" ", "\n", tracker.Current()))

	// Leading whitespace would be dropped by the reader.
	if value != "" && (value[0] == ' ' || value[0] == '\t') {
		value = charRef(rune(value[0])) + value[1:]
	}
	if value == "" {
		value = seq
	} else {
		value = seq + " " + value
	}
	if s.Options.CloseAtx {
		value += " " + seq
	}
	return value
}
