// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "strings"

// A flowPart is one piece of a rendered flow container:
// either a child's output or, when node is nil,
// the separator between two children.
type flowPart struct {
	node  Node
	value string
}

// ContainerFlow renders the block children of parent,
// separated as the join rules decide.
func (s *State) ContainerFlow(parent Parent, info Info) string {
	var b strings.Builder
	for _, p := range s.flowParts(parent, info) {
		b.WriteString(p.value)
	}
	return b.String()
}

func (s *State) flowParts(parent Parent, info Info) []flowPart {
	var children []Node
	for _, c := range parent.ChildNodes() {
		// Footnote definitions are inlined at their references.
		if _, ok := c.(*FootnoteDefinition); !ok {
			children = append(children, c)
		}
	}

	tracker := NewTracker(info)
	parts := make([]flowPart, 0, 2*len(children))
	for i, child := range children {
		value := s.Handle(child, parent, info.with("\n", "\n", tracker.Current()))
		parts = append(parts, flowPart{child, tracker.Move(value)})
		if _, ok := child.(*List); !ok {
			s.bulletLastUsed = ""
		}
		if i+1 < len(children) {
			sep := s.between(child, children[i+1], parent)
			parts = append(parts, flowPart{nil, tracker.Move(sep)})
		}
	}
	return parts
}

// neutralBlock separates blocks that would merge if adjacent.
const neutralBlock = "\n\n<!---->\n\n"

// between returns the separator between the blocks left and right.
func (s *State) between(left, right, parent Node) string {
	for i := len(s.join) - 1; i >= 0; i-- {
		switch j := s.join[i](left, right, parent, s); {
		case j == JoinUndecided:
			continue
		case j == JoinApart:
			return neutralBlock
		case j >= 0:
			return strings.Repeat("\n", 1+int(j))
		}
	}
	return "\n\n"
}

// indentLines calls f on every line of value,
// keeping the line endings, and returns the result.
func indentLines(value string, f func(line string, n int, blank bool) string) string {
	var b strings.Builder
	n := 0
	for {
		i := strings.IndexAny(value, "\r\n")
		if i < 0 {
			break
		}
		eol := 1
		if value[i] == '\r' && i+1 < len(value) && value[i+1] == '\n' {
			eol = 2
		}
		b.WriteString(f(value[:i], n, i == 0))
		b.WriteString(value[i : i+eol])
		value = value[i+eol:]
		n++
	}
	b.WriteString(f(value, n, value == ""))
	return b.String()
}
