// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"regexp"
	"strings"
)

// A ThematicBreak is a horizontal rule, "---".
type ThematicBreak struct{}

func (*ThematicBreak) Type() string { return "thematicBreak" }

func handleThematicBreak(_, _ Node, s *State, _ Info) string {
	return strings.Repeat(s.Options.Rule, s.Options.RuleRepetition)
}

// A Break is a hard line break inside a paragraph.
type Break struct{}

func (*Break) Type() string { return "break" }

var spaceOrTab = regexp.MustCompile(`[\t ]`)

func handleBreak(_, _ Node, s *State, info Info) string {
	// Where a line ending cannot appear, as in headings and
	// table cells, a break degrades to a space.
	for _, p := range s.unsafe {
		if p.Character == "\n" && s.inScope(&p.Pattern) {
			if spaceOrTab.MatchString(info.Before) {
				return ""
			}
			return " "
		}
	}
	return "\\\n"
}
