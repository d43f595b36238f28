// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"regexp"
	"strings"
)

// A Code is a block of preformatted code.
//
// It is written as a fenced block, or indented by four spaces
// when fences are not required and the content allows it.
// The fence is made longer as needed if the fence text
// appears in Value.
type Code struct {
	Lang  string // language, the first word of the info string
	Meta  string // rest of the info string
	Value string
}

// An InlineCode is a code span, `like this`.
type InlineCode struct {
	Value string
}

func (*Code) Type() string       { return "code" }
func (*InlineCode) Type() string { return "inlineCode" }

var (
	nonSpace  = regexp.MustCompile(`[^ \r\n]`)
	blankEdge = regexp.MustCompile(`^[\t ]*(?:[\r\n]|$)|(?:^|[\r\n])[\t ]*$`)
)

// codeIndented reports whether c is written as an indented block.
func (s *State) codeIndented(c *Code) bool {
	return !s.Options.Fences &&
		c.Value != "" &&
		c.Lang == "" &&
		nonSpace.MatchString(c.Value) &&
		!blankEdge.MatchString(c.Value)
}

func handleCode(n, _ Node, s *State, _ Info) string {
	c := n.(*Code)
	if s.codeIndented(c) {
		defer s.Enter("codeIndented")()
		return indentLines(c.Value, func(line string, _ int, blank bool) string {
			if blank {
				return ""
			}
			return "    " + line
		})
	}

	marker := s.Options.Fence
	suffix := "Tilde"
	if marker == "`" {
		suffix = "GraveAccent"
	}
	seq := strings.Repeat(marker, max(longestStreak(c.Value, marker[0])+1, 3))

	defer s.Enter("codeFenced")()
	var b strings.Builder
	b.WriteString(seq)
	if c.Lang != "" {
		exit := s.Enter("codeFencedLang" + suffix)
		b.WriteString(s.Safe(c.Lang, "`", " ", "`"))
		exit()
		if c.Meta != "" {
			exit := s.Enter("codeFencedMeta" + suffix)
			b.WriteString(" ")
			b.WriteString(s.Safe(c.Meta, " ", "\n", "`"))
			exit()
		}
	}
	b.WriteString("\n")
	if c.Value != "" {
		b.WriteString(c.Value)
		b.WriteString("\n")
	}
	b.WriteString(seq)
	return b.String()
}

// longestStreak returns the length of the longest run of c in s.
func longestStreak(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

func handleInlineCode(n, _ Node, s *State, _ Info) string {
	value := n.(*InlineCode).Value

	// The fence is the shortest run of backticks not found in value.
	runs := make(map[int]bool)
	for i := 0; i < len(value); {
		if value[i] != '`' {
			i++
			continue
		}
		j := i
		for j < len(value) && value[j] == '`' {
			j++
		}
		runs[j-i] = true
		i = j
	}
	size := 1
	for runs[size] {
		size++
	}
	seq := strings.Repeat("`", size)

	// Pad so leading or trailing spaces and backticks survive.
	if strings.ContainsFunc(value, func(r rune) bool { return r != ' ' && r != '\n' && r != '\r' }) {
		edge := func(c byte) bool { return c == ' ' || c == '\n' || c == '\r' }
		if edge(value[0]) && edge(value[len(value)-1]) || value[0] == '`' || value[len(value)-1] == '`' {
			value = " " + value + " "
		}
	}

	// A line ending followed by a block marker would start a new block.
	for _, p := range s.unsafe {
		if !p.AtBreak {
			continue
		}
		for from := 0; from < len(value); {
			loc := p.re.FindStringIndex(value[from:])
			if loc == nil {
				break
			}
			start := from + loc[0]
			pos := start
			if value[pos] == '\n' && pos > 0 && value[pos-1] == '\r' {
				pos--
			}
			value = value[:pos] + " " + value[start+1:]
			from = pos + 1
		}
	}

	if s.InConstruct("tableCell") {
		value = strings.ReplaceAll(value, "|", `\|`)
	}
	return seq + value + seq
}
