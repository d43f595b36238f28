// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Safe makes value safe to place between before and after in the
// output, given the open constructs: every unsafe character is
// escaped with a backslash or, for characters in encode and for
// non-punctuation, written as a character reference.
//
// before and after should be the actual neighboring output,
// at least one character each when known.
func (s *State) Safe(value, before, after string, encode ...string) string {
	full := before + value + after

	type need struct{ before, after bool }
	var positions []int
	needs := make(map[int]need)
	for _, p := range s.unsafe {
		if !s.inScope(&p.Pattern) {
			continue
		}
		anchored := p.Before != "" || p.AtBreak
		for _, m := range p.re.FindAllStringSubmatchIndex(full, -1) {
			pos := m[0]
			if anchored {
				pos = m[3]
			}
			n, seen := needs[pos]
			if !seen {
				positions = append(positions, pos)
				needs[pos] = need{anchored, p.After != ""}
				continue
			}
			// Every pattern firing at pos must agree.
			n.before = n.before && anchored
			n.after = n.after && p.After != ""
			needs[pos] = n
		}
	}
	slices.Sort(positions)

	var b strings.Builder
	start := len(before)
	end := len(full) - len(after)
	for i, pos := range positions {
		if pos < start || pos >= end {
			continue
		}
		// A neighboring unsafe character that needs no context
		// of its own is already escaped; that breaks the match.
		// Neighbors in before or after are not escaped here.
		if pos+1 < end && i+1 < len(positions) && positions[i+1] == pos+1 && needs[pos].after {
			if n := needs[pos+1]; !n.before && !n.after {
				continue
			}
		}
		if pos-1 >= len(before) && i > 0 && positions[i-1] == pos-1 && needs[pos].before {
			if n := needs[pos-1]; !n.before && !n.after {
				continue
			}
		}
		if start != pos {
			b.WriteString(escapeBackslashes(full[start:pos], `\`))
		}
		start = pos
		c := full[pos]
		if isASCIIPunct(c) && !slices.Contains(encode, string(c)) {
			b.WriteByte('\\')
		} else {
			r, size := utf8.DecodeRuneInString(full[pos:])
			b.WriteString(charRef(r))
			start += size
		}
	}
	b.WriteString(escapeBackslashes(full[start:end], after))
	return b.String()
}

func (s *State) inScope(p *Pattern) bool {
	return s.anyOpen(p.InConstruct, true) && !s.anyOpen(p.NotInConstruct, false)
}

// anyOpen reports whether any of names is on the stack,
// or empty if names is empty.
func (s *State) anyOpen(names []string, empty bool) bool {
	if len(names) == 0 {
		return empty
	}
	for _, name := range names {
		if s.InConstruct(name) {
			return true
		}
	}
	return false
}

// escapeBackslashes doubles every backslash in value that,
// together with the text after it, would escape punctuation.
func escapeBackslashes(value, after string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '\\' {
			var next byte
			if i+1 < len(value) {
				next = value[i+1]
			} else if after != "" {
				next = after[0]
			}
			if isASCIIPunct(next) {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// isASCIIPunct reports whether c is ASCII punctuation: [!-/:-@[-`{-~].
func isASCIIPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// charRef returns the hexadecimal character reference for r.
func charRef(r rune) string {
	return "&#x" + strings.ToUpper(strconv.FormatInt(int64(r), 16)) + ";"
}

// firstChar returns the first character of s, or "".
func firstChar(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// lastChar returns the last character of s, or "".
func lastChar(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[len(s)-size:]
}
