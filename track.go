// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "unicode/utf8"

// A Position is a place in the generated output.
// Line and Column are 1-based; LineShift is the width of the
// indentation that containers add to every line after the first.
type Position struct {
	Line      int
	Column    int
	LineShift int
}

// A Tracker follows the output position as text is produced.
type Tracker struct {
	pos Position
}

// NewTracker returns a tracker starting at the position in info.
func NewTracker(info Info) *Tracker {
	pos := info.Position
	if pos.Line == 0 {
		pos.Line = 1
	}
	if pos.Column == 0 {
		pos.Column = 1
	}
	return &Tracker{pos: pos}
}

// Move advances past text and returns it unchanged.
func (t *Tracker) Move(text string) string {
	breaks, tail := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			fallthrough
		case '\n':
			breaks++
			tail = i + 1
		}
	}
	n := utf8.RuneCountInString(text[tail:])
	if breaks == 0 {
		t.pos.Column += n
	} else {
		t.pos.Line += breaks
		t.pos.Column = 1 + n + t.pos.LineShift
	}
	return text
}

// Shift widens the indentation of the lines that follow by n.
func (t *Tracker) Shift(n int) {
	t.pos.LineShift += n
}

// Current returns the current position.
func (t *Tracker) Current() Position {
	return t.pos
}
