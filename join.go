// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

// A Join is a join rule's verdict on how to separate two blocks.
// A value n ≥ 0 asks for n blank lines between them.
type Join int

const (
	// JoinUndecided leaves the decision to earlier rules.
	JoinUndecided Join = -2

	// JoinApart says the blocks cannot be adjacent at all;
	// a neutral comment block is placed between them.
	JoinApart Join = -1
)

// A JoinFunc decides how to separate left and right,
// adjacent children of parent.
// Rules are consulted from the last registered to the first.
type JoinFunc func(left, right, parent Node, s *State) Join

func joinDefaults(left, right, parent Node, s *State) Join {
	// Indented code after a list or another indented code block
	// would become part of it.
	if c, ok := right.(*Code); ok && s.codeIndented(c) {
		if _, ok := left.(*List); ok {
			return JoinApart
		}
		if c, ok := left.(*Code); ok && s.codeIndented(c) {
			return JoinApart
		}
	}

	// Sibling lists with the same bullet would run together.
	if l, ok := left.(*List); ok {
		if r, ok := right.(*List); ok && l.Ordered == r.Ordered && s.bulletLastUsed == s.bulletGlyph(r) {
			return 1
		}
	}

	var spread *bool
	switch p := parent.(type) {
	case *List:
		spread = p.Spread
	case *ListItem:
		spread = p.Spread
	}
	if spread == nil {
		return JoinUndecided
	}
	if _, ok := left.(*Paragraph); ok {
		switch right.(type) {
		case *Paragraph, *Definition:
			return JoinUndecided
		}
	}
	if *spread {
		return 1
	}
	return 0
}

func joinTightDefinitions(left, right, parent Node, s *State) Join {
	_, l := left.(*Definition)
	_, r := right.(*Definition)
	if l && r {
		return 0
	}
	return JoinUndecided
}
