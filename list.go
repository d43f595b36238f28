// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "strings"

// A List is a list of [ListItem]s.
//
// Wikitext has no indentation for nested lists: an item's marker is
// the bullet path of every enclosing list, so an ordered list inside an
// unordered one has items starting with "*#".
type List struct {
	Ordered bool
	Start   int // number of the first item; wikitext numbers lists itself

	// Spread reports whether items are separated by blank lines.
	// Nil leaves the decision to the join rules.
	Spread *bool

	Children []Node
}

// A ListItem is an item in a [List].
type ListItem struct {
	Spread  *bool
	Checked *bool // task list state; nil for a plain item

	Children []Node
}

func (*List) Type() string             { return "list" }
func (x *List) ChildNodes() []Node     { return x.Children }
func (*ListItem) Type() string         { return "listItem" }
func (x *ListItem) ChildNodes() []Node { return x.Children }

// bulletGlyph returns the marker l adds to the bullet path.
func (s *State) bulletGlyph(l *List) string {
	if l.Ordered {
		return s.Options.BulletOrdered
	}
	return s.Options.Bullet
}

func handleList(n, _ Node, s *State, info Info) string {
	l := n.(*List)
	defer s.Enter("list")()
	glyph := s.bulletGlyph(l)
	info.Bullet += glyph
	value := s.ContainerFlow(l, info)
	s.bulletLastUsed = glyph
	return value
}

// itemPrefixes returns the prefix for the first line of an item
// and for its continuation lines.
func (s *State) itemPrefixes(item *ListItem, parent Node, path string) (first, rest string) {
	mode := s.Options.ListItemIndent
	if mode == "mixed" {
		mode = "one"
		if l, ok := parent.(*List); ok && l.Spread != nil && *l.Spread || item.Spread != nil && *item.Spread {
			mode = "tab"
		}
	}
	if mode == "tab" {
		width := (len(path)/4 + 1) * 4
		return path + strings.Repeat(" ", width-len(path)), strings.Repeat(" ", width)
	}
	return path + " ", path + " "
}

func handleListItem(n, parent Node, s *State, info Info) string {
	item := n.(*ListItem)
	defer s.Enter("listItem")()

	path := info.Bullet
	if path == "" {
		path = s.Options.Bullet
	}
	first, rest := s.itemPrefixes(item, parent, path)
	box := ""
	if item.Checked != nil {
		box = "[ ] "
		if *item.Checked {
			box = "[x] "
		}
	}

	tracker := NewTracker(info)
	tracker.Move(first)
	tracker.Shift(len(first))
	parts := s.flowParts(item, info.with(info.Before, info.After, tracker.Current()))

	started := false
	line := func(text string, blank bool) string {
		if !started {
			started = true
			if blank {
				return strings.TrimSuffix(first+box, " ")
			}
			return first + box + text
		}
		if blank {
			return path
		}
		return rest + text
	}

	var b strings.Builder
	for _, p := range parts {
		switch p.node.(type) {
		case nil:
			// Separator: only the lines strictly inside it are lines of the item.
			segs := strings.Split(p.value, "\n")
			for i, seg := range segs {
				if i > 0 {
					b.WriteString("\n")
				}
				if i == 0 || i == len(segs)-1 {
					b.WriteString(seg)
					continue
				}
				b.WriteString(line(seg, seg == ""))
			}
		case *List:
			// Nested items carry their full bullet path.
			started = true
			b.WriteString(p.value)
		default:
			b.WriteString(indentLines(p.value, func(text string, _ int, blank bool) string {
				return line(text, blank)
			}))
		}
	}
	if !started {
		return line("", true)
	}
	return b.String()
}
