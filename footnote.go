// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "strings"

// A FootnoteDefinition holds the content of a footnote.
//
// Wikitext has no footnote section: the content is written
// in place of every reference, as <<fnote "content">>,
// and the definition itself produces no output.
type FootnoteDefinition struct {
	Identifier string
	Label      string
	Children   []Node
}

// A FootnoteReference marks where a footnote applies.
type FootnoteReference struct {
	Identifier string
	Label      string
}

func (*FootnoteDefinition) Type() string         { return "footnoteDefinition" }
func (x *FootnoteDefinition) ChildNodes() []Node { return x.Children }
func (*FootnoteReference) Type() string          { return "footnoteReference" }

// A footnotes memoizes rendered footnote definitions by identifier.
type footnotes struct {
	defs     map[string]*FootnoteDefinition
	text     map[string]string
	visiting map[string]bool
}

// collect records every definition in tree and renders it,
// so references can be resolved wherever they appear.
// The first definition of an identifier wins.
func (s *State) collect(tree Node) {
	fn := &s.notes
	fn.defs = make(map[string]*FootnoteDefinition)
	fn.text = make(map[string]string)
	fn.visiting = make(map[string]bool)
	s.definitions = make(map[string]*Definition)
	var order []string
	walkTree(tree, func(n Node) {
		switch n := n.(type) {
		case *FootnoteDefinition:
			key := normalizeIdentifier(association(n.Label, n.Identifier))
			if _, ok := fn.defs[key]; !ok {
				fn.defs[key] = n
				order = append(order, key)
			}
		case *Definition:
			key := normalizeIdentifier(association(n.Label, n.Identifier))
			if _, ok := s.definitions[key]; !ok {
				s.definitions[key] = n
			}
		}
	})
	for _, key := range order {
		s.footnote(key)
	}
}

// footnote returns the rendered content of the footnote key,
// or "" if there is none. A footnote that refers to itself,
// directly or not, renders the inner reference empty.
func (s *State) footnote(key string) string {
	fn := &s.notes
	if text, ok := fn.text[key]; ok {
		return text
	}
	def := fn.defs[key]
	if def == nil || fn.visiting[key] {
		return ""
	}
	fn.visiting[key] = true
	defer delete(fn.visiting, key)

	restore := s.hideStack()
	defer restore()
	defer s.Enter("footnoteDefinition")()
	text := s.ContainerFlow(def, Info{Before: "\n", After: "\n", Position: Position{Line: 1, Column: 1}})
	fn.text[key] = text
	return text
}

func handleFootnoteDefinition(_, _ Node, s *State, _ Info) string {
	defer s.Enter("footnoteDefinition")()
	return ""
}

func handleFootnoteReference(n, _ Node, s *State, _ Info) string {
	ref := n.(*FootnoteReference)
	defer s.Enter("footnoteReference")()
	exit := s.Enter("reference")
	text := s.footnote(normalizeIdentifier(association(ref.Label, ref.Identifier)))
	exit()
	return "<<fnote " + macroParam(text, s.Options.Quote) + ">>"
}

// macroParam quotes text as a macro parameter,
// preferring quote and falling back to delimiters text does not contain.
func macroParam(text, quote string) string {
	other := "'"
	if quote == "'" {
		other = `"`
	}
	for _, q := range []string{quote, other, `"""`} {
		if !strings.Contains(text, q) {
			return q + text + q
		}
	}
	return "[[" + text + "]]"
}
