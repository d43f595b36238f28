// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Text is a literal run of text.
type Text struct {
	Value string
}

// An Emphasis is emphasized (italic) text, //like this//.
type Emphasis struct {
	Children []Node
}

// A Strong is strongly emphasized (bold) text, written between doubled apostrophes.
type Strong struct {
	Children []Node
}

// A Delete is struck-through text, ~~like this~~.
type Delete struct {
	Children []Node
}

func (*Text) Type() string     { return "text" }
func (*Emphasis) Type() string { return "emphasis" }
func (*Strong) Type() string   { return "strong" }
func (*Delete) Type() string   { return "delete" }

func (x *Emphasis) ChildNodes() []Node { return x.Children }
func (x *Strong) ChildNodes() []Node   { return x.Children }
func (x *Delete) ChildNodes() []Node   { return x.Children }

// ContainerPhrasing renders the inline children of parent.
func (s *State) ContainerPhrasing(parent Parent, info Info) string {
	children := parent.ChildNodes()
	results := make([]string, 0, len(children))
	before := info.Before
	var encodeAfter string
	tracker := NewTracker(info)

	for i, child := range children {
		after := info.After
		if i+1 < len(children) {
			after = s.peek(children[i+1], parent, info.with("", "", tracker.Current()))
		}

		// Raw HTML right after a line ending would start an HTML block.
		if _, ok := child.(*HTML); ok && len(results) > 0 && (before == "\r" || before == "\n") {
			last := len(results) - 1
			results[last] = trimLineEnding(results[last]) + " "
			before = " "
			tracker = NewTracker(info)
			tracker.Move(strings.Join(results, ""))
		}

		value := s.Handle(child, parent, info.with(before, after, tracker.Current()))

		// The previous attention span asked for the character after it
		// to be encoded; it still starts this value.
		if encodeAfter != "" && strings.HasPrefix(value, encodeAfter) {
			r, _ := utf8.DecodeRuneInString(encodeAfter)
			value = charRef(r) + value[len(encodeAfter):]
		}
		encodeAfter = ""
		if a := s.attention; a != nil {
			s.attention = nil
			if a.before && len(results) > 0 {
				last := len(results) - 1
				if lastChar(results[last]) == before && before != "" {
					r, _ := utf8.DecodeRuneInString(before)
					results[last] = results[last][:len(results[last])-len(before)] + charRef(r)
				}
			}
			if a.after {
				encodeAfter = after
			}
		}

		tracker.Move(value)
		results = append(results, value)
		before = lastChar(value)
	}
	return strings.Join(results, "")
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// attentionInfo records which characters around an attention span
// must be encoded for its markers to keep working.
type attentionInfo struct {
	before, after bool
}

type charKind int

const (
	kindOther charKind = iota
	kindSpace
	kindPunct
)

func classify(c string) charKind {
	if c == "" {
		return kindOther
	}
	r, _ := utf8.DecodeRuneInString(c)
	switch {
	case unicode.IsSpace(r):
		return kindSpace
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return kindPunct
	}
	return kindOther
}

// encodeInfo reports whether the character just outside and
// the character just inside an attention marker need encoding.
func encodeInfo(outside, inside, marker string) (encInside, encOutside bool) {
	in := classify(inside)
	switch classify(outside) {
	case kindOther:
		switch in {
		case kindOther:
			return marker == "_", marker == "_"
		case kindSpace:
			return true, true
		}
		return false, true
	case kindSpace:
		return in == kindSpace, in == kindSpace
	}
	return in == kindSpace, false
}

// renderAttention renders an attention span with the given marker.
func (s *State) renderAttention(n Parent, construct, marker string, info Info) string {
	defer s.Enter(construct)()
	tracker := NewTracker(info)
	open := tracker.Move(marker)
	between := tracker.Move(s.ContainerPhrasing(n, info.with(open, marker, tracker.Current())))

	head := firstChar(between)
	inOpen, outOpen := encodeInfo(lastChar(info.Before), head, marker)
	if inOpen && head != "" {
		r, _ := utf8.DecodeRuneInString(head)
		between = charRef(r) + between[len(head):]
	}
	tail := lastChar(between)
	inClose, outClose := encodeInfo(firstChar(info.After), tail, marker)
	if inClose && tail != "" {
		r, _ := utf8.DecodeRuneInString(tail)
		between = between[:len(between)-len(tail)] + charRef(r)
	}
	end := tracker.Move(marker)
	s.attention = &attentionInfo{before: outOpen, after: outClose}
	return open + between + end
}

func handleEmphasis(n, _ Node, s *State, info Info) string {
	return s.renderAttention(n.(*Emphasis), "emphasis", s.Options.Emphasis, info)
}

func handleStrong(n, _ Node, s *State, info Info) string {
	return s.renderAttention(n.(*Strong), "strong", s.Options.Strong, info)
}

func handleDelete(n, _ Node, s *State, info Info) string {
	return s.renderAttention(n.(*Delete), "strikethrough", "~~", info)
}

func handleText(n, _ Node, s *State, info Info) string {
	x := n.(*Text)
	if s.Options.WikiLinks {
		return s.wikiLinks(x.Value, info)
	}
	return s.Safe(x.Value, info.Before, info.After)
}

var wikiLinkRE = regexp.MustCompile(`(!?)\[\[(.*?)\]\]`)

// wikiLinks renders text containing Obsidian-style links.
// [[Target|Alias]] becomes [[Alias|Target]] and ![[Embed|x]]
// becomes the transclusion {{Embed}}; the text between is escaped.
func (s *State) wikiLinks(value string, info Info) string {
	matches := wikiLinkRE.FindAllStringSubmatchIndex(value, -1)
	if matches == nil {
		return s.Safe(value, info.Before, info.After)
	}
	links := make([]string, len(matches))
	for i, m := range matches {
		target := value[m[4]:m[5]]
		if m[3] > m[2] {
			target, _, _ = strings.Cut(target, "|")
			links[i] = "{{" + target + "}}"
			continue
		}
		if text, alias, ok := strings.Cut(target, "|"); ok {
			links[i] = "[[" + strings.ReplaceAll(alias, "|", "_") + "|" + text + "]]"
		} else {
			links[i] = value[m[0]:m[1]]
		}
	}

	var b strings.Builder
	before := info.Before
	start := 0
	for i, m := range matches {
		if m[0] > start {
			b.WriteString(s.Safe(value[start:m[0]], before, links[i][:1]))
		}
		b.WriteString(links[i])
		before = links[i][len(links[i])-1:]
		start = m[1]
	}
	if start < len(value) {
		b.WriteString(s.Safe(value[start:], before, info.After))
	}
	return b.String()
}
