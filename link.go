// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// A Link is a hyperlink, written [[text|url]] or, for a bare URL, [ext[url]].
type Link struct {
	URL      string
	Title    string // not representable in wikitext; disables the [ext[url]] form
	Children []Node
}

// An Image is an embedded image, written [img[alt|url]].
type Image struct {
	URL   string
	Title string // used as the tooltip when Alt is empty
	Alt   string
}

// A LinkReference is a link whose destination is given by a [Definition].
type LinkReference struct {
	Identifier    string // normalized label
	Label         string // label as written
	ReferenceType ReferenceType
	Children      []Node
}

// An ImageReference is an image whose source is given by a [Definition].
type ImageReference struct {
	Identifier    string
	Label         string
	ReferenceType ReferenceType
	Alt           string
}

// A Definition defines the destination of references with the same label.
type Definition struct {
	Identifier string
	Label      string
	URL        string
	Title      string
}

func (*Link) Type() string           { return "link" }
func (x *Link) ChildNodes() []Node   { return x.Children }
func (*Image) Type() string          { return "image" }
func (*LinkReference) Type() string  { return "linkReference" }
func (*ImageReference) Type() string { return "imageReference" }
func (*Definition) Type() string     { return "definition" }

func (x *LinkReference) ChildNodes() []Node { return x.Children }

var (
	hasProtocol = regexp.MustCompile(`(?i)^[a-z][a-z+.-]+:`)
	badAutolink = regexp.MustCompile(`[\x00- <>\x7F]`)
	needsAngle  = regexp.MustCompile(`[\x00- \x7F]`)
)

// linkAsExt reports whether l can be written as [ext[...]],
// which is the case for a bare URL or email address.
func (s *State) linkAsExt(l *Link) bool {
	if s.Options.ResourceLink || l.URL == "" || l.Title != "" || len(l.Children) != 1 {
		return false
	}
	t, ok := l.Children[0].(*Text)
	if !ok || (t.Value != l.URL && "mailto:"+t.Value != l.URL) {
		return false
	}
	return hasProtocol.MatchString(l.URL) && !badAutolink.MatchString(l.URL)
}

func handleLink(n, _ Node, s *State, info Info) string {
	l := n.(*Link)
	if s.linkAsExt(l) {
		restore := s.hideStack()
		defer restore()
		defer s.Enter("autolink")()
		text := s.ContainerPhrasing(l, info.with("[ext[", "]]", info.Position))
		if text != l.URL {
			return "[ext[" + text + "|" + l.URL + "]]"
		}
		return "[ext[" + text + "]]"
	}

	defer s.Enter("link")()
	exit := s.Enter("label")
	text := s.ContainerPhrasing(l, info.with("[[", "]]", info.Position))
	exit()
	if needsAngle.MatchString(l.URL) {
		defer s.Enter("destinationLiteral")()
	} else {
		defer s.Enter("destinationRaw")()
	}
	if text == "" {
		return "[[" + l.URL + "]]"
	}
	return "[[" + text + "|" + l.URL + "]]"
}

func handleImage(n, _ Node, s *State, _ Info) string {
	img := n.(*Image)
	defer s.Enter("image")()
	tip := img.Alt
	if tip == "" {
		tip = img.Title
	}
	if tip != "" {
		tip += "|"
	}
	return "[img[" + tip + img.URL + "]]"
}

func handleLinkReference(n, parent Node, s *State, info Info) string {
	ref := n.(*LinkReference)
	if def := s.definitions[normalizeIdentifier(association(ref.Label, ref.Identifier))]; def != nil {
		return s.Handle(&Link{URL: def.URL, Title: def.Title, Children: ref.Children}, parent, info)
	}

	defer s.Enter("linkReference")()
	exit := s.Enter("label")
	text := s.ContainerPhrasing(ref, info.with("[", "]", info.Position))
	exit()
	return "[" + text + "]" + s.referenceSuffix(ref.ReferenceType, ref.Label, ref.Identifier, text)
}

func handleImageReference(n, _ Node, s *State, _ Info) string {
	ref := n.(*ImageReference)
	if def := s.definitions[normalizeIdentifier(association(ref.Label, ref.Identifier))]; def != nil {
		return handleImage(&Image{URL: def.URL, Title: def.Title, Alt: ref.Alt}, nil, s, Info{})
	}
	defer s.Enter("imageReference")()
	return "![" + ref.Alt + "]" + s.referenceSuffix(ref.ReferenceType, ref.Label, ref.Identifier, ref.Alt)
}

// referenceSuffix returns what follows the text of an unresolved
// reference: "[label]", "[]" or nothing.
func (s *State) referenceSuffix(typ ReferenceType, label, id, text string) string {
	restore := s.hideStack()
	exit := s.Enter("reference")
	ref := association(label, id)
	exit()
	restore()
	switch {
	case typ == Full || text == "" || text != ref:
		return "[" + ref + "]"
	case typ != Shortcut:
		return "[]"
	}
	return ""
}

func handleDefinition(n, _ Node, s *State, _ Info) string {
	def := n.(*Definition)
	defer s.Enter("definition")()

	var b strings.Builder
	exit := s.Enter("label")
	b.WriteString("[" + association(def.Label, def.Identifier) + "]: ")
	exit()

	if def.URL == "" || needsAngle.MatchString(def.URL) {
		exit = s.Enter("destinationLiteral")
		b.WriteString("<" + s.Safe(def.URL, "<", ">") + ">")
	} else {
		exit = s.Enter("destinationRaw")
		b.WriteString(s.Safe(def.URL, " ", "\n"))
	}
	exit()

	if def.Title != "" {
		q := s.Options.Quote
		construct := "titleQuote"
		if q == "'" {
			construct = "titleApostrophe"
		}
		exit = s.Enter(construct)
		b.WriteString(" " + q + s.Safe(def.Title, q, q, q) + q)
		exit()
	}
	return b.String()
}

// association returns the text that names a reference or definition:
// its label, or else its identifier with escapes decoded.
func association(label, id string) string {
	if label != "" || id == "" {
		return label
	}
	return decodeString(id)
}

// decodeString decodes backslash escapes and character references in s.
func decodeString(s string) string {
	if !strings.ContainsAny(s, `\&`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '&' {
			// The longest entity name is 31 characters.
			if j := strings.IndexByte(s[i:], ';'); j > 1 && j <= 33 {
				ref := s[i : i+j+1]
				if dec := html.UnescapeString(ref); dec != ref {
					b.WriteString(dec)
					i += j
					continue
				}
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// normalizeIdentifier returns the key used to match references
// with definitions: case folded, with runs of white space
// collapsed to one space and leading and trailing space removed.
func normalizeIdentifier(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	hi := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			hi = true
			break
		}
	}
	if hi {
		return cases.Fold().String(s)
	}
	return strings.ToLower(s)
}
