// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// A Parser reads Markdown into a syntax tree.
// The zero Parser reads CommonMark with the GitHub extensions
// (tables, strikethrough, task lists, autolinks) and footnotes.
type Parser struct {
	// Logger receives a debug record for every Markdown node
	// that has no counterpart in the tree and is dropped.
	// Nil discards them.
	Logger *slog.Logger
}

// Parse parses src with the zero [Parser].
func Parse(src []byte) *Root {
	var p Parser
	return p.Parse(src)
}

// Parse parses src, including any leading front matter.
// Parsing never fails: any input is some Markdown document.
func (p *Parser) Parse(src []byte) *Root {
	fm, body := splitFrontMatter(src)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote))
	doc := md.Parser().Parse(gmtext.NewReader(body))

	c := &converter{
		src:   body,
		log:   p.Logger,
		notes: make(map[int]string),
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	// Footnote links refer to their definition by index.
	gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if f, ok := n.(*extast.Footnote); ok && entering {
			c.notes[f.Index] = string(f.Ref)
		}
		return gmast.WalkContinue, nil
	})

	root := &Root{}
	if fm != nil {
		root.Children = append(root.Children, fm)
	}
	root.Children = append(root.Children, c.children(doc)...)
	return root
}

// ToTid converts the Markdown in src to wikitext.
// With opts.FrontMatterFields set, YAML front matter becomes
// the .tid header fields, separated from the body by a blank line.
func ToTid(src []byte, opts *Options) ([]byte, error) {
	p := Parser{}
	if opts != nil {
		p.Logger = opts.Logger
	}
	out, err := Serialize(p.Parse(src), opts)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

type converter struct {
	src   []byte
	log   *slog.Logger
	notes map[int]string // footnote index to label
}

// children converts the children of n, merging adjacent text.
func (c *converter) children(n gmast.Node) []Node {
	var out []Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		for _, x := range c.convert(child) {
			out = appendNode(out, x)
		}
	}
	return out
}

// appendNode appends x to list, merging it into a preceding Text.
func appendNode(list []Node, x Node) []Node {
	if t, ok := x.(*Text); ok && len(list) > 0 {
		if prev, ok := list[len(list)-1].(*Text); ok {
			list[len(list)-1] = &Text{Value: prev.Value + t.Value}
			return list
		}
	}
	return append(list, x)
}

// convert returns the nodes that stand for n: usually one,
// none for nodes that have no counterpart, several for
// text followed by a hard line break or for a footnote list.
func (c *converter) convert(n gmast.Node) []Node {
	switch n := n.(type) {
	case *gmast.Paragraph:
		return []Node{&Paragraph{Children: c.children(n)}}
	case *gmast.TextBlock:
		return []Node{&Paragraph{Children: c.children(n)}}
	case *gmast.Heading:
		return []Node{&Heading{Depth: n.Level, Children: c.children(n)}}
	case *gmast.ThematicBreak:
		return []Node{&ThematicBreak{}}
	case *gmast.Blockquote:
		return []Node{&Blockquote{Children: c.children(n)}}
	case *gmast.List:
		spread := !n.IsTight
		return []Node{&List{Ordered: n.IsOrdered(), Start: n.Start, Spread: &spread, Children: c.children(n)}}
	case *gmast.ListItem:
		return []Node{c.listItem(n)}
	case *gmast.CodeBlock:
		return []Node{&Code{Value: c.lines(n)}}
	case *gmast.FencedCodeBlock:
		code := &Code{Value: c.lines(n)}
		if n.Info != nil {
			info := strings.TrimSpace(decodeString(string(n.Info.Segment.Value(c.src))))
			code.Lang, code.Meta, _ = strings.Cut(info, " ")
			code.Meta = strings.TrimSpace(code.Meta)
		}
		return []Node{code}
	case *gmast.HTMLBlock:
		var b bytes.Buffer
		b.WriteString(c.lines(n))
		if n.HasClosure() {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.Write(bytes.TrimRight(n.ClosureLine.Value(c.src), "\r\n"))
		}
		return []Node{&HTML{Value: b.String()}}

	case *gmast.Text:
		value := string(n.Segment.Value(c.src))
		if !n.IsRaw() {
			value = decodeString(value)
		}
		if n.HardLineBreak() {
			return []Node{&Text{Value: strings.TrimRight(value, " \t")}, &Break{}}
		}
		if n.SoftLineBreak() {
			value += "\n"
		}
		return []Node{&Text{Value: value}}
	case *gmast.String:
		value := string(n.Value)
		if !n.IsRaw() && !n.IsCode() {
			value = decodeString(value)
		}
		return []Node{&Text{Value: value}}
	case *gmast.CodeSpan:
		var b strings.Builder
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch t := child.(type) {
			case *gmast.Text:
				b.Write(t.Segment.Value(c.src))
			case *gmast.String:
				b.Write(t.Value)
			}
		}
		return []Node{&InlineCode{Value: strings.ReplaceAll(b.String(), "\n", " ")}}
	case *gmast.Emphasis:
		if n.Level >= 2 {
			return []Node{&Strong{Children: c.children(n)}}
		}
		return []Node{&Emphasis{Children: c.children(n)}}
	case *gmast.Link:
		return []Node{&Link{
			URL:      decodeString(string(n.Destination)),
			Title:    decodeString(string(n.Title)),
			Children: c.children(n),
		}}
	case *gmast.Image:
		return []Node{&Image{
			URL:   decodeString(string(n.Destination)),
			Title: decodeString(string(n.Title)),
			Alt:   plainText(&Paragraph{Children: c.children(n)}),
		}}
	case *gmast.AutoLink:
		url := string(n.URL(c.src))
		if n.AutoLinkType == gmast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
			url = "mailto:" + url
		}
		return []Node{&Link{URL: url, Children: []Node{&Text{Value: string(n.Label(c.src))}}}}
	case *gmast.RawHTML:
		var b bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.src))
		}
		return []Node{&HTML{Value: b.String()}}

	case *extast.Strikethrough:
		return []Node{&Delete{Children: c.children(n)}}
	case *extast.Table:
		t := &Table{}
		for _, a := range n.Alignments {
			t.Align = append(t.Align, alignment(a))
		}
		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			switch row.(type) {
			case *extast.TableHeader, *extast.TableRow:
				r := &TableRow{}
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					r.Children = append(r.Children, &TableCell{Children: c.children(cell)})
				}
				t.Children = append(t.Children, r)
			default:
				c.drop(row)
			}
		}
		return []Node{t}
	case *extast.FootnoteList:
		var defs []Node
		for f := n.FirstChild(); f != nil; f = f.NextSibling() {
			defs = append(defs, c.convert(f)...)
		}
		return defs
	case *extast.Footnote:
		label := string(n.Ref)
		return []Node{&FootnoteDefinition{
			Identifier: normalizeIdentifier(label),
			Label:      label,
			Children:   c.children(n),
		}}
	case *extast.FootnoteLink:
		label, ok := c.notes[n.Index]
		if !ok {
			c.drop(n)
			return nil
		}
		return []Node{&FootnoteReference{Identifier: normalizeIdentifier(label), Label: label}}
	case *extast.FootnoteBacklink:
		// Wikitext footnotes have no backlinks.
		return nil
	case *extast.TaskCheckBox:
		// Consumed by listItem.
		return nil
	}
	c.drop(n)
	return nil
}

func (c *converter) drop(n gmast.Node) {
	c.log.Debug("dropping markdown node", "kind", n.Kind().String())
}

// listItem converts an item, moving a leading task check box
// into the item's Checked state.
func (c *converter) listItem(n *gmast.ListItem) *ListItem {
	item := &ListItem{Children: c.children(n)}
	if l, ok := n.Parent().(*gmast.List); ok {
		spread := !l.IsTight
		item.Spread = &spread
	}
	first := n.FirstChild()
	if first == nil || first.FirstChild() == nil {
		return item
	}
	box, ok := first.FirstChild().(*extast.TaskCheckBox)
	if !ok {
		return item
	}
	checked := box.IsChecked
	item.Checked = &checked
	if p, ok := item.Children[0].(*Paragraph); ok && len(p.Children) > 0 {
		if t, ok := p.Children[0].(*Text); ok {
			t.Value = strings.TrimLeft(t.Value, " \t")
			if t.Value == "" {
				p.Children = p.Children[1:]
			}
		}
	}
	return item
}

// lines returns the content lines of a block, without the final line ending.
func (c *converter) lines(n gmast.Node) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	return strings.TrimRight(b.String(), "\n")
}

func alignment(a extast.Alignment) Align {
	switch a {
	case extast.AlignLeft:
		return AlignLeft
	case extast.AlignRight:
		return AlignRight
	case extast.AlignCenter:
		return AlignCenter
	}
	return AlignNone
}
