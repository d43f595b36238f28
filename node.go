// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"reflect"
	"strings"
)

// A Node is an element of a Markdown syntax tree.
//
// Type reports the node's type tag, such as "paragraph" or "tableCell".
// The serializer dispatches on that tag, so code outside this package
// can introduce new node kinds by implementing Node and registering a
// [Handler] for the tag in [Options.Handlers].
type Node interface {
	Type() string
}

// A Parent is a [Node] that has children.
type Parent interface {
	Node
	ChildNodes() []Node
}

// An Align is the alignment of a table column.
type Align int

const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return ""
}

// A ReferenceType says how explicit a reference is:
// [text] (shortcut), [text][] (collapsed) or [text][label] (full).
type ReferenceType string

const (
	Shortcut  ReferenceType = "shortcut"
	Collapsed ReferenceType = "collapsed"
	Full      ReferenceType = "full"
)

// plainText returns the concatenated literal text inside n,
// ignoring all markup.
func plainText(n Node) string {
	var b strings.Builder
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Text:
			b.WriteString(n.Value)
		case *InlineCode:
			b.WriteString(n.Value)
		case *Image:
			b.WriteString(n.Alt)
		case *ImageReference:
			b.WriteString(n.Alt)
		case Parent:
			for _, c := range n.ChildNodes() {
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// walkTree calls f for n and every node below it, in document order.
func walkTree(n Node, f func(Node)) {
	if isNil(n) {
		return
	}
	f(n)
	if p, ok := n.(Parent); ok {
		for _, c := range p.ChildNodes() {
			walkTree(c, f)
		}
	}
}

// isNil reports whether n is nil or a nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
