// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"fmt"
	"strings"
)

// A StructuralError reports a tree the serializer cannot walk:
// a value that is not a node, or a node with no handler for its type.
type StructuralError struct {
	Value any    // the offending value, when it is not a node
	Type  string // the unknown type tag
}

func (e *StructuralError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("cannot handle unknown node `%s`", e.Type)
	}
	return fmt.Sprintf("cannot handle value `%v`, expected node", e.Value)
}

// defaultHandlers returns the handler table every serialization starts from.
func defaultHandlers() map[string]Handler {
	return map[string]Handler{
		"root":               HandlerFunc(handleRoot),
		"paragraph":          HandlerFunc(handleParagraph),
		"heading":            HandlerFunc(handleHeading),
		"thematicBreak":      HandlerFunc(handleThematicBreak),
		"blockquote":         HandlerFunc(handleBlockquote),
		"list":               HandlerFunc(handleList),
		"listItem":           HandlerFunc(handleListItem),
		"code":               HandlerFunc(handleCode),
		"html":               withPeek(handleHTML, "<"),
		"text":               HandlerFunc(handleText),
		"emphasis":           HandlerFunc(handleEmphasis),
		"strong":             HandlerFunc(handleStrong),
		"delete":             withPeek(handleDelete, "~"),
		"inlineCode":         withPeek(handleInlineCode, "`"),
		"break":              HandlerFunc(handleBreak),
		"link":               withPeek(handleLink, "["),
		"image":              withPeek(handleImage, "["),
		"linkReference":      HandlerFunc(handleLinkReference),
		"imageReference":     HandlerFunc(handleImageReference),
		"definition":         HandlerFunc(handleDefinition),
		"table":              HandlerFunc(handleTable),
		"tableRow":           HandlerFunc(handleTableRow),
		"tableCell":          HandlerFunc(handleTableCell),
		"footnoteDefinition": HandlerFunc(handleFootnoteDefinition),
		"footnoteReference":  withPeek(handleFootnoteReference, "<"),
		"yaml":               HandlerFunc(handleFrontMatter),
		"toml":               HandlerFunc(handleFrontMatter),
	}
}

// newState resolves opts and builds the state for one serialization.
func newState(opts *Options) (*State, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	unsafe, err := compilePatterns(o.Unsafe)
	if err != nil {
		return nil, err
	}
	s := &State{
		Options:  o,
		handlers: defaultHandlers(),
		unsafe:   unsafe,
	}
	for tag, h := range o.Handlers {
		s.handlers[tag] = h
	}
	// Emphasis and strong peek at their marker, which depends on the options.
	s.handlers["emphasis"] = peekDefault(s.handlers["emphasis"], o.Emphasis[:1])
	s.handlers["strong"] = peekDefault(s.handlers["strong"], o.Strong[:1])

	s.join = []JoinFunc{joinDefaults}
	if o.TightDefinitions {
		s.join = append(s.join, joinTightDefinitions)
	}
	s.join = append(s.join, o.Join...)
	return s, nil
}

// peekDefault gives h a fixed peek unless it already has one.
func peekDefault(h Handler, first string) Handler {
	if _, ok := h.(Peeker); ok {
		return h
	}
	if f, ok := h.(HandlerFunc); ok {
		return withPeek(f, first)
	}
	return h
}

// Serialize renders tree as wikitext.
// A nil opts selects the defaults.
//
// The result ends in a line ending unless it is empty.
// Nesting depth is limited only by the Go stack.
func Serialize(tree Node, opts *Options) (out string, err error) {
	s, err := newState(opts)
	if err != nil {
		return "", err
	}
	if isNil(tree) {
		return "", &StructuralError{Value: tree}
	}

	defer func() {
		if e := recover(); e != nil {
			se, ok := e.(serializeError)
			if !ok {
				panic(e)
			}
			s.Options.Logger.Debug("serialization failed", "stack", se.stack, "error", se.err)
			out, err = "", se.err
		}
	}()

	s.collect(tree)
	info := Info{Before: "\n", After: "\n", Position: Position{Line: 1, Column: 1}}
	out = s.Handle(tree, nil, info)
	if out != "" && !strings.HasSuffix(out, "\n") && !strings.HasSuffix(out, "\r") {
		out += "\n"
	}
	return out, nil
}

// Stringify renders value, which is a [Node] or a string, as wikitext.
// A string becomes a paragraph of text, and any node other than
// a [Root] is placed in one.
func Stringify(value any, opts *Options) (string, error) {
	var root *Root
	switch v := value.(type) {
	case string:
		root = &Root{Children: []Node{&Paragraph{Children: []Node{&Text{Value: v}}}}}
	case *Root:
		if v == nil {
			return "", &StructuralError{Value: value}
		}
		root = v
	case Node:
		root = &Root{Children: []Node{v}}
	default:
		return "", &StructuralError{Value: value}
	}
	return Serialize(root, opts)
}
