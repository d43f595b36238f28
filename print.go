// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import "slices"

// Info is the context a handler renders in.
type Info struct {
	// Before and After are the output characters
	// immediately surrounding the node.
	Before string
	After  string

	// Position is where the node's output starts.
	Position

	// Bullet is the bullet path of the enclosing list, like "*#".
	Bullet string
}

// with returns a copy of info with new surroundings and position.
func (info Info) with(before, after string, pos Position) Info {
	info.Before = before
	info.After = after
	info.Position = pos
	return info
}

// A Handler renders one kind of node.
type Handler interface {
	Handle(n, parent Node, s *State, info Info) string
}

// A HandlerFunc is a [Handler] implemented by a function.
type HandlerFunc func(n, parent Node, s *State, info Info) string

func (f HandlerFunc) Handle(n, parent Node, s *State, info Info) string {
	return f(n, parent, s, info)
}

// A Peeker is a [Handler] that can cheaply report the first
// character its output would start with.
// Handlers that are not Peekers are rendered in full instead.
type Peeker interface {
	Handler
	Peek(n, parent Node, s *State, info Info) string
}

type peekHandler struct {
	HandlerFunc
	peek func(n, parent Node, s *State, info Info) string
}

func (h peekHandler) Peek(n, parent Node, s *State, info Info) string {
	return h.peek(n, parent, s, info)
}

// withPeek attaches a fixed peek result to f.
func withPeek(f HandlerFunc, first string) Handler {
	return peekHandler{f, func(Node, Node, *State, Info) string { return first }}
}

// A State is the state of one serialization.
// It is created by [Serialize] and passed to every handler.
type State struct {
	// Options are the resolved options, with defaults filled in.
	Options Options

	stack    []string
	handlers map[string]Handler
	join     []JoinFunc
	unsafe   []*compiledPattern

	// bulletLastUsed is the bullet glyph of the list just rendered
	// in the current flow, or "" after any other block.
	bulletLastUsed string

	// attention is set by an attention handler for the
	// enclosing phrasing container to consume.
	attention *attentionInfo

	notes       footnotes
	definitions map[string]*Definition
}

// A serializeError carries an error out of a deep recursion;
// Serialize recovers it.
type serializeError struct {
	err   error
	stack []string // open constructs at the failure
}

func (s *State) fail(err error) {
	panic(serializeError{err, s.Stack()})
}

// Enter pushes the named construct and returns the function that pops it.
// Constructs must be exited in reverse order; the usual form is
//
//	defer s.Enter("phrasing")()
func (s *State) Enter(name string) (exit func()) {
	n := len(s.stack)
	s.stack = append(s.stack, name)
	return func() {
		if len(s.stack) <= n || s.stack[n] != name {
			panic("wikitext: construct " + name + " exited out of order")
		}
		s.stack = s.stack[:n]
	}
}

// Stack returns a copy of the open constructs, innermost last.
func (s *State) Stack() []string {
	return slices.Clone(s.stack)
}

// InConstruct reports whether the named construct is open.
func (s *State) InConstruct(name string) bool {
	return slices.Contains(s.stack, name)
}

// hideStack replaces the stack with an empty one
// and returns the function that restores it.
func (s *State) hideStack() (restore func()) {
	saved := s.stack
	s.stack = nil
	return func() { s.stack = saved }
}

// Handle renders n, a child of parent, with the registered handler.
func (s *State) Handle(n, parent Node, info Info) string {
	return s.handler(n).Handle(n, parent, s, info)
}

func (s *State) handler(n Node) Handler {
	if isNil(n) {
		s.fail(&StructuralError{Value: n})
	}
	h, ok := s.handlers[n.Type()]
	if !ok {
		s.fail(&StructuralError{Type: n.Type()})
	}
	return h
}

// peek returns the first character n would render to.
func (s *State) peek(n, parent Node, info Info) string {
	var out string
	if p, ok := s.handler(n).(Peeker); ok {
		out = p.Peek(n, parent, s, info)
	} else {
		saved := s.attention
		out = s.Handle(n, parent, info)
		s.attention = saved
	}
	return firstChar(out)
}
