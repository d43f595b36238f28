// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"fmt"
	"regexp"
)

// A Pattern describes where a character is unsafe:
// left raw at that spot in the output, it would be read as wikitext syntax.
type Pattern struct {
	// Character is the unsafe character, or a two-character
	// marker such as "//" or "''".
	Character string

	// Before and After are regular expression fragments
	// that must match right before and right after Character.
	Before string
	After  string

	// AtBreak restricts the pattern to the start of a line,
	// after optional spaces and tabs.
	AtBreak bool

	// InConstruct lists constructs the pattern applies in.
	// Empty means everywhere.
	InConstruct []string

	// NotInConstruct lists constructs the pattern never applies in.
	NotInConstruct []string
}

// A compiledPattern is a [Pattern] with its regular expression.
// If the pattern has Before or AtBreak, submatch 1 is the context
// before the unsafe character.
type compiledPattern struct {
	Pattern
	re *regexp.Regexp
}

func compilePattern(p Pattern) (*compiledPattern, error) {
	before := ""
	if p.AtBreak {
		before = `[\r\n][\t ]*`
	}
	if p.Before != "" {
		before += "(?:" + p.Before + ")"
	}
	expr := ""
	if before != "" {
		expr = "(" + before + ")"
	}
	expr += regexp.QuoteMeta(p.Character)
	if p.After != "" {
		expr += "(?:" + p.After + ")"
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("unsafe pattern for %q: %w", p.Character, err)
	}
	return &compiledPattern{Pattern: p, re: re}, nil
}

func mustCompilePatterns(list []Pattern) []*compiledPattern {
	out := make([]*compiledPattern, len(list))
	for i, p := range list {
		c, err := compilePattern(p)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// Phrasing constructs that cannot contain attention, links or images.
var fullPhrasingSpans = []string{"autolink", "destinationLiteral", "destinationRaw", "reference"}

var (
	codeFencedLang = []string{"codeFencedLangGraveAccent", "codeFencedLangTilde"}
	codeFencedInfo = []string{
		"codeFencedLangGraveAccent", "codeFencedLangTilde",
		"codeFencedMetaGraveAccent", "codeFencedMetaTilde",
		"destinationLiteral", "headingAtx",
	}
)

// defaultUnsafe is the base table of unsafe patterns.
var defaultUnsafe = []Pattern{
	{Character: "\t", After: `[\r\n]`, InConstruct: []string{"phrasing"}},
	{Character: "\t", Before: `[\r\n]`, InConstruct: []string{"phrasing"}},
	{Character: "\t", InConstruct: codeFencedLang},
	{Character: "\r", InConstruct: codeFencedInfo},
	{Character: "\n", InConstruct: codeFencedInfo},
	{Character: " ", After: `[\r\n]`, InConstruct: []string{"phrasing"}},
	{Character: " ", Before: `[\r\n]`, InConstruct: []string{"phrasing"}},
	{Character: " ", InConstruct: codeFencedLang},

	// ! before [ starts an image; at a line start, a heading.
	{Character: "!", After: `\[`, InConstruct: []string{"phrasing"}, NotInConstruct: fullPhrasingSpans},
	{Character: "!", AtBreak: true},
	{Character: "!", After: `(?:[\r\n]|$)`, InConstruct: []string{"headingAtx"}},

	{Character: `"`, InConstruct: []string{"titleQuote"}},
	{Character: "&", After: `[#A-Za-z]`, InConstruct: []string{"phrasing"}},
	{Character: "(", InConstruct: []string{"destinationRaw"}},
	{Character: "[", Before: `\]`, InConstruct: []string{"phrasing"}, NotInConstruct: fullPhrasingSpans},
	{Character: ")", AtBreak: true, Before: `\d+`},
	{Character: ")", InConstruct: []string{"destinationRaw"}},

	// Line-start list, attention and block markers.
	{Character: "#", AtBreak: true},
	{Character: "//", AtBreak: true},
	{Character: "''", AtBreak: true},
	{Character: "*", InConstruct: []string{"phrasing"}, NotInConstruct: fullPhrasingSpans},
	{Character: "+", AtBreak: true},
	{Character: "-", AtBreak: true},
	{Character: ".", AtBreak: true, Before: `\d+`, After: `(?:[ \t\r\n]|$)`},

	{Character: "<", AtBreak: true, After: `[!/?A-Za-z]`},
	{Character: "<", After: `[!/?A-Za-z]`, InConstruct: []string{"phrasing"}, NotInConstruct: fullPhrasingSpans},
	{Character: "<", InConstruct: []string{"destinationLiteral"}},
	{Character: "=", AtBreak: true},
	{Character: ">", AtBreak: true},
	{Character: ">", InConstruct: []string{"destinationLiteral"}},

	{Character: "[", AtBreak: true},
	{Character: "[", InConstruct: []string{"phrasing"}, NotInConstruct: fullPhrasingSpans},
	{Character: "[", InConstruct: []string{"label", "reference"}},
	{Character: `\`, After: `[\r\n]`, InConstruct: []string{"phrasing"}},
	{Character: "]", InConstruct: []string{"label", "reference"}},

	{Character: "_", AtBreak: true},
	{Character: "_", InConstruct: []string{"phrasing"}, NotInConstruct: fullPhrasingSpans},
	{Character: "`", AtBreak: true},
	{Character: "`", InConstruct: []string{"codeFencedLangGraveAccent", "codeFencedMetaGraveAccent"}},
	{Character: "`", InConstruct: []string{"phrasing"}, NotInConstruct: fullPhrasingSpans},
	{Character: "~", AtBreak: true},
}

// tableUnsafe is contributed by the table extension.
var tableUnsafe = []Pattern{
	{Character: "\r", InConstruct: []string{"tableCell"}},
	{Character: "\n", InConstruct: []string{"tableCell"}},
	// A pipe followed by these could start a delimiter row.
	{Character: "|", AtBreak: true, After: `[\t :-]`},
	{Character: "|", InConstruct: []string{"tableCell"}},
	{Character: ":", AtBreak: true, After: "-"},
	{Character: "-", AtBreak: true, After: `[:|-]`},
}

// footnoteUnsafe is contributed by the footnote extension.
var footnoteUnsafe = []Pattern{
	{Character: "[", InConstruct: []string{"label", "phrasing", "reference"}},
}

// frontMatterUnsafe keeps text from opening a front matter fence.
var frontMatterUnsafe = []Pattern{
	{Character: "-", AtBreak: true, After: "-"},
	{Character: "+", AtBreak: true, After: `\+`},
}

// builtinPatterns is every pattern the serializer always uses,
// compiled once.
var builtinPatterns = mustCompilePatterns(concat(defaultUnsafe, tableUnsafe, footnoteUnsafe, frontMatterUnsafe))

func concat[T any](lists ...[]T) []T {
	var out []T
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// compilePatterns returns the builtin patterns followed by extra,
// compiling only the extra ones.
func compilePatterns(extra []Pattern) ([]*compiledPattern, error) {
	out := append([]*compiledPattern(nil), builtinPatterns...)
	for _, p := range extra {
		c, err := compilePattern(p)
		if err != nil {
			return nil, &ConfigurationError{Option: "unsafe", Value: p.Character, what: "pattern", want: "a valid pattern: " + err.Error()}
		}
		out = append(out, c)
	}
	return out, nil
}
