// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Options configures serialization.
// The zero value selects the default wikitext style.
type Options struct {
	// Bullet is the marker for unordered list items: "*" (default), "+" or "-".
	Bullet string

	// BulletOrdered is the marker for ordered list items: "#".
	BulletOrdered string

	// Emphasis is the emphasis marker: "//" (default) or "''".
	Emphasis string

	// Strong is the strong marker: "''".
	Strong string

	// Fence is the code fence character: "`" (default), "~", "<" or "$".
	Fence string

	// Fences forces fenced code blocks even where
	// an indented code block would do.
	Fences bool

	// Quote is the quote used around titles and macro parameters:
	// `"` (default) or "'".
	Quote string

	// ListItemIndent selects how list item continuation lines are
	// indented: "one" (default), "tab" or "mixed".
	ListItemIndent string

	// Rule is the thematic break marker: "-".
	// SeparateLineMarker is accepted as an alias.
	Rule               string
	SeparateLineMarker string

	// RuleRepetition is how often the rule marker is repeated, 3 or more.
	// SeparateLineRepetition is accepted as an alias.
	RuleRepetition         int
	SeparateLineRepetition int

	// CloseAtx closes headings with a matching run of "!".
	CloseAtx bool

	// TightDefinitions joins adjacent definitions without a blank line.
	TightDefinitions bool

	// ResourceLink always uses the [[text|url]] link form,
	// never the [ext[url]] autolink form.
	ResourceLink bool

	// IncrementListMarker is accepted for compatibility with Markdown
	// serializers. Wikitext numbers ordered lists itself.
	IncrementListMarker bool

	// TableNoPadding drops the space between cell content and pipes.
	TableNoPadding bool

	// TableNoAlign disables padding cells to a common column width.
	TableNoAlign bool

	// StringLength reports the display width of a table cell.
	// The default counts East Asian wide characters as two columns.
	StringLength func(string) int

	// WikiLinks rewrites Obsidian-style [[Target|Alias]] and ![[Embed]]
	// found in text into wikitext links and transclusions
	// instead of escaping them.
	WikiLinks bool

	// FrontMatterFields renders YAML front matter as .tid header fields.
	FrontMatterFields bool

	// Logger receives debug logging. Nil discards it.
	Logger *slog.Logger

	// Extensions are merged, depth first, before the options themselves.
	Extensions []Options

	// Handlers adds or replaces node handlers by type tag.
	Handlers map[string]Handler

	// Join adds join rules. Rules are consulted from the most
	// recently registered to the first, before the default rules.
	Join []JoinFunc

	// Unsafe adds patterns the text encoder must escape.
	Unsafe []Pattern
}

// A ConfigurationError reports an invalid option value.
type ConfigurationError struct {
	Option string   // name of the option, like "bullet"
	Value  any      // offending value
	Legal  []string // legal values, if enumerable
	what   string
	want   string
}

func (e *ConfigurationError) Error() string {
	want := e.want
	if want == "" {
		want = orList(e.Legal)
	}
	return fmt.Sprintf("cannot serialize %s %s for `options.%s`, expected %s", e.what, inlineCode(fmt.Sprint(e.Value)), e.Option, want)
}

// inlineCode quotes v as a code span for a message.
func inlineCode(v string) string {
	if strings.Contains(v, "`") {
		return "`` " + v + " ``"
	}
	return "`" + v + "`"
}

// orList formats values as "`a`, `b`, or `c`".
func orList(values []string) string {
	q := make([]string, len(values))
	for i, v := range values {
		q[i] = inlineCode(v)
	}
	switch len(q) {
	case 0:
		return "nothing"
	case 1:
		return q[0]
	case 2:
		return q[0] + " or " + q[1]
	}
	return strings.Join(q[:len(q)-1], ", ") + ", or " + q[len(q)-1]
}

// configure merges the extensions of o into a single flat Options,
// depth first, with o itself taking priority.
func configure(o Options) Options {
	var base Options
	for _, ext := range o.Extensions {
		base = merge(base, configure(ext))
	}
	o.Extensions = nil
	return merge(base, o)
}

// merge overlays top on base. Handlers are merged by tag,
// join rules and patterns are appended, and every other
// set field of top replaces the one in base.
func merge(base, top Options) Options {
	out := top
	pick := func(dst *string, b string) {
		if *dst == "" {
			*dst = b
		}
	}
	pick(&out.Bullet, base.Bullet)
	pick(&out.BulletOrdered, base.BulletOrdered)
	pick(&out.Emphasis, base.Emphasis)
	pick(&out.Strong, base.Strong)
	pick(&out.Fence, base.Fence)
	pick(&out.Quote, base.Quote)
	pick(&out.ListItemIndent, base.ListItemIndent)
	pick(&out.Rule, base.Rule)
	pick(&out.SeparateLineMarker, base.SeparateLineMarker)
	if out.RuleRepetition == 0 {
		out.RuleRepetition = base.RuleRepetition
	}
	if out.SeparateLineRepetition == 0 {
		out.SeparateLineRepetition = base.SeparateLineRepetition
	}
	out.Fences = out.Fences || base.Fences
	out.CloseAtx = out.CloseAtx || base.CloseAtx
	out.TightDefinitions = out.TightDefinitions || base.TightDefinitions
	out.ResourceLink = out.ResourceLink || base.ResourceLink
	out.IncrementListMarker = out.IncrementListMarker || base.IncrementListMarker
	out.TableNoPadding = out.TableNoPadding || base.TableNoPadding
	out.TableNoAlign = out.TableNoAlign || base.TableNoAlign
	out.WikiLinks = out.WikiLinks || base.WikiLinks
	out.FrontMatterFields = out.FrontMatterFields || base.FrontMatterFields
	if out.StringLength == nil {
		out.StringLength = base.StringLength
	}
	if out.Logger == nil {
		out.Logger = base.Logger
	}

	handlers := maps.Clone(base.Handlers)
	if handlers == nil && top.Handlers != nil {
		handlers = make(map[string]Handler, len(top.Handlers))
	}
	maps.Copy(handlers, top.Handlers)
	out.Handlers = handlers
	out.Join = append(slices.Clip(base.Join), top.Join...)
	out.Unsafe = append(slices.Clip(base.Unsafe), top.Unsafe...)
	return out
}

// resolve flattens and validates opts, filling in defaults.
// The result is never modified afterward.
func resolve(opts *Options) (Options, error) {
	var o Options
	if opts != nil {
		o = configure(*opts)
	}
	if o.Rule == "" {
		o.Rule = o.SeparateLineMarker
	}
	if o.RuleRepetition == 0 {
		o.RuleRepetition = o.SeparateLineRepetition
	}
	checks := []struct {
		field *string
		name  string
		what  string
		def   string
		legal []string
	}{
		{&o.Bullet, "bullet", "items with", "*", []string{"*", "+", "-"}},
		{&o.BulletOrdered, "bulletOrdered", "items with", "#", []string{"#"}},
		{&o.Emphasis, "emphasis", "emphasis with", "//", []string{"//", "''"}},
		{&o.Strong, "strong", "strong with", "''", []string{"''"}},
		{&o.Fence, "fence", "code with", "`", []string{"`", "~", "<", "$"}},
		{&o.Quote, "quote", "titles with", `"`, []string{`"`, "'"}},
		{&o.ListItemIndent, "listItemIndent", "items with", "one", []string{"one", "tab", "mixed"}},
		{&o.Rule, "rule", "rules with", "-", []string{"-"}},
	}
	for _, c := range checks {
		if *c.field == "" {
			*c.field = c.def
		}
		if !slices.Contains(c.legal, *c.field) {
			return Options{}, &ConfigurationError{Option: c.name, Value: *c.field, Legal: c.legal, what: c.what}
		}
	}
	o.SeparateLineMarker = o.Rule
	if o.RuleRepetition == 0 {
		o.RuleRepetition = 3
	}
	if o.RuleRepetition < 3 {
		return Options{}, &ConfigurationError{
			Option: "ruleRepetition",
			Value:  o.RuleRepetition,
			what:   "rules with repetition",
			want:   "`3` or more",
		}
	}
	o.SeparateLineRepetition = o.RuleRepetition
	if o.StringLength == nil {
		o.StringLength = displayWidth
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o, nil
}
