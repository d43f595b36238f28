// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wikitext

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// A FrontMatter is document metadata at the very start of a document,
// YAML between "---" lines or TOML between "+++" lines.
type FrontMatter struct {
	Kind  string // "yaml" (default) or "toml"
	Value string // content between the fences
}

func (x *FrontMatter) Type() string {
	if x.Kind == "" {
		return "yaml"
	}
	return x.Kind
}

func (x *FrontMatter) fence() string {
	if x.Type() == "toml" {
		return "+++"
	}
	return "---"
}

func handleFrontMatter(n, _ Node, s *State, _ Info) string {
	fm := n.(*FrontMatter)
	if s.Options.FrontMatterFields && fm.Type() == "yaml" {
		fields, err := tidFields(fm.Value)
		if err != nil {
			s.fail(fmt.Errorf("front matter: %w", err))
		}
		return fields
	}
	fence := fm.fence()
	if fm.Value == "" {
		return fence + "\n" + fence
	}
	return fence + "\n" + fm.Value + "\n" + fence
}

// splitFrontMatter separates leading front matter from the Markdown body.
// If src has no front matter, fm is nil and body is src.
// An opening fence with no closing fence is not front matter:
// "---" is also a thematic break.
func splitFrontMatter(src []byte) (fm *FrontMatter, body []byte) {
	nl := []byte("\n")
	if i := bytes.IndexByte(src, '\n'); i > 0 && src[i-1] == '\r' {
		nl = []byte("\r\n")
	}
	for _, kind := range []string{"yaml", "toml"} {
		fence := []byte((&FrontMatter{Kind: kind}).fence())
		open := append(fence[:len(fence):len(fence)], nl...)
		if !bytes.HasPrefix(src, open) {
			continue
		}
		rest := src[len(open):]
		if bytes.HasPrefix(rest, open) {
			return &FrontMatter{Kind: kind}, rest[len(open):]
		}
		closeSeq := append(append(append([]byte{}, nl...), fence...), nl...)
		i := bytes.Index(rest, closeSeq)
		if i < 0 {
			if bytes.HasSuffix(rest, append(append([]byte{}, nl...), fence...)) {
				i = len(rest) - len(nl) - len(fence)
				return &FrontMatter{Kind: kind, Value: string(rest[:i])}, nil
			}
			return nil, src
		}
		return &FrontMatter{Kind: kind, Value: string(rest[:i])}, rest[i+len(closeSeq):]
	}
	return nil, src
}

// tidFields renders a YAML mapping as .tid header fields,
// one "name: value" line per key, in document order.
func tidFields(src string) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return "", err
	}
	if len(doc.Content) == 0 {
		return "", nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return "", fmt.Errorf("want a mapping, found %s", kindName(m.Kind))
	}
	var lines []string
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := strings.ToLower(strings.TrimSpace(m.Content[i].Value))
		value, err := fieldValue(key, m.Content[i+1])
		if err != nil {
			return "", fmt.Errorf("field %q: %w", key, err)
		}
		lines = append(lines, key+": "+value)
	}
	return strings.Join(lines, "\n"), nil
}

func fieldValue(key string, v *yaml.Node) (string, error) {
	switch v.Kind {
	case yaml.ScalarNode:
		if key == "created" || key == "modified" {
			var t time.Time
			if err := v.Decode(&t); err == nil {
				return t.UTC().Format("20060102150405") + "000", nil
			}
		}
		return strings.Join(strings.Fields(v.Value), " "), nil
	case yaml.SequenceNode:
		// A title list: titles with spaces are bracketed.
		items := make([]string, 0, len(v.Content))
		for _, item := range v.Content {
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("list item is a %s", kindName(item.Kind))
			}
			title := item.Value
			if strings.ContainsAny(title, " \t") {
				title = "[[" + title + "]]"
			}
			items = append(items, title)
		}
		return strings.Join(items, " "), nil
	case yaml.AliasNode:
		return fieldValue(key, v.Alias)
	}
	return "", fmt.Errorf("unsupported %s value", kindName(v.Kind))
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
