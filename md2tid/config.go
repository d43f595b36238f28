// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/md2tid/wikitext"
)

// fileOptions is the YAML form of the serializer options.
type fileOptions struct {
	Bullet           string `yaml:"bullet"`
	BulletOrdered    string `yaml:"bullet_ordered"`
	Emphasis         string `yaml:"emphasis"`
	Strong           string `yaml:"strong"`
	Fence            string `yaml:"fence"`
	Fences           bool   `yaml:"fences"`
	Quote            string `yaml:"quote"`
	ListItemIndent   string `yaml:"list_item_indent"`
	Rule             string `yaml:"rule"`
	RuleRepetition   int    `yaml:"rule_repetition"`
	CloseAtx         bool   `yaml:"close_atx"`
	TightDefinitions bool   `yaml:"tight_definitions"`
	ResourceLink     bool   `yaml:"resource_link"`
	TableNoPadding   bool   `yaml:"table_no_padding"`
	TableNoAlign     bool   `yaml:"table_no_align"`
	WikiLinks        bool   `yaml:"wiki_links"`
	Fields           bool   `yaml:"front_matter_fields"`
}

// loadOptions reads serializer options from a YAML file.
// Unknown keys are an error.
func loadOptions(file string) (*wikitext.Options, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var f fileOptions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return &wikitext.Options{
		Bullet:            f.Bullet,
		BulletOrdered:     f.BulletOrdered,
		Emphasis:          f.Emphasis,
		Strong:            f.Strong,
		Fence:             f.Fence,
		Fences:            f.Fences,
		Quote:             f.Quote,
		ListItemIndent:    f.ListItemIndent,
		Rule:              f.Rule,
		RuleRepetition:    f.RuleRepetition,
		CloseAtx:          f.CloseAtx,
		TightDefinitions:  f.TightDefinitions,
		ResourceLink:      f.ResourceLink,
		TableNoPadding:    f.TableNoPadding,
		TableNoAlign:      f.TableNoAlign,
		WikiLinks:         f.WikiLinks,
		FrontMatterFields: f.Fields,
	}, nil
}
