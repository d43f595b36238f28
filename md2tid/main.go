// Copyright 2021 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2tid converts Markdown to TiddlyWiki wikitext.
//
// Usage:
//
//	md2tid [-w] [--fields] [--options file.yaml] [--fences] [--log-level level] [file...]
//
// Md2tid reads the named files, or else standard input, as Markdown documents
// and prints the corresponding wikitext to standard output.
//
// The -w flag writes each result to a .tid file next to its input instead.
// The --fields flag turns YAML front matter into tiddler fields.
// The --options flag names a YAML file of serializer options;
// flags given on the command line take priority over it.
package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/md2tid/wikitext"
)

type cli struct {
	Write    bool     `short:"w" help:"Write wikitext to name.tid next to each input file."`
	Fields   bool     `help:"Render YAML front matter as tiddler fields."`
	Options  string   `type:"existingfile" placeholder:"FILE" help:"YAML file of serializer options."`
	Fences   bool     `help:"Always use fenced code blocks."`
	LogLevel string   `enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`
	Files    []string `arg:"" optional:"" type:"path" help:"Markdown files to convert; standard input if none."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var c cli
	exited := -1
	parser := kong.Must(&c,
		kong.Name("md2tid"),
		kong.Description("Convert Markdown to TiddlyWiki wikitext."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited = code }),
	)
	_, err := parser.Parse(args)
	if exited >= 0 {
		// --help
		return exited
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := c.options(log)
	if err != nil {
		log.Error("loading options", "file", c.Options, "error", err)
		return 1
	}

	if len(c.Files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			log.Error("reading standard input", "error", err)
			return 1
		}
		if err := convert(data, "", opts, stdout, false, log); err != nil {
			log.Error("converting standard input", "error", err)
			return 1
		}
		return 0
	}

	exit := 0
	for _, file := range c.Files {
		data, err := os.ReadFile(file)
		if err == nil {
			err = convert(data, file, opts, stdout, c.Write, log)
		}
		if err != nil {
			log.Error("converting", "file", file, "error", err)
			exit = 1
		}
	}
	return exit
}

// options builds the serializer options from the options file, if any,
// overlaid with the command-line flags.
func (c *cli) options(log *slog.Logger) (*wikitext.Options, error) {
	opts := &wikitext.Options{}
	if c.Options != "" {
		fileOpts, err := loadOptions(c.Options)
		if err != nil {
			return nil, err
		}
		opts.Extensions = []wikitext.Options{*fileOpts}
	}
	opts.Fences = c.Fences
	opts.FrontMatterFields = c.Fields
	opts.Logger = log
	return opts, nil
}

func convert(data []byte, file string, opts *wikitext.Options, stdout io.Writer, write bool, log *slog.Logger) error {
	out, err := wikitext.ToTid(data, opts)
	if err != nil {
		return err
	}
	if write && file != "" {
		name := tidName(file)
		if err := os.WriteFile(name, out, 0666); err != nil {
			return err
		}
		log.Info("wrote", "file", name, "bytes", len(out))
		return nil
	}
	_, err = stdout.Write(out)
	return err
}

// tidName returns the .tid file name for a Markdown file.
func tidName(file string) string {
	ext := filepath.Ext(file)
	switch strings.ToLower(ext) {
	case ".md", ".markdown", ".mdown", ".mkd":
		file = strings.TrimSuffix(file, ext)
	}
	return file + ".tid"
}
