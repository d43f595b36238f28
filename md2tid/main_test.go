// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestRunStdin(t *testing.T) {
	code, out, _ := runCmd(t, "**a** and *b*\n")
	require.Equal(t, 0, code)
	assert.Equal(t, "''a'' and //b//\n", out)
}

func TestRunWrite(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(md, []byte("# Hi\n"), 0666))

	code, out, _ := runCmd(t, "", "-w", md)
	require.Equal(t, 0, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "note.tid"))
	require.NoError(t, err)
	assert.Equal(t, "! Hi\n", string(data))
}

func TestRunFields(t *testing.T) {
	src := "---\ntitle: Hello\ntags: [a, b c]\n---\nText\n"
	code, out, _ := runCmd(t, src, "--fields")
	require.Equal(t, 0, code)
	assert.Equal(t, "title: Hello\ntags: a [[b c]]\n\nText\n", out)
}

func TestRunOptionsFile(t *testing.T) {
	dir := t.TempDir()
	opts := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(opts, []byte("bullet: '-'\n"), 0666))

	code, out, _ := runCmd(t, "* a\n* b\n", "--options", opts)
	require.Equal(t, 0, code)
	assert.Equal(t, "- a\n- b\n", out)
}

func TestRunBadOptions(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bullet: x\n"), 0666))
	code, _, stderr := runCmd(t, "a\n", "--options", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "options.bullet")

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("bulet: '*'\n"), 0666))
	code, _, stderr = runCmd(t, "a\n", "--options", unknown)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "bulet")
}

func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	require.NoError(t, os.WriteFile(good, []byte("ok\n"), 0666))

	code, out, stderr := runCmd(t, "", good, filepath.Join(dir, "missing.md"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "ok\n", out)
	assert.Contains(t, stderr, "missing.md")
}

func TestTidName(t *testing.T) {
	for in, want := range map[string]string{
		"a.md":         "a.tid",
		"dir/b.MD":     "dir/b.tid",
		"c.markdown":   "c.tid",
		"notes.txt":    "notes.txt.tid",
		"no-extension": "no-extension.tid",
	} {
		assert.Equal(t, want, tidName(in), "tidName(%q)", in)
	}
}
