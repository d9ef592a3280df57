// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRulesFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRulesFile(t, filepath.Join(root, "ignore.txt"), "App_Data/\n!App_Data/config/global/\nweb.debug.config\n")

	p, err := NewProvider(root, ProviderOptions{})
	require.NoError(t, err)

	tests := []struct {
		path     string
		excluded bool
	}{
		{path: "App_Data/data.txt", excluded: true},
		{path: "app_data/logs/a.json", excluded: true},
		{path: "App_Data/config/global/general.json", excluded: false},
		{path: "App_Data/config/global", excluded: false},
		{path: "web.debug.config", excluded: true},
		{path: "web.config", excluded: false},
		{path: `Views\Home.master`, excluded: false},
		{path: "./App_Data/./data.txt", excluded: true},
	}

	for _, tt := range tests {
		excluded, err := p.Excluded(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.excluded, excluded, tt.path)

		included, err := p.Included(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, !tt.excluded, included, tt.path)
	}
}

func TestProviderMissingRulesFile(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(t.TempDir(), ProviderOptions{RulesFileName: ".skip"})
	require.NoError(t, err)

	pattern, err := p.Pattern()
	require.NoError(t, err)
	assert.True(t, pattern.Empty())

	excluded, err := p.Excluded("anything/at/all")
	require.NoError(t, err)
	assert.False(t, excluded)
}

func TestProviderBaseRules(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRulesFile(t, filepath.Join(root, ".skip"), "!obj/keep/\n")

	p, err := NewProvider(root, ProviderOptions{
		RulesFileName: ".skip",
		BaseRules:     []string{"obj/", "bin/"},
	})
	require.NoError(t, err)

	excluded, err := p.Excluded("obj/debug/a.dll")
	require.NoError(t, err)
	assert.True(t, excluded)

	excluded, err = p.Excluded("obj/keep/a.dll")
	require.NoError(t, err)
	assert.False(t, excluded)

	excluded, err = p.Excluded("bin/a.dll")
	require.NoError(t, err)
	assert.True(t, excluded)
}

func TestProviderExcludedInDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRulesFile(t, filepath.Join(root, "ignore.txt"), "assets/\n!assets/public/\n")

	p, err := NewProvider(root, ProviderOptions{})
	require.NoError(t, err)

	got, err := p.ExcludedInDir("assets", []string{"public", "uploads", "logo.png"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, got)

	got, err = p.ExcludedInDir("", []string{"assets", "index.html"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, got)

	_, err = p.ExcludedInDir("assets", []string{"a/b"})
	require.ErrorIs(t, err, ErrPathOutsideRoot)
}

func TestProviderInvalidRulesFileIsCached(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRulesFile(t, filepath.Join(root, "ignore.txt"), "a/\n!\n")

	p, err := NewProvider(root, ProviderOptions{})
	require.NoError(t, err)

	_, err = p.Excluded("a/b")
	require.ErrorIs(t, err, ErrInvalidRule)

	// Fixing the file does not reset the cached failure.
	writeRulesFile(t, filepath.Join(root, "ignore.txt"), "a/\n")

	_, err = p.Excluded("a/b")
	require.ErrorIs(t, err, ErrInvalidRule)
}

func TestProviderRejectsTraversalPaths(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(t.TempDir(), ProviderOptions{})
	require.NoError(t, err)

	for _, rel := range []string{"", "..", "../x", "a/../../x", "/abs/path"} {
		_, err := p.Excluded(rel)
		require.ErrorIs(t, err, ErrPathOutsideRoot, rel)
	}
}

func TestProviderInvalidRulesFileName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a/b", "..", "."} {
		_, err := NewProvider(t.TempDir(), ProviderOptions{RulesFileName: name})
		require.ErrorIs(t, err, ErrInvalidRulesFileName, name)
	}
}

func TestProviderNil(t *testing.T) {
	t.Parallel()

	var p *Provider
	_, err := p.Excluded("a")
	require.ErrorIs(t, err, ErrNilProvider)
}

func writeRulesFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
