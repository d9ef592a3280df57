// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// sepClass matches either path separator in expression text.
const sepClass = `[\\/]`

// escapeLiteral escapes literal slash-separated text for the expression,
// turning every "/" into a separator class.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(regexp2.Escape(s), "/", sepClass)
}

// toSlash replaces every backslash with a forward slash.
func toSlash(s string) string {
	if strings.Contains(s, `\`) {
		return strings.ReplaceAll(s, `\`, `/`)
	}

	return s
}

// foldPath returns comparison form for case-insensitive paths.
func foldPath(s string) string {
	return strings.ToLower(s)
}

// hasDescendant reports whether candidate lies strictly under dir.
func hasDescendant(dir string, candidate string, caseSensitive bool) bool {
	if len(candidate) <= len(dir)+1 || candidate[len(dir)] != '/' {
		return false
	}

	if caseSensitive {
		return strings.HasPrefix(candidate, dir)
	}

	return strings.EqualFold(candidate[:len(dir)], dir)
}

// slashAncestors returns proper ancestors of a "/"-prefixed relative path,
// deepest first. "/d/e/f" yields "/d/e" and "/d".
func slashAncestors(rel string) []string {
	var out []string
	for {
		i := strings.LastIndexByte(rel, '/')
		if i <= 0 {
			return out
		}

		rel = rel[:i]
		out = append(out, rel)
	}
}

// parentPath returns the parent of a path using both separator styles.
//
// The filesystem root ("/", "C:\") has no parent.
func parentPath(p string) (string, bool) {
	i := strings.LastIndexAny(p, `/\`)
	if i < 0 {
		return "", false
	}

	parent := p[:i]
	if parent == "" || strings.HasSuffix(parent, ":") {
		parent = p[:i+1]
		if parent == p {
			return "", false
		}
	}

	return parent, true
}
