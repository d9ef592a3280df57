// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"strings"

	"github.com/rs/zerolog"
)

// BuildExpression assembles the anchored expression for a classified rule set.
//
// Returns "" when the set has no exclude rules.
func BuildExpression(set RuleSet, root string, caseSensitive bool) string {
	return assemble(root, buildFragments(set, caseSensitive, zerolog.Nop()))
}

// buildFragments builds one fragment per exclude rule, directories first.
func buildFragments(set RuleSet, caseSensitive bool, logger zerolog.Logger) []string {
	fragments := make([]string, 0, len(set.ExcludeDirs)+len(set.ExcludeFiles))
	for _, dir := range set.ExcludeDirs {
		fragment, exceptions := dirFragment(dir, set, caseSensitive)
		logger.Debug().
			Str("dir", dir).
			Int("exceptions", exceptions).
			Str("fragment", fragment).
			Msg("directory fragment")
		fragments = append(fragments, fragment)
	}

	for _, file := range set.ExcludeFiles {
		fragment := fileFragment(file)
		logger.Debug().
			Str("file", file).
			Str("fragment", fragment).
			Msg("file fragment")
		fragments = append(fragments, fragment)
	}

	return fragments
}

// assemble anchors fragments to the escaped root.
//
// Layout: "^" + root + "(?:(?:f1)|(?:f2)|...)", a single fragment is appended
// without grouping.
func assemble(root string, fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteByte('^')
	b.WriteString(escapeLiteral(toSlash(root)))

	if len(fragments) == 1 {
		b.WriteString(fragments[0])
		return b.String()
	}

	b.WriteString(`(?:`)
	for i, fragment := range fragments {
		if i > 0 {
			b.WriteByte('|')
		}

		b.WriteString(`(?:`)
		b.WriteString(fragment)
		b.WriteByte(')')
	}
	b.WriteByte(')')

	return b.String()
}
