// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import "strings"

// exception is one include rule found under an excluded directory.
type exception struct {
	// rel is the exception path relative to the excluded directory, starting with "/".
	rel string
	// dir means the exception spares a whole subtree.
	dir bool
}

// findExceptions collects include rules lying strictly under dir.
//
// Directory exceptions come first, then file exceptions, each in input order.
func findExceptions(dir string, set RuleSet, caseSensitive bool) []exception {
	var out []exception
	for _, inc := range set.IncludeDirs {
		if hasDescendant(dir, inc, caseSensitive) {
			out = append(out, exception{rel: inc[len(dir):], dir: true})
		}
	}

	for _, inc := range set.IncludeFiles {
		if hasDescendant(dir, inc, caseSensitive) {
			out = append(out, exception{rel: inc[len(dir):]})
		}
	}

	return out
}

// exceptionAlternatives builds lookahead alternatives for the exceptions of one directory.
//
// Every intermediate directory between the excluded directory and an exception
// gets a passthrough alternative anchored at end of string. Without them an
// ancestor walk would stop at the first intermediate directory and never reach
// the exception.
func exceptionAlternatives(exceptions []exception) []string {
	alts := make([]string, 0, len(exceptions)*2)
	for _, ex := range exceptions {
		for _, anc := range slashAncestors(ex.rel) {
			alts = append(alts, `(?:`+escapeLiteral(anc)+sepClass+`?$)`)
		}

		if ex.dir {
			alts = append(alts, `(?:`+escapeLiteral(ex.rel)+`(?:$|`+sepClass+`))`)
			continue
		}

		alts = append(alts, escapeLiteral(ex.rel)+`$`)
	}

	return alts
}

// dirFragment builds the fragment for one excluded directory.
func dirFragment(dir string, set RuleSet, caseSensitive bool) (string, int) {
	exceptions := findExceptions(dir, set, caseSensitive)
	if len(exceptions) == 0 {
		return escapeLiteral(dir) + `(?:$|` + sepClass + `)`, 0
	}

	// The directory itself is left to the walk: only something beneath it that
	// is not an exception (or on the way to one) matches.
	alts := exceptionAlternatives(exceptions)
	return escapeLiteral(dir) + `(?!` + strings.Join(alts, "|") + `)` + sepClass + `.+`, len(exceptions)
}

// fileFragment builds the fragment for one excluded file.
func fileFragment(file string) string {
	return escapeLiteral(file) + `$`
}
