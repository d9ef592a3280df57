// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import "io"

// Compile parses rule lines and compiles them into a pattern anchored at root.
//
// Compilation is all-or-nothing: on error the zero Pattern is returned.
func Compile(lines []string, root string, opts CompileOptions) (Pattern, error) {
	rules, err := ParseLines(lines)
	if err != nil {
		return Pattern{}, err
	}

	return CompileRules(rules, root, opts)
}

// CompileReader parses rules from reader and compiles them.
func CompileReader(r io.Reader, root string, opts CompileOptions) (Pattern, error) {
	rules, err := ParseRules(r)
	if err != nil {
		return Pattern{}, err
	}

	return CompileRules(rules, root, opts)
}

// CompileRules compiles already parsed rules into a pattern anchored at root.
//
// Root is matched literally, so it normally ends with a separator.
// Returned expression is empty when there are no exclude rules.
func CompileRules(rules []Rule, root string, opts CompileOptions) (Pattern, error) {
	logger := loggerOrNop(opts.Logger)

	for _, rule := range rules {
		if rule.Path == "" {
			return Pattern{}, &RuleError{Line: rule.Line, Text: rule.Source, Reason: "empty path"}
		}
	}

	if opts.Deduplicate {
		rules = dedupeRules(rules, opts.CaseSensitive)
	}

	set := Classify(rules)
	pattern := Pattern{IgnoreCase: !opts.CaseSensitive}

	if set.Empty() {
		logger.Debug().
			Int("rules", len(rules)).
			Msg("no exclude rules, pattern is empty")
		return pattern, nil
	}

	fragments := buildFragments(set, opts.CaseSensitive, logger)
	pattern.Expr = assemble(root, fragments)

	logger.Debug().
		Int("rules", len(rules)).
		Int("exclude_dirs", len(set.ExcludeDirs)).
		Int("exclude_files", len(set.ExcludeFiles)).
		Int("include_dirs", len(set.IncludeDirs)).
		Int("include_files", len(set.IncludeFiles)).
		Int("fragments", len(fragments)).
		Str("root", root).
		Msg("compiled skip pattern")

	return pattern, nil
}
