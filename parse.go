// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRules parses skip rules from reader.
//
// Semantics:
// - everything from the first "#" is a comment
// - surrounding whitespace is ignored, blank lines are skipped
// - "!" creates an exception rule
// - trailing "/" (or "\") creates a directory rule
// - an exception without a path is an error
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	line := 0
	for s.Scan() {
		line++
		rule, ok, err := ParseLine(s.Text(), line)
		if err != nil {
			return nil, err
		}

		if ok {
			rules = append(rules, rule)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// ParseLines parses rules from already split lines.
//
// Line numbers in errors are 1-based slice positions.
func ParseLines(lines []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(lines))
	for i, raw := range lines {
		rule, ok, err := ParseLine(raw, i+1)
		if err != nil {
			return nil, err
		}

		if ok {
			rules = append(rules, rule)
		}
	}

	return rules, nil
}

// ParseLine normalizes one raw rule line.
//
// ok is false for blank and comment-only lines.
func ParseLine(raw string, line int) (rule Rule, ok bool, err error) {
	s := raw
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Rule{}, false, nil
	}

	negated := false
	if s[0] == '!' {
		negated = true
		s = s[1:]
	}

	s = strings.ReplaceAll(s, `\`, `/`)
	s = strings.TrimPrefix(s, "/")

	dir := false
	if strings.HasSuffix(s, "/") {
		dir = true
		s = s[:len(s)-1]
	}

	if s == "" {
		reason := "empty path"
		if negated {
			reason = "empty exception"
		}

		return Rule{}, false, &RuleError{Line: line, Text: raw, Reason: reason}
	}

	return Rule{
		Path:    s,
		Source:  raw,
		Line:    line,
		Dir:     dir,
		Negated: negated,
	}, true, nil
}
