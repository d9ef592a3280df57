// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

// Matcher evaluates a compiled pattern with an ancestor directory walk.
type Matcher struct {
	re      *regexp2.Regexp
	logger  zerolog.Logger
	pattern Pattern
}

// NewMatcher compiles pattern expression into matcher.
//
// An empty pattern produces a matcher that never excludes.
func NewMatcher(p Pattern, opts MatcherOptions) (*Matcher, error) {
	m := &Matcher{
		pattern: p,
		logger:  loggerOrNop(opts.Logger),
	}

	if p.Empty() {
		return m, nil
	}

	reOpts := regexp2.None
	if p.IgnoreCase {
		reOpts |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(p.Expr, reOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}

	m.re = re
	return m, nil
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() Pattern {
	return m.pattern
}

// MatchString tests the expression against one path without walking ancestors.
func (m *Matcher) MatchString(path string) (bool, error) {
	if m.re == nil {
		return false, nil
	}

	ok, err := m.re.MatchString(path)
	if err != nil {
		return false, fmt.Errorf("match %q: %w", path, err)
	}

	return ok, nil
}

// Excluded reports whether path is excluded.
//
// Every ancestor directory is tested first, nearest one first, then the path
// itself. The first match wins: content of an excluded directory is never
// reached by a directory walk.
func (m *Matcher) Excluded(path string) (bool, error) {
	if m.re == nil || path == "" {
		return false, nil
	}

	for dir, ok := parentPath(path); ok; dir, ok = parentPath(dir) {
		matched, err := m.MatchString(dir)
		if err != nil {
			return false, err
		}

		if matched {
			m.logger.Debug().Str("path", path).Str("by", dir).Msg("excluded by ancestor")
			return true, nil
		}
	}

	matched, err := m.MatchString(path)
	if err != nil {
		return false, err
	}

	if matched {
		m.logger.Debug().Str("path", path).Msg("excluded")
	}

	return matched, nil
}

// Included reports whether path is not excluded.
func (m *Matcher) Included(path string) (bool, error) {
	excluded, err := m.Excluded(path)
	if err != nil {
		return false, err
	}

	return !excluded, nil
}

// FilterExcluded returns paths that are not excluded, preserving order.
func (m *Matcher) FilterExcluded(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		excluded, err := m.Excluded(path)
		if err != nil {
			return nil, err
		}

		if !excluded {
			out = append(out, path)
		}
	}

	return out, nil
}
