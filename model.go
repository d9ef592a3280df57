// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"time"

	"github.com/rs/zerolog"
)

// Rule is one normalized rule line.
type Rule struct {
	// Path is root-relative slash-separated literal path without leading or trailing slash.
	Path string `json:"path" yaml:"path"`
	// Source is the original line text.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Line is the 1-based source line number, 0 for rules built in code.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Dir means the rule had a trailing slash.
	Dir bool `json:"dir,omitempty" yaml:"dir,omitempty"`
	// Negated means the rule is an exception ("!" prefix).
	Negated bool `json:"negated,omitempty" yaml:"negated,omitempty"`
}

// RuleSet is the four-way partition of rules by kind.
type RuleSet struct {
	// ExcludeDirs are plain directory rules.
	ExcludeDirs []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty"`
	// ExcludeFiles are plain file rules.
	ExcludeFiles []string `json:"exclude_files,omitempty" yaml:"exclude_files,omitempty"`
	// IncludeDirs are negated directory rules.
	IncludeDirs []string `json:"include_dirs,omitempty" yaml:"include_dirs,omitempty"`
	// IncludeFiles are negated file rules.
	IncludeFiles []string `json:"include_files,omitempty" yaml:"include_files,omitempty"`
}

// Pattern is a compiled skip expression.
type Pattern struct {
	// Expr is the anchored regular expression, empty when nothing is excluded.
	Expr string `json:"expr" yaml:"expr"`
	// IgnoreCase reports that Expr must be evaluated case-insensitively.
	IgnoreCase bool `json:"ignore_case" yaml:"ignore_case"`
}

// CompileOptions controls rule compilation.
type CompileOptions struct {
	// Logger receives debug and trace events, nil disables logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// CaseSensitive disables case-insensitive path comparison.
	CaseSensitive bool `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty"`
	// Deduplicate drops repeated rules before classification.
	Deduplicate bool `json:"deduplicate,omitempty" yaml:"deduplicate,omitempty"`
}

// MatcherOptions controls matcher behavior.
type MatcherOptions struct {
	// Logger receives debug events, nil disables logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// MatchTimeout limits one regexp evaluation, zero means no limit.
	MatchTimeout time.Duration `json:"match_timeout,omitempty" yaml:"match_timeout,omitempty"`
}

// Empty reports whether the set has no exclude rules.
func (s RuleSet) Empty() bool {
	return len(s.ExcludeDirs) == 0 && len(s.ExcludeFiles) == 0
}

// Empty reports whether pattern excludes nothing.
func (p Pattern) Empty() bool {
	return p.Expr == ""
}

// String returns the expression text.
func (p Pattern) String() string {
	return p.Expr
}

// loggerOrNop returns logger or a disabled logger when nil.
func loggerOrNop(logger *zerolog.Logger) zerolog.Logger {
	if logger == nil {
		return zerolog.Nop()
	}

	return *logger
}
