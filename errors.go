// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"errors"
	"fmt"
)

// Sentinel errors for skippattern operations.
var (
	// ErrInvalidRule indicates malformed rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPattern indicates an expression the regexp engine rejected.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidRulesFileName indicates invalid provider rules file name.
	ErrInvalidRulesFileName = errors.New("invalid rules file name")
	// ErrNilProvider indicates a nil Provider receiver.
	ErrNilProvider = errors.New("provider is nil")
	// ErrPathOutsideRoot indicates path traversal or non-relative input path.
	ErrPathOutsideRoot = errors.New("path is outside provider root")
	// ErrUnsupportedConfig indicates config file with unknown format.
	ErrUnsupportedConfig = errors.New("unsupported config format")
)

// RuleError reports one malformed rule line.
type RuleError struct {
	// Text is the original line.
	Text string
	// Reason describes why the line was rejected.
	Reason string
	// Line is the 1-based line number.
	Line int
}

// Error implements error.
func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s (#%d: %q)", ErrInvalidRule, e.Reason, e.Line, e.Text)
}

// Unwrap makes errors.Is(err, ErrInvalidRule) work.
func (e *RuleError) Unwrap() error {
	return ErrInvalidRule
}
