// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

/*
Package skippattern compiles literal gitignore-like skip rules into one anchored regular expression.

The compiled expression is meant to be built once per rule set and then evaluated
against absolute paths under a root directory, the way deployment and packaging
tools evaluate skip directives.

Rule syntax:
  - one literal path per line, relative to root (a leading slash is ignored)
  - "#" starts a comment, there is no escape for it
  - "!" negates a rule, making it an exception to an excluded directory
  - trailing "/" marks a directory rule
  - "/" and "\" are equivalent separators
  - no wildcards

Basic flow:
  - parse rules (`ParseRules` / `ParseLines` / `LoadRulesFile`)
  - compile expression (`Compile` / `CompileRules`)
  - build matcher from expression (`NewMatcher`)
  - ask for decision (`Excluded` / `Included`)

Matcher walks every ancestor directory of a candidate path before testing the
path itself, and directory exceptions rely on that walk. Callers that evaluate
`Pattern.Expr` with their own engine must do the same walk, enable
case-insensitive matching when `Pattern.IgnoreCase` is set, and use an engine
with negative lookahead support.

For a root directory with a rules file, use `Provider`.
*/
package skippattern
