// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

// Classify partitions rules into exclude/include directory/file sets.
//
// Input order is preserved inside every set.
func Classify(rules []Rule) RuleSet {
	var set RuleSet
	for _, rule := range rules {
		switch {
		case rule.Negated && rule.Dir:
			set.IncludeDirs = append(set.IncludeDirs, rule.Path)
		case rule.Negated:
			set.IncludeFiles = append(set.IncludeFiles, rule.Path)
		case rule.Dir:
			set.ExcludeDirs = append(set.ExcludeDirs, rule.Path)
		default:
			set.ExcludeFiles = append(set.ExcludeFiles, rule.Path)
		}
	}

	return set
}

// ruleKey identifies a rule for duplicate detection.
type ruleKey struct {
	path    string
	dir     bool
	negated bool
}

// dedupeRules drops repeated rules keeping first occurrence.
func dedupeRules(rules []Rule, caseSensitive bool) []Rule {
	seen := make(map[ruleKey]struct{}, len(rules))
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		key := ruleKey{path: rule.Path, dir: rule.Dir, negated: rule.Negated}
		if !caseSensitive {
			key.path = foldPath(key.path)
		}

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, rule)
	}

	return out
}
