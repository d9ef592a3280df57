// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultRulesFileName = "ignore.txt"

// ProviderOptions configures root-bound rules provider behavior.
type ProviderOptions struct {
	// Logger receives provider, compile and matcher events, nil disables logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// RulesFileName is the rules file loaded from root directory.
	// Empty value defaults to "ignore.txt".
	RulesFileName string `json:"rules_file_name,omitempty" yaml:"rules_file_name,omitempty"`
	// BaseRules are in-memory rule lines placed before file rules.
	BaseRules []string `json:"base_rules,omitempty" yaml:"base_rules,omitempty"`
	// CompileOptions controls pattern compilation.
	CompileOptions CompileOptions `json:"compile_options" yaml:"compile_options"`
	// MatcherOptions controls pattern evaluation.
	MatcherOptions MatcherOptions `json:"matcher_options" yaml:"matcher_options"`
}

// Provider loads one rules file under a root directory and evaluates paths relative to that root.
type Provider struct {
	// matcher is compiled lazily on first use.
	matcher *Matcher
	// err stores load/compile error for deterministic repeated calls.
	err error
	// logger receives load events.
	logger zerolog.Logger
	// root is absolute provider root directory path.
	root string
	// rulesFileName is rules file name inside root.
	rulesFileName string
	// baseRules are in-memory rule lines.
	baseRules []string

	// mu guards lazy load.
	mu sync.Mutex
	// compileOptions are used for the single compilation.
	compileOptions CompileOptions
	// matcherOptions are used for the compiled matcher.
	matcherOptions MatcherOptions
	// loaded reports whether matcher or err is set.
	loaded bool
}

// NewProvider creates a rules provider rooted at rootDir.
func NewProvider(rootDir string, opts ProviderOptions) (*Provider, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	rulesFileName, err := cleanRulesFileName(opts.RulesFileName)
	if err != nil {
		return nil, err
	}

	if opts.CompileOptions.Logger == nil {
		opts.CompileOptions.Logger = opts.Logger
	}

	if opts.MatcherOptions.Logger == nil {
		opts.MatcherOptions.Logger = opts.Logger
	}

	return &Provider{
		root:           absRoot,
		rulesFileName:  rulesFileName,
		baseRules:      append([]string(nil), opts.BaseRules...),
		compileOptions: opts.CompileOptions,
		matcherOptions: opts.MatcherOptions,
		logger:         loggerOrNop(opts.Logger),
	}, nil
}

// Root returns absolute provider root.
func (p *Provider) Root() string {
	return p.root
}

// Pattern returns compiled provider pattern, loading rules on first call.
func (p *Provider) Pattern() (Pattern, error) {
	m, err := p.load()
	if err != nil {
		return Pattern{}, err
	}

	return m.Pattern(), nil
}

// Excluded reports whether path relative to provider root is excluded.
func (p *Provider) Excluded(relPath string) (bool, error) {
	normalized, err := cleanRelPath(relPath)
	if err != nil {
		return false, err
	}

	m, err := p.load()
	if err != nil {
		return false, err
	}

	return m.Excluded(p.absPath(normalized))
}

// Included reports whether path relative to provider root is not excluded.
func (p *Provider) Included(relPath string) (bool, error) {
	excluded, err := p.Excluded(relPath)
	if err != nil {
		return false, err
	}

	return !excluded, nil
}

// ExcludedInDir reports exclude decisions for multiple entry names from one directory.
func (p *Provider) ExcludedInDir(relDir string, names []string) ([]bool, error) {
	normalizedDir, err := cleanRelDir(relDir)
	if err != nil {
		return nil, err
	}

	m, err := p.load()
	if err != nil {
		return nil, err
	}

	excluded := make([]bool, len(names))
	for i, name := range names {
		entry, err := cleanEntryName(name)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, name, err)
		}

		rel := entry
		if normalizedDir != "" {
			rel = normalizedDir + "/" + entry
		}

		excluded[i], err = m.Excluded(p.absPath(rel))
		if err != nil {
			return nil, err
		}
	}

	return excluded, nil
}

// load returns cached or newly compiled matcher.
func (p *Provider) load() (*Matcher, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		p.matcher, p.err = p.loadAndCompile()
		p.loaded = true
	}

	return p.matcher, p.err
}

// loadAndCompile reads rules file and compiles provider matcher.
func (p *Provider) loadAndCompile() (*Matcher, error) {
	rules, err := ParseLines(p.baseRules)
	if err != nil {
		return nil, fmt.Errorf("parse base rules: %w", err)
	}

	rulesPath := filepath.Join(p.root, p.rulesFileName)
	content, err := os.ReadFile(rulesPath)
	switch {
	case err == nil:
		fileRules, err := ParseRules(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", rulesPath, err)
		}

		p.logger.Debug().
			Str("path", rulesPath).
			Int("rules", len(fileRules)).
			Msg("loaded rules file")
		rules = append(rules, fileRules...)
	case os.IsNotExist(err):
		p.logger.Debug().Str("path", rulesPath).Msg("rules file not found")
	default:
		return nil, fmt.Errorf("read %s: %w", rulesPath, err)
	}

	pattern, err := CompileRules(rules, p.patternRoot(), p.compileOptions)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", rulesPath, err)
	}

	return NewMatcher(pattern, p.matcherOptions)
}

// patternRoot returns provider root with trailing separator.
func (p *Provider) patternRoot() string {
	if strings.HasSuffix(p.root, string(filepath.Separator)) {
		return p.root
	}

	return p.root + string(filepath.Separator)
}

// absPath joins normalized relative path to provider root.
func (p *Provider) absPath(rel string) string {
	return p.patternRoot() + filepath.FromSlash(rel)
}

// cleanRulesFileName validates and normalizes provider rules file name.
func cleanRulesFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = defaultRulesFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidRulesFileName
	}

	name = filepath.ToSlash(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidRulesFileName
	}

	return name, nil
}

// cleanRelDir normalizes and validates provider-relative directory path.
func cleanRelDir(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "." {
		return "", nil
	}

	return cleanRelPath(trimmed)
}

// cleanEntryName normalizes and validates one directory entry name.
func cleanEntryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: bad entry name %q", ErrPathOutsideRoot, raw)
	}

	return name, nil
}

// cleanRelPath normalizes and validates one provider-relative path.
func cleanRelPath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return "", ErrPathOutsideRoot
	}

	rel := toSlash(trimmed)
	if strings.HasPrefix(rel, "/") {
		return "", ErrPathOutsideRoot
	}

	rel = path.Clean(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", ErrPathOutsideRoot
	}

	return rel, nil
}
