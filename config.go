// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/skippattern

package skippattern

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config describes one rule set bound to a root path.
type Config struct {
	// Root is the literal root path prepended to every rule.
	Root string `json:"root" yaml:"root" toml:"root"`
	// RulesFiles are rules files loaded in order, relative paths resolve against the config file.
	RulesFiles []string `json:"rules_files,omitempty" yaml:"rules_files,omitempty" toml:"rules_files,omitempty"`
	// Rules are inline rule lines placed after file rules.
	Rules []string `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
	// MatchTimeout limits one regexp evaluation, e.g. "250ms".
	MatchTimeout Duration `json:"match_timeout,omitempty" yaml:"match_timeout,omitempty" toml:"match_timeout,omitempty"`
	// CaseSensitive disables case-insensitive matching.
	CaseSensitive bool `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty" toml:"case_sensitive,omitempty"`
	// Deduplicate drops repeated rules.
	Deduplicate bool `json:"deduplicate,omitempty" yaml:"deduplicate,omitempty" toml:"deduplicate,omitempty"`

	// dir is the directory of the loaded config file.
	dir string
}

// Duration is time.Duration decoded from Go duration text.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}

	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// LoadConfigFile reads config from a YAML (.yaml, .yml) or TOML (.toml) file.
func LoadConfigFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode yaml config %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode toml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfig, path)
	}

	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// LoadRules loads rules files and appends inline rules.
func (c *Config) LoadRules() ([]Rule, error) {
	paths := make([]string, len(c.RulesFiles))
	for i, p := range c.RulesFiles {
		if !filepath.IsAbs(p) && c.dir != "" {
			p = filepath.Join(c.dir, p)
		}

		paths[i] = p
	}

	fileRules, err := LoadRulesFiles(paths...)
	if err != nil {
		return nil, err
	}

	inline, err := ParseLines(c.Rules)
	if err != nil {
		return nil, fmt.Errorf("parse inline rules: %w", err)
	}

	return append(fileRules, inline...), nil
}

// Pattern compiles configured rules.
func (c *Config) Pattern(logger *zerolog.Logger) (Pattern, error) {
	rules, err := c.LoadRules()
	if err != nil {
		return Pattern{}, err
	}

	return CompileRules(rules, c.Root, CompileOptions{
		Logger:        logger,
		CaseSensitive: c.CaseSensitive,
		Deduplicate:   c.Deduplicate,
	})
}

// Matcher compiles configured rules into a ready matcher.
func (c *Config) Matcher(logger *zerolog.Logger) (*Matcher, error) {
	pattern, err := c.Pattern(logger)
	if err != nil {
		return nil, err
	}

	return NewMatcher(pattern, MatcherOptions{
		Logger:       logger,
		MatchTimeout: time.Duration(c.MatchTimeout),
	})
}
