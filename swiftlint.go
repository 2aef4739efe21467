// Package swiftlint provides a Swift source linter as a library.
//
// The linter runs a configurable set of rules over Swift files and
// reports violations with file, line, and column positions.
//
// # Basic Usage
//
// Create a linter with builtin rules and lint content:
//
//	linter, err := swiftlint.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	violations := linter.LintString("Sources/App.swift", source)
//	for _, v := range violations {
//	    fmt.Printf("%s:%d:%d: %s\n", v.FilePath, v.Location.Source.Start.Line, v.Location.Source.Start.Column, v.Message)
//	}
//
// # With Configuration
//
// Load a .swiftlint.yml to disable rules or override severities:
//
//	linter, err := swiftlint.New(swiftlint.WithConfigFile(".swiftlint.yml"))
package swiftlint

import (
	"context"
	"fmt"

	"github.com/cottonBuddha/SwiftLint/pkg/linter"
	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	_ "github.com/cottonBuddha/SwiftLint/pkg/rules"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
	"github.com/cottonBuddha/SwiftLint/pkg/walker"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/cottonBuddha/SwiftLint" without subpackages.
type (
	// Violation is a single reported lint finding.
	Violation = types.Violation

	// Location describes where a violation was found within a file.
	Location = types.Location

	// Severity is the reported level of a violation.
	Severity = types.Severity

	// Rule is the interface every lint rule implements.
	Rule = rule.Rule

	// Config is a parsed .swiftlint.yml.
	Config = rule.Config
)

// Re-export severity constants.
const (
	SeverityWarning = types.SeverityWarning
	SeverityError   = types.SeverityError
)

// Linter runs lint rules over Swift sources.
type Linter struct {
	engine *linter.Engine
}

// linterConfig holds linter construction options.
type linterConfig struct {
	rules      []rule.Rule
	config     *rule.Config
	configFile string
}

// Option configures a Linter.
type Option func(*linterConfig)

// WithRules uses a custom rule set instead of the builtin rules.
func WithRules(rules []Rule) Option {
	return func(c *linterConfig) {
		c.rules = rules
	}
}

// WithConfig uses an already parsed configuration.
func WithConfig(config *Config) Option {
	return func(c *linterConfig) {
		c.config = config
	}
}

// WithConfigFile loads configuration from a YAML file at construction.
func WithConfigFile(path string) Option {
	return func(c *linterConfig) {
		c.configFile = path
	}
}

// New creates a Linter with the given options.
//
// By default the linter runs every registered builtin rule with its
// default severity and no configuration file.
func New(opts ...Option) (*Linter, error) {
	config := &linterConfig{}
	for _, opt := range opts {
		opt(config)
	}

	if config.configFile != "" {
		loaded, err := rule.Load(config.configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		config.config = loaded
	}

	engine, err := linter.New(linter.Config{
		Rules:  config.rules,
		Config: config.config,
	})
	if err != nil {
		return nil, err
	}

	return &Linter{engine: engine}, nil
}

// LintString lints source text under the given path label.
func (l *Linter) LintString(path, content string) []Violation {
	return l.engine.LintBytes(path, []byte(content))
}

// LintBytes lints raw source bytes under the given path label.
func (l *Linter) LintBytes(path string, content []byte) []Violation {
	return l.engine.LintBytes(path, content)
}

// LintFile reads and lints a file.
func (l *Linter) LintFile(path string) ([]Violation, error) {
	return l.engine.LintFile(path)
}

// LintDir lints every Swift file under the root directory.
func (l *Linter) LintDir(ctx context.Context, root string) ([]Violation, error) {
	cfg := walker.Config{Root: root}
	if l.engine.RuleConfig() != nil {
		cfg.Excluded = l.engine.RuleConfig().Excluded
	}
	return l.engine.LintWith(ctx, walker.NewFilesystemWalker(cfg))
}

// LintWith lints every file yielded by the walker.
func (l *Linter) LintWith(ctx context.Context, w walker.Walker) ([]Violation, error) {
	return l.engine.LintWith(ctx, w)
}

// Rules returns the active rules.
func (l *Linter) Rules() []Rule {
	return l.engine.Rules()
}

// BuiltinRules returns fresh instances of every registered rule,
// sorted by identifier. Useful for inspecting available rules or
// building a subset for WithRules.
func BuiltinRules() []Rule {
	return rule.NewAll()
}
