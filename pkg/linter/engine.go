// Package linter runs configured rules over source files and collects
// violations.
package linter

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/cottonBuddha/SwiftLint/pkg/prefilter"
	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	"github.com/cottonBuddha/SwiftLint/pkg/source"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
	"github.com/cottonBuddha/SwiftLint/pkg/walker"
)

// Config for engine initialization.
type Config struct {
	// Rules to run. Nil means every registered rule.
	Rules []rule.Rule

	// Config is the loaded .swiftlint.yml. Nil means defaults.
	Config *rule.Config
}

// Engine applies a configured rule set to files. It is safe for
// concurrent use: linting only reads shared state.
type Engine struct {
	rules []rule.Rule
	pf    *prefilter.Prefilter
	cfg   *rule.Config
}

// New creates an Engine: disabled rules are dropped, configurable
// rules receive their settings, and the keyword prefilter is built.
func New(cfg Config) (*Engine, error) {
	conf := cfg.Config
	if conf == nil {
		conf = &rule.Config{Settings: make(map[string]rule.Setting)}
	}

	candidates := cfg.Rules
	if candidates == nil {
		candidates = rule.NewAll()
	}

	var active []rule.Rule
	for _, r := range candidates {
		if conf.IsDisabled(r.ID()) {
			continue
		}
		if c, ok := r.(rule.Configurable); ok {
			if setting, found := conf.Setting(r.ID()); found {
				if err := c.Configure(setting); err != nil {
					return nil, fmt.Errorf("configuring rule %s: %w", r.ID(), err)
				}
			}
		}
		active = append(active, r)
	}

	return &Engine{
		rules: active,
		pf:    prefilter.New(active),
		cfg:   conf,
	}, nil
}

// Rules returns the active rules, in registry order.
func (e *Engine) Rules() []rule.Rule {
	rules := make([]rule.Rule, len(e.rules))
	copy(rules, e.rules)
	return rules
}

// RuleConfig returns the configuration the engine was built with.
func (e *Engine) RuleConfig() *rule.Config {
	return e.cfg
}

// LintBytes lints raw content under the given path label.
func (e *Engine) LintBytes(path string, content []byte) []types.Violation {
	file := source.NewFile(path, content)

	var violations []types.Violation
	for _, r := range e.pf.Filter(content) {
		for _, v := range r.Check(file) {
			v.Severity = e.cfg.SeverityFor(r)
			violations = append(violations, v)
		}
	}

	sortViolations(violations)
	return violations
}

// LintFile reads and lints a file.
func (e *Engine) LintFile(path string) ([]types.Violation, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return e.LintBytes(path, content), nil
}

// LintWith lints every file yielded by the walker and returns the
// aggregated violations sorted by file and position.
func (e *Engine) LintWith(ctx context.Context, w walker.Walker) ([]types.Violation, error) {
	var mu sync.Mutex
	var violations []types.Violation

	err := w.Walk(ctx, func(path string, content []byte) error {
		found := e.LintBytes(path, content)
		if len(found) == 0 {
			return nil
		}
		mu.Lock()
		violations = append(violations, found...)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking files: %w", err)
	}

	sortViolations(violations)
	return violations, nil
}

func sortViolations(violations []types.Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Location.Offset.Start != b.Location.Offset.Start {
			return a.Location.Offset.Start < b.Location.Offset.Start
		}
		return a.RuleID < b.RuleID
	})
}
