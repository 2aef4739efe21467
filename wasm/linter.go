//go:build wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	swiftlint "github.com/cottonBuddha/SwiftLint"
	"github.com/cottonBuddha/SwiftLint/pkg/rule"
)

var (
	linters   = make(map[int]*swiftlint.Linter)
	lintersMu sync.RWMutex
	nextID    int
)

// newLinter creates a linter, optionally configured from YAML.
// JS: SwiftLintNewLinter(configYAML) -> {handle: int} or {error: string}
func newLinter(this js.Value, args []js.Value) interface{} {
	var opts []swiftlint.Option
	if len(args) > 0 && args[0].String() != "" {
		cfg, err := rule.Parse([]byte(args[0].String()))
		if err != nil {
			return map[string]interface{}{"error": "failed to parse config: " + err.Error()}
		}
		opts = append(opts, swiftlint.WithConfig(cfg))
	}

	l, err := swiftlint.New(opts...)
	if err != nil {
		return map[string]interface{}{"error": "failed to create linter: " + err.Error()}
	}

	// Register linter
	lintersMu.Lock()
	id := nextID
	nextID++
	linters[id] = l
	lintersMu.Unlock()

	return map[string]interface{}{"handle": id}
}

// lint checks a single source string.
// JS: SwiftLintLint(handle, path, content) -> JSON violations or {error: string}
func lint(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return map[string]interface{}{"error": "handle, path, and content arguments required"}
	}

	handle := args[0].Int()
	path := args[1].String()
	content := args[2].String()

	lintersMu.RLock()
	l, ok := linters[handle]
	lintersMu.RUnlock()

	if !ok {
		return map[string]interface{}{"error": "invalid linter handle"}
	}

	violations := l.LintString(path, content)
	if violations == nil {
		violations = []swiftlint.Violation{}
	}

	jsonBytes, err := json.Marshal(violations)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal violations: " + err.Error()}
	}

	return string(jsonBytes)
}

// closeLinter releases a linter handle.
// JS: SwiftLintCloseLinter(handle)
func closeLinter(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	lintersMu.Lock()
	_, ok := linters[handle]
	if ok {
		delete(linters, handle)
	}
	lintersMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid linter handle"}
	}

	return nil
}

type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"default_severity"`
}

// getRules returns the builtin rules as JSON.
// JS: SwiftLintGetRules() -> JSON rules array
func getRules(this js.Value, args []js.Value) interface{} {
	var infos []ruleInfo
	for _, r := range swiftlint.BuiltinRules() {
		infos = append(infos, ruleInfo{
			ID:          r.ID(),
			Name:        r.Name(),
			Description: r.Description(),
			Severity:    r.DefaultSeverity().String(),
		})
	}

	jsonBytes, err := json.Marshal(infos)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal rules: " + err.Error()}
	}

	return string(jsonBytes)
}
