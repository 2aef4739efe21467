// Package rule defines the lint rule contract, the rule registry, and
// the .swiftlint.yml configuration model.
package rule

import (
	"github.com/cottonBuddha/SwiftLint/pkg/source"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// Rule checks one style concern over a source file.
type Rule interface {
	// ID is the unique snake_case identifier, e.g. "line_length".
	ID() string

	// Name is the human-readable rule name.
	Name() string

	// Description explains what the rule checks.
	Description() string

	// DefaultSeverity is the severity used when the configuration does
	// not override it.
	DefaultSeverity() types.Severity

	// Keywords are literal substrings that must appear in a file for
	// the rule to possibly fire. Empty means the rule always runs.
	Keywords() []string

	// Check returns the violations found in the file. Severity on the
	// returned violations is the rule default; the engine applies
	// configured overrides.
	Check(file *source.File) []types.Violation
}

// Configurable is implemented by rules that accept settings from the
// per-rule configuration block.
type Configurable interface {
	Configure(setting Setting) error
}
