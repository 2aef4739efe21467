// Package report renders violations for humans and machines.
package report

import (
	"fmt"
	"io"

	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// Reporter renders a set of violations to a writer.
type Reporter interface {
	Report(w io.Writer, violations []types.Violation) error
}

// Options shared across reporter implementations.
type Options struct {
	// Color enables ANSI colors (human reporter only).
	Color bool

	// Rules provides rule metadata for formats that embed it (sarif).
	Rules []rule.Rule
}

// New creates a reporter for the given format: "xcode", "human",
// "json", or "sarif".
func New(format string, opts Options) (Reporter, error) {
	switch format {
	case "xcode":
		return &XcodeReporter{}, nil
	case "human":
		return NewHumanReporter(opts.Color), nil
	case "json":
		return &JSONReporter{}, nil
	case "sarif":
		return &SARIFReporter{rules: opts.Rules}, nil
	default:
		return nil, fmt.Errorf("unknown reporter: %s", format)
	}
}
