package report

import (
	"encoding/json"
	"io"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// JSONReporter emits the violations as an indented JSON array.
type JSONReporter struct{}

// Report renders the violations.
func (r *JSONReporter) Report(w io.Writer, violations []types.Violation) error {
	if violations == nil {
		violations = []types.Violation{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(violations)
}
