package report

import (
	"fmt"
	"io"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// XcodeReporter emits one line per violation in the format Xcode
// parses into inline build issues:
//
//	path:line:column: severity: message (rule_id)
type XcodeReporter struct{}

// Report renders the violations.
func (r *XcodeReporter) Report(w io.Writer, violations []types.Violation) error {
	for i := range violations {
		v := &violations[i]
		_, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s (%s)\n",
			v.FilePath,
			v.Location.Source.Start.Line,
			v.Location.Source.Start.Column,
			v.Severity,
			v.Message,
			v.RuleID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
