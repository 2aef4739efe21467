package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// styles holds color formatters for human-readable output.
type styles struct {
	file     *color.Color
	position *color.Color
	warning  *color.Color
	errorSev *color.Color
	ruleID   *color.Color
	summary  *color.Color
}

// newStyles creates color formatters.
// enabled=false respects --color never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		file:     color.New(color.Bold, color.FgHiWhite),
		position: color.New(color.FgHiBlue),
		warning:  color.New(color.FgYellow),
		errorSev: color.New(color.FgHiRed),
		ruleID:   color.New(color.FgHiGreen),
		summary:  color.New(color.Bold),
	}

	if !enabled {
		s.file.DisableColor()
		s.position.DisableColor()
		s.warning.DisableColor()
		s.errorSev.DisableColor()
		s.ruleID.DisableColor()
		s.summary.DisableColor()
	}

	return s
}

// HumanReporter groups violations by file with a closing summary.
type HumanReporter struct {
	styles *styles
}

// NewHumanReporter creates a human reporter. colorEnabled controls
// ANSI output.
func NewHumanReporter(colorEnabled bool) *HumanReporter {
	return &HumanReporter{styles: newStyles(colorEnabled)}
}

// Report renders the violations grouped by file.
func (r *HumanReporter) Report(w io.Writer, violations []types.Violation) error {
	files := make(map[string]bool)
	serious := 0
	currentFile := ""

	for i := range violations {
		v := &violations[i]
		if v.FilePath != currentFile {
			currentFile = v.FilePath
			if _, err := r.styles.file.Fprintln(w, currentFile); err != nil {
				return err
			}
		}
		files[v.FilePath] = true

		sev := r.styles.warning
		if v.Severity == types.SeverityError {
			sev = r.styles.errorSev
			serious++
		}

		_, err := fmt.Fprintf(w, "  %s %s %s %s\n",
			r.styles.position.Sprintf("%d:%d", v.Location.Source.Start.Line, v.Location.Source.Start.Column),
			sev.Sprint(string(v.Severity)),
			v.Message,
			r.styles.ruleID.Sprintf("(%s)", v.RuleID),
		)
		if err != nil {
			return err
		}
	}

	fileWord := "files"
	if len(files) == 1 {
		fileWord = "file"
	}
	_, err := r.styles.summary.Fprintf(w, "Done linting! Found %d violations, %d serious in %d %s\n",
		len(violations), serious, len(files), fileWord)
	return err
}
