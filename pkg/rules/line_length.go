package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	"github.com/cottonBuddha/SwiftLint/pkg/source"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

const defaultLineLength = 120

func init() {
	rule.Register(func() rule.Rule { return &LineLength{limit: defaultLineLength} })
}

// LineLength flags lines longer than the configured limit, counted in
// characters rather than bytes.
type LineLength struct {
	limit int
}

func (r *LineLength) ID() string                      { return "line_length" }
func (r *LineLength) Name() string                    { return "Line Length" }
func (r *LineLength) Description() string             { return "Lines should not span too many characters." }
func (r *LineLength) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *LineLength) Keywords() []string              { return nil }

// Configure accepts the threshold shorthand, e.g. "line_length: 140".
func (r *LineLength) Configure(setting rule.Setting) error {
	if setting.Threshold < 0 {
		return fmt.Errorf("line_length: threshold must be positive, got %d", setting.Threshold)
	}
	if setting.Threshold > 0 {
		r.limit = setting.Threshold
	}
	return nil
}

func (r *LineLength) Check(file *source.File) []types.Violation {
	var violations []types.Violation
	for n := 1; n <= file.NumLines(); n++ {
		line := file.Line(n)
		length := utf8.RuneCountInString(line)
		if length <= r.limit {
			continue
		}
		span, _ := file.LineSpan(n)
		violations = append(violations, types.Violation{
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Message:  fmt.Sprintf("Line should be %d characters or less: currently %d characters", r.limit, length),
			Severity: r.DefaultSeverity(),
			FilePath: file.Path(),
			Location: types.Location{
				Offset: span,
				Source: types.SourceSpan{
					Start: types.SourcePoint{Line: n, Column: r.limit + 1},
					End:   types.SourcePoint{Line: n, Column: length},
				},
			},
		})
	}
	return violations
}
