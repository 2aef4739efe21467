package rules

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/cottonBuddha/SwiftLint/pkg/source"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// regexRule is a rule driven by a single pattern over file content.
// Patterns are compiled in RE2 mode first (no backtracking) with a
// fallback to Perl-compatible mode for features RE2 rejects, and run
// with a match timeout to bound catastrophic backtracking.
type regexRule struct {
	id       string
	name     string
	desc     string
	severity types.Severity
	keywords []string
	message  string

	re *regexp2.Regexp
}

func newRegexRule(id, name, desc, pattern, message string, severity types.Severity, keywords []string) *regexRule {
	re, err := regexp2.Compile(pattern, regexp2.RE2|regexp2.Multiline)
	if err != nil {
		re, err = regexp2.Compile(pattern, regexp2.Multiline)
		if err != nil {
			panic(fmt.Sprintf("rules: invalid pattern for %s: %v", id, err))
		}
	}
	re.MatchTimeout = 5 * time.Second

	return &regexRule{
		id:       id,
		name:     name,
		desc:     desc,
		severity: severity,
		keywords: keywords,
		message:  message,
		re:       re,
	}
}

func (r *regexRule) ID() string                      { return r.id }
func (r *regexRule) Name() string                    { return r.name }
func (r *regexRule) Description() string             { return r.desc }
func (r *regexRule) DefaultSeverity() types.Severity { return r.severity }
func (r *regexRule) Keywords() []string              { return r.keywords }

func (r *regexRule) Check(file *source.File) []types.Violation {
	content := string(file.Content())

	var violations []types.Violation
	m, err := r.re.FindStringMatch(content)
	for err == nil && m != nil {
		start := m.Index
		end := start + m.Length

		startPt, ok := file.Resolve(start)
		if !ok {
			break
		}
		endPt, ok := file.Resolve(end)
		if !ok {
			break
		}

		violations = append(violations, types.Violation{
			RuleID:   r.id,
			RuleName: r.name,
			Message:  r.message,
			Severity: r.severity,
			FilePath: file.Path(),
			Location: types.Location{
				Offset: types.OffsetSpan{Start: start, End: end},
				Source: types.SourceSpan{Start: startPt, End: endPt},
			},
		})

		m, err = r.re.FindNextMatch(m)
	}
	return violations
}
