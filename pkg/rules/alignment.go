package rules

import (
	"bytes"
	"regexp"

	"github.com/cottonBuddha/SwiftLint/pkg/parser"
	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	"github.com/cottonBuddha/SwiftLint/pkg/source"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

func init() {
	rule.Register(func() rule.Rule { return &VerticalParameterAlignmentOnCall{} })
}

// VerticalParameterAlignmentOnCall checks that arguments of a
// multi-line call start at the same column as the first argument.
//
// Arguments continuing on the first argument's line are never judged,
// only the first argument on each subsequent line is. A multi-line
// closure argument resets the reference column for everything after
// it, and a trailing closure is exempt entirely.
type VerticalParameterAlignmentOnCall struct{}

func (r *VerticalParameterAlignmentOnCall) ID() string { return "vertical_parameter_alignment_on_call" }

func (r *VerticalParameterAlignmentOnCall) Name() string {
	return "Vertical Parameter Alignment On Call"
}

func (r *VerticalParameterAlignmentOnCall) Description() string {
	return "Function parameters should be aligned vertically if they're in multiple lines in a method call."
}

func (r *VerticalParameterAlignmentOnCall) DefaultSeverity() types.Severity {
	return types.SeverityWarning
}

func (r *VerticalParameterAlignmentOnCall) Keywords() []string { return nil }

func (r *VerticalParameterAlignmentOnCall) Check(file *source.File) []types.Violation {
	content := file.Content()

	var violations []types.Violation
	for _, call := range parser.ExtractCalls(content) {
		for _, offset := range checkCall(call, file) {
			pt, ok := file.Resolve(offset)
			if !ok {
				continue
			}
			violations = append(violations, types.Violation{
				RuleID:   r.ID(),
				RuleName: r.Name(),
				Message:  r.Description(),
				Severity: r.DefaultSeverity(),
				FilePath: file.Path(),
				Location: types.Location{
					Offset: types.OffsetSpan{Start: offset, End: offset},
					Source: types.SourceSpan{Start: pt, End: pt},
				},
			})
		}
	}
	return violations
}

// closureStartRe matches a closure literal at the start of a body
// span: any leading whitespace, then an opening brace.
var closureStartRe = regexp.MustCompile(`^\s*\{`)

// isClosure reports whether the argument's value is a closure literal.
// Conservative: no body span, or a span not starting with "{", is not
// a closure.
func isClosure(arg parser.Argument, content []byte) bool {
	if arg.Body == nil {
		return false
	}
	if arg.Body.Start < 0 || arg.Body.Start >= len(content) {
		return false
	}
	return closureStartRe.Match(content[arg.Body.Start:])
}

// isMultilineClosure reports whether the argument's closure body spans
// more than one line. Any resolution failure means false.
func isMultilineClosure(arg parser.Argument, file *source.File) bool {
	if arg.Body == nil {
		return false
	}
	start, ok := file.Resolve(arg.Body.Start)
	if !ok {
		return false
	}
	end, ok := file.Resolve(arg.Body.End)
	if !ok {
		return false
	}
	return start.Line != end.Line
}

// isTrailingClosure reports whether the call uses trailing-closure
// syntax. Trailing closures live outside the parentheses, so the
// call's source slice does not end with ')'. This is a textual proxy
// rather than a structural check; it is kept because the structural
// information is not available from the scanner.
func isTrailingClosure(call parser.Call, content []byte) bool {
	if call.Offset < 0 || call.End() > len(content) || call.Length == 0 {
		return false
	}
	return !bytes.HasSuffix(content[call.Offset:call.End()], []byte(")"))
}

// alignmentState is the accumulator threaded through one call's walk.
type alignmentState struct {
	ref                  types.SourcePoint
	visited              map[int]bool
	prevMultilineClosure bool
}

// step judges one argument and reports whether it should be flagged.
// The carry-over flag is recomputed on every path, including skips.
func (s *alignmentState) step(pt types.SourcePoint, resolved, closureArg, multilineClosure, trailingExempt bool) bool {
	defer func() { s.prevMultilineClosure = closureArg && multilineClosure }()

	if !resolved || pt.Line == s.ref.Line {
		return false
	}

	firstVisit := !s.visited[pt.Line]
	s.visited[pt.Line] = true

	// Lines are judged once, by their first argument.
	if pt.Column == s.ref.Column || !firstVisit {
		return false
	}

	// A multi-line closure legitimately shifts what "aligned" means
	// for everything after it.
	if s.prevMultilineClosure {
		s.ref = pt
		return false
	}

	if trailingExempt {
		return false
	}
	return true
}

// checkCall walks the call's arguments once and returns the byte
// offsets of misaligned ones.
func checkCall(call parser.Call, file *source.File) []int {
	args := call.Arguments
	if len(args) < 2 {
		return nil
	}
	ref, ok := file.Resolve(args[0].Offset)
	if !ok {
		return nil
	}

	content := file.Content()
	state := &alignmentState{ref: ref, visited: make(map[int]bool)}

	var flagged []int
	for i := 1; i < len(args); i++ {
		arg := args[i]
		closureArg := isClosure(arg, content)
		pt, resolved := file.Resolve(arg.Offset)
		exempt := i == len(args)-1 && closureArg && isTrailingClosure(call, content)

		if state.step(pt, resolved, closureArg, isMultilineClosure(arg, file), exempt) {
			flagged = append(flagged, arg.Offset)
		}
	}
	return flagged
}
