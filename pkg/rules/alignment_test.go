package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottonBuddha/SwiftLint/pkg/parser"
	"github.com/cottonBuddha/SwiftLint/pkg/source"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

func lintAlignment(t *testing.T, src string) []types.Violation {
	t.Helper()
	r := &VerticalParameterAlignmentOnCall{}
	return r.Check(source.NewFile("test.swift", []byte(src)))
}

// argAt builds an argument descriptor at the offset of the given
// marker in content.
func argAt(t *testing.T, content, marker string) parser.Argument {
	t.Helper()
	off := strings.Index(content, marker)
	require.GreaterOrEqual(t, off, 0, "marker %q not found", marker)
	return parser.Argument{Offset: off}
}

func TestAlignedArgumentsNotFlagged(t *testing.T) {
	src := "foo(param1: 1, param2: bar,\n" +
		"    param3: false, param4: true)\n"
	assert.Empty(t, lintAlignment(t, src))
}

func TestSingleLineCallNotFlagged(t *testing.T) {
	src := "foo(param1: 1, param2: bar, param3: false)\n"
	assert.Empty(t, lintAlignment(t, src))
}

func TestMisalignedArgumentFlagged(t *testing.T) {
	src := "foo(param1: 1, param2: bar,\n" +
		"  param3: false, param4: true)\n"

	violations := lintAlignment(t, src)
	require.Len(t, violations, 1)
	assert.Equal(t, "vertical_parameter_alignment_on_call", violations[0].RuleID)
	assert.Equal(t, 2, violations[0].Location.Source.Start.Line)
	assert.Equal(t, 3, violations[0].Location.Source.Start.Column)
}

func TestSecondArgumentOnJudgedLineNotFlagged(t *testing.T) {
	// param4 shares param3's line; only param3 is judged.
	src := "foo(param1: 1,\n" +
		"  param3: false, param4: true)\n"

	violations := lintAlignment(t, src)
	require.Len(t, violations, 1)
	off := strings.Index(src, "param3")
	assert.Equal(t, off, violations[0].Location.Offset.Start)
}

func TestMisalignedClosureArgumentFlagged(t *testing.T) {
	src := "foo(param1: 1,\n" +
		"       param2: { _ in })\n"

	violations := lintAlignment(t, src)
	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].Location.Source.Start.Line)
	assert.Equal(t, 8, violations[0].Location.Source.Start.Column)
}

func TestTrailingClosureExempt(t *testing.T) {
	src := "foo(param1: 1,\n" +
		"    param2: 2)\n" +
		"{ _ in }\n"
	assert.Empty(t, lintAlignment(t, src))
}

func TestTrailingClosureSameLineNotFlagged(t *testing.T) {
	src := "foo(param1: 1) { _ in }\n"
	assert.Empty(t, lintAlignment(t, src))
}

func TestMultilineClosureResetsReference(t *testing.T) {
	src := "foo(param1: 1, param2: { x in\n" +
		"    x\n" +
		"}, param3: 3,\n" +
		"   param4: 4)\n"
	assert.Empty(t, lintAlignment(t, src))
}

func TestMisalignedAfterMultilineClosureReset(t *testing.T) {
	// param3 resets the reference column; param4 must align with
	// param3, not with param1.
	src := "foo(param1: 1, param2: { x in\n" +
		"    x\n" +
		"}, param3: 3,\n" +
		"     param4: 4)\n"

	violations := lintAlignment(t, src)
	require.Len(t, violations, 1)
	off := strings.Index(src, "param4")
	assert.Equal(t, off, violations[0].Location.Offset.Start)
}

func TestNestedCallArgumentsJudgedIndependently(t *testing.T) {
	src := "outer(a: inner(x: 1,\n" +
		"               y: 2),\n" +
		"      b: 3)\n"
	assert.Empty(t, lintAlignment(t, src))
}

// Descriptor-level tests drive checkCall directly, covering cases the
// scanner would normalize away.

func TestCheckCallSingleArgument(t *testing.T) {
	content := "foo(param1: 1)"
	file := source.NewFile("test.swift", []byte(content))
	call := parser.Call{
		Offset:    0,
		Length:    len(content),
		Arguments: []parser.Argument{argAt(t, content, "param1")},
	}
	assert.Empty(t, checkCall(call, file))
}

func TestCheckCallAlignedWithoutSeparators(t *testing.T) {
	content := "foo(param1: 1, param2: bar\n    param3: false, param4: true)"
	file := source.NewFile("test.swift", []byte(content))
	call := parser.Call{
		Offset: 0,
		Length: len(content),
		Arguments: []parser.Argument{
			argAt(t, content, "param1"),
			argAt(t, content, "param2"),
			argAt(t, content, "param3"),
			argAt(t, content, "param4"),
		},
	}
	assert.Empty(t, checkCall(call, file))
}

func TestCheckCallMisalignedWithoutSeparators(t *testing.T) {
	content := "foo(param1: 1, param2: bar\n  param3: false, param4: true)"
	file := source.NewFile("test.swift", []byte(content))
	call := parser.Call{
		Offset: 0,
		Length: len(content),
		Arguments: []parser.Argument{
			argAt(t, content, "param1"),
			argAt(t, content, "param2"),
			argAt(t, content, "param3"),
			argAt(t, content, "param4"),
		},
	}

	flagged := checkCall(call, file)
	require.Len(t, flagged, 1)
	assert.Equal(t, strings.Index(content, "param3"), flagged[0])
}

func TestCheckCallUnresolvableFirstArgument(t *testing.T) {
	content := "foo(a: 1,\n  b: 2)"
	file := source.NewFile("test.swift", []byte(content))
	call := parser.Call{
		Offset: 0,
		Length: len(content),
		Arguments: []parser.Argument{
			{Offset: -1},
			argAt(t, content, "b: 2"),
		},
	}
	assert.Empty(t, checkCall(call, file))
}

func TestCheckCallUnresolvableArgumentSkipped(t *testing.T) {
	content := "foo(a: 1,\n  b: 2)"
	file := source.NewFile("test.swift", []byte(content))
	call := parser.Call{
		Offset: 0,
		Length: len(content),
		Arguments: []parser.Argument{
			argAt(t, content, "a: 1"),
			{Offset: len(content) + 5},
			argAt(t, content, "b: 2"),
		},
	}

	flagged := checkCall(call, file)
	require.Len(t, flagged, 1)
	assert.Equal(t, strings.Index(content, "b: 2"), flagged[0])
}

func TestIsClosure(t *testing.T) {
	content := []byte("foo(a: { _ in }, b: 1)")
	bodyStart := strings.Index(string(content), "{")
	body := &types.OffsetSpan{Start: bodyStart, End: bodyStart + 8}

	assert.True(t, isClosure(parser.Argument{Offset: 4, Body: body}, content))
	assert.False(t, isClosure(parser.Argument{Offset: 4}, content))
	assert.False(t, isClosure(parser.Argument{Offset: 4, Body: &types.OffsetSpan{Start: -1, End: 3}}, content))

	// Non-brace text at the span start is not a closure.
	assert.False(t, isClosure(parser.Argument{Offset: 17, Body: &types.OffsetSpan{Start: 20, End: 21}}, content))
}

func TestIsClosureLeadingWhitespaceAccepted(t *testing.T) {
	content := []byte("foo(a:   \n\t{ _ in })")
	body := &types.OffsetSpan{Start: 6, End: len(content) - 1}
	assert.True(t, isClosure(parser.Argument{Offset: 4, Body: body}, content))
}

func TestIsMultilineClosure(t *testing.T) {
	content := "foo(a: { x in\n    x\n})"
	file := source.NewFile("test.swift", []byte(content))
	start := strings.Index(content, "{")
	end := strings.Index(content, "}") + 1

	multi := parser.Argument{Offset: 4, Body: &types.OffsetSpan{Start: start, End: end}}
	assert.True(t, isMultilineClosure(multi, file))

	single := parser.Argument{Offset: 4, Body: &types.OffsetSpan{Start: start, End: start + 5}}
	assert.False(t, isMultilineClosure(single, file))

	assert.False(t, isMultilineClosure(parser.Argument{Offset: 4}, file))

	unresolvable := parser.Argument{Offset: 4, Body: &types.OffsetSpan{Start: start, End: len(content) + 10}}
	assert.False(t, isMultilineClosure(unresolvable, file))
}

func TestIsTrailingClosure(t *testing.T) {
	withTrailing := []byte("foo(a: 1) { _ in }")
	call := parser.Call{Offset: 0, Length: len(withTrailing)}
	assert.True(t, isTrailingClosure(call, withTrailing))

	plain := []byte("foo(a: 1)")
	call = parser.Call{Offset: 0, Length: len(plain)}
	assert.False(t, isTrailingClosure(call, plain))

	// Out-of-range call spans degrade to false.
	call = parser.Call{Offset: 0, Length: len(plain) + 1}
	assert.False(t, isTrailingClosure(call, plain))
	assert.False(t, isTrailingClosure(parser.Call{}, plain))
}
