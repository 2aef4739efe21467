package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	"github.com/cottonBuddha/SwiftLint/pkg/source"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

func checkRule(t *testing.T, id, src string) []types.Violation {
	t.Helper()
	r, ok := rule.New(id)
	require.True(t, ok, "rule %s not registered", id)
	return r.Check(source.NewFile("test.swift", []byte(src)))
}

func TestBuiltinRulesRegistered(t *testing.T) {
	want := []string{
		"force_cast",
		"force_try",
		"line_length",
		"todo",
		"trailing_whitespace",
		"vertical_parameter_alignment_on_call",
	}
	var got []string
	for _, r := range rule.NewAll() {
		got = append(got, r.ID())
	}
	for _, id := range want {
		assert.Contains(t, got, id)
	}
}

func TestTrailingWhitespace(t *testing.T) {
	violations := checkRule(t, "trailing_whitespace", "let a = 1   \nlet b = 2\nlet c = 3\t\n")
	require.Len(t, violations, 2)
	assert.Equal(t, 1, violations[0].Location.Source.Start.Line)
	assert.Equal(t, 3, violations[1].Location.Source.Start.Line)
}

func TestForceCast(t *testing.T) {
	violations := checkRule(t, "force_cast", "let x = y as! Int\nlet z = y as? Int\n")
	require.Len(t, violations, 1)
	assert.Equal(t, types.SeverityError, violations[0].Severity)
	assert.Equal(t, 1, violations[0].Location.Source.Start.Line)
}

func TestForceTry(t *testing.T) {
	violations := checkRule(t, "force_try", "let x = try! decode()\nlet y = try? decode()\nlet z = try decode()\n")
	require.Len(t, violations, 1)
	assert.Equal(t, 1, violations[0].Location.Source.Start.Line)
}

func TestTodo(t *testing.T) {
	src := "// TODO: fix this\n// FIXME: and this\n// NOTE: but not this\n"
	violations := checkRule(t, "todo", src)
	require.Len(t, violations, 2)
	assert.Equal(t, types.SeverityWarning, violations[0].Severity)
}

func TestLineLengthDefault(t *testing.T) {
	long := strings.Repeat("a", 130)
	violations := checkRule(t, "line_length", "let ok = 1\n"+long+"\n")
	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].Location.Source.Start.Line)
	assert.Contains(t, violations[0].Message, "120 characters or less")
	assert.Contains(t, violations[0].Message, "130 characters")
}

func TestLineLengthConfigured(t *testing.T) {
	r, ok := rule.New("line_length")
	require.True(t, ok)

	configurable, ok := r.(rule.Configurable)
	require.True(t, ok)
	require.NoError(t, configurable.Configure(rule.Setting{Threshold: 40}))

	long := strings.Repeat("b", 50)
	violations := r.Check(source.NewFile("test.swift", []byte(long+"\n")))
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "40 characters or less")
}

func TestLineLengthCountsRunesNotBytes(t *testing.T) {
	// 60 two-byte runes: 120 bytes but only 60 characters.
	src := strings.Repeat("ü", 60) + "\n"
	violations := checkRule(t, "line_length", src)
	assert.Empty(t, violations)
}

func TestLineLengthNegativeThresholdRejected(t *testing.T) {
	r, _ := rule.New("line_length")
	err := r.(rule.Configurable).Configure(rule.Setting{Threshold: -5})
	require.Error(t, err)
}
