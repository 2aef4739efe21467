package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLintFlags restores lint flag defaults between tests.
func resetLintFlags() {
	lintConfigPath = ""
	lintReporter = "xcode"
	lintBaselinePath = ""
	lintGit = false
	lintStrict = false
	lintColor = "auto"
	lintMaxFileSize = 10 * 1024 * 1024
	lintIncludeHidden = false
	quiet = true
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, &buf
}

func writeSwift(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunLintCleanTree(t *testing.T) {
	resetLintFlags()
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "let x = 1\n")

	cmd, buf := newTestCmd()
	err := runLint(cmd, []string{dir})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRunLintReportsViolations(t *testing.T) {
	resetLintFlags()
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "validate(name: name,\n           age: age)\n")

	cmd, buf := newTestCmd()
	err := runLint(cmd, []string{dir})
	require.NoError(t, err) // warnings alone do not fail the run

	output := buf.String()
	assert.Contains(t, output, "App.swift:2:12: warning:")
	assert.Contains(t, output, "(vertical_parameter_alignment_on_call)")
}

func TestRunLintStrictFailsOnWarnings(t *testing.T) {
	resetLintFlags()
	lintStrict = true
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "// TODO: later\n")

	cmd, _ := newTestCmd()
	err := runLint(cmd, []string{dir})
	assert.ErrorIs(t, err, errViolationsFound)
}

func TestRunLintFailsOnErrors(t *testing.T) {
	resetLintFlags()
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "let x = y as! Int\n")

	cmd, _ := newTestCmd()
	err := runLint(cmd, []string{dir})
	assert.ErrorIs(t, err, errViolationsFound)
}

func TestRunLintMissingTarget(t *testing.T) {
	resetLintFlags()

	cmd, _ := newTestCmd()
	err := runLint(cmd, []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target does not exist")
}

func TestRunLintHonorsConfigFile(t *testing.T) {
	resetLintFlags()
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "// TODO: later\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".swiftlint.yml"),
		[]byte("disabled_rules:\n  - todo\n"), 0o644))

	cmd, buf := newTestCmd()
	err := runLint(cmd, []string{dir})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRunLintJSONReporter(t *testing.T) {
	resetLintFlags()
	lintReporter = "json"
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "// TODO: later\n")

	cmd, buf := newTestCmd()
	err := runLint(cmd, []string{dir})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "todo", decoded[0]["rule_id"])
}

func TestRunLintUnknownReporter(t *testing.T) {
	resetLintFlags()
	lintReporter = "teamcity"
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "let x = 1\n")

	cmd, _ := newTestCmd()
	err := runLint(cmd, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reporter")
}

func TestRunLintBaselineSuppression(t *testing.T) {
	resetLintFlags()
	dir := t.TempDir()
	writeSwift(t, dir, "App.swift", "// TODO: later\n")

	dbPath := filepath.Join(t.TempDir(), "baseline.db")

	// Record the current violations.
	baselinePath = dbPath
	cmd, _ := newTestCmd()
	require.NoError(t, runBaselineRecord(cmd, []string{dir}))

	// A lint against the baseline reports nothing.
	lintBaselinePath = dbPath
	cmd, buf := newTestCmd()
	require.NoError(t, runLint(cmd, []string{dir}))
	assert.Empty(t, buf.String())

	// A new violation still shows up.
	writeSwift(t, dir, "New.swift", "// FIXME: new\n")
	cmd, buf = newTestCmd()
	require.NoError(t, runLint(cmd, []string{dir}))
	assert.Contains(t, buf.String(), "New.swift")
	assert.NotContains(t, buf.String(), "App.swift")
}
