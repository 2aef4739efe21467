package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cottonBuddha/SwiftLint/pkg/baseline"
	"github.com/cottonBuddha/SwiftLint/pkg/linter"
	_ "github.com/cottonBuddha/SwiftLint/pkg/rules"
	"github.com/cottonBuddha/SwiftLint/pkg/walker"
)

var baselinePath string

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage the violation baseline",
	Long: `Commands for recording and inspecting the violation baseline.

A baseline captures the current violations so that subsequent lint runs
with --baseline only report new ones.`,
}

var baselineRecordCmd = &cobra.Command{
	Use:   "record [path]",
	Short: "Record current violations as the baseline",
	Long:  "Lint the target and store every violation in the baseline database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBaselineRecord,
}

var baselineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List baselined violations",
	RunE:  runBaselineList,
}

func init() {
	baselineCmd.AddCommand(baselineRecordCmd)
	baselineCmd.AddCommand(baselineListCmd)
	baselineCmd.PersistentFlags().StringVar(&baselinePath, "baseline", "swiftlint-baseline.db", "Baseline database path")
}

func runBaselineRecord(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	engine, err := linter.New(linter.Config{Config: cfg})
	if err != nil {
		return fmt.Errorf("creating linter: %w", err)
	}

	w := walker.NewFilesystemWalker(walker.Config{
		Root:     root,
		Excluded: cfg.Excluded,
	})
	violations, err := engine.LintWith(cmd.Context(), w)
	if err != nil {
		return fmt.Errorf("linting: %w", err)
	}

	store, err := baseline.New(baseline.Config{Path: baselinePath})
	if err != nil {
		return fmt.Errorf("opening baseline: %w", err)
	}
	defer store.Close()

	for i := range violations {
		if err := store.Add(&violations[i]); err != nil {
			return fmt.Errorf("recording violation: %w", err)
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d violations in %s\n", len(violations), baselinePath)
	}
	return nil
}

func runBaselineList(cmd *cobra.Command, args []string) error {
	store, err := baseline.New(baseline.Config{Path: baselinePath})
	if err != nil {
		return fmt.Errorf("opening baseline: %w", err)
	}
	defer store.Close()

	violations, err := store.All()
	if err != nil {
		return fmt.Errorf("reading baseline: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, v := range violations {
		fmt.Fprintf(out, "%s:%d:%d: %s: %s (%s)\n",
			v.FilePath, v.Location.Source.Start.Line, v.Location.Source.Start.Column,
			v.Severity, v.Message, v.RuleID)
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d baselined violations\n", len(violations))
	}
	return nil
}
