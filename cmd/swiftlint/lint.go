package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cottonBuddha/SwiftLint/pkg/baseline"
	"github.com/cottonBuddha/SwiftLint/pkg/linter"
	"github.com/cottonBuddha/SwiftLint/pkg/report"
	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	_ "github.com/cottonBuddha/SwiftLint/pkg/rules"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
	"github.com/cottonBuddha/SwiftLint/pkg/walker"
)

// errViolationsFound signals a completed lint that found violations.
// main translates it into a distinct exit code.
var errViolationsFound = errors.New("violations found")

var (
	lintConfigPath    string
	lintReporter      string
	lintBaselinePath  string
	lintGit           bool
	lintStrict        bool
	lintColor         string
	lintMaxFileSize   int64
	lintIncludeHidden bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [path]",
	Short: "Lint Swift files",
	Long:  "Lint the Swift files under a directory (default: current directory) and report violations",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().StringVar(&lintConfigPath, "config", "", "Path to configuration file (default: .swiftlint.yml in the linted directory)")
	lintCmd.Flags().StringVar(&lintReporter, "reporter", "xcode", "Output format: xcode, human, json, sarif")
	lintCmd.Flags().StringVar(&lintBaselinePath, "baseline", "", "Baseline database; suppress violations recorded in it")
	lintCmd.Flags().BoolVar(&lintGit, "git", false, "Lint only files tracked by git at HEAD")
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "Exit non-zero on warnings, not just errors")
	lintCmd.Flags().StringVar(&lintColor, "color", "auto", "Colorize output: auto, always, never")
	lintCmd.Flags().Int64Var(&lintMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to lint (bytes)")
	lintCmd.Flags().BoolVar(&lintIncludeHidden, "include-hidden", false, "Include hidden files and directories")
}

func runLint(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("target does not exist: %s", root)
	}

	// Load configuration
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create engine
	engine, err := linter.New(linter.Config{Config: cfg})
	if err != nil {
		return fmt.Errorf("creating linter: %w", err)
	}

	// Create walker
	walkerConfig := walker.Config{
		Root:          root,
		Excluded:      cfg.Excluded,
		IncludeHidden: lintIncludeHidden,
		MaxFileSize:   lintMaxFileSize,
	}
	var w walker.Walker
	if lintGit {
		w = walker.NewGitWalker(walkerConfig)
	} else {
		w = walker.NewFilesystemWalker(walkerConfig)
	}

	// Lint
	violations, err := engine.LintWith(cmd.Context(), w)
	if err != nil {
		return fmt.Errorf("linting: %w", err)
	}

	// Drop violations already recorded in the baseline
	if lintBaselinePath != "" {
		violations, err = filterBaseline(violations)
		if err != nil {
			return err
		}
	}

	// Report
	reporter, err := report.New(lintReporter, report.Options{
		Color: colorEnabled(cmd),
		Rules: engine.Rules(),
	})
	if err != nil {
		return err
	}
	if err := reporter.Report(cmd.OutOrStdout(), violations); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	// Summary goes to stderr for machine formats to keep stdout parseable.
	// The human reporter prints its own summary.
	if !quiet && lintReporter != "human" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Done linting! Found %d violations, %d serious in %d file(s)\n",
			len(violations), countSerious(violations), countFiles(violations))
	}

	if len(violations) > 0 && (lintStrict || countSerious(violations) > 0) {
		return errViolationsFound
	}
	return nil
}

func loadConfig(root string) (*rule.Config, error) {
	if lintConfigPath != "" {
		return rule.Load(lintConfigPath)
	}
	return rule.LoadDefault(root)
}

func filterBaseline(violations []types.Violation) ([]types.Violation, error) {
	store, err := baseline.New(baseline.Config{Path: lintBaselinePath})
	if err != nil {
		return nil, fmt.Errorf("opening baseline: %w", err)
	}
	defer store.Close()

	kept, err := baseline.Filter(store, violations)
	if err != nil {
		return nil, fmt.Errorf("filtering baseline: %w", err)
	}
	return kept, nil
}

func colorEnabled(cmd *cobra.Command) bool {
	switch lintColor {
	case "always":
		return true
	case "never":
		return false
	default:
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			return term.IsTerminal(int(f.Fd()))
		}
		return false
	}
}

func countSerious(violations []types.Violation) int {
	n := 0
	for _, v := range violations {
		if v.Severity == types.SeverityError {
			n++
		}
	}
	return n
}

func countFiles(violations []types.Violation) int {
	seen := make(map[string]struct{})
	for _, v := range violations {
		seen[v.FilePath] = struct{}{}
	}
	return len(seen)
}
