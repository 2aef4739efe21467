package main

import (
	"github.com/spf13/cobra"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "swiftlint",
	Short: "SwiftLint - a linter for Swift source code",
	Long: `SwiftLint checks Swift sources against a configurable set of style and
correctness rules and reports violations with file, line, and column
positions.

Configuration is read from .swiftlint.yml in the linted directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress status output")

	// Add subcommands
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(baselineCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
