package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	_ "github.com/cottonBuddha/SwiftLint/pkg/rules"
)

var (
	rulesFormat     string
	rulesConfigPath string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage lint rules",
	Long:  "Commands for listing and inspecting lint rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rules",
	Long:  "Display all available lint rules with their identifiers and default severities",
	RunE:  runRulesList,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().StringVar(&rulesFormat, "format", "table", "Output format: table, json")
	rulesListCmd.Flags().StringVar(&rulesConfigPath, "config", "", "Show severities as configured by this file")
}

func runRulesList(cmd *cobra.Command, args []string) error {
	cfg := &rule.Config{}
	if rulesConfigPath != "" {
		loaded, err := rule.Load(rulesConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	rules := rule.NewAll()

	switch rulesFormat {
	case "json":
		return outputRulesJSON(cmd, rules, cfg)
	case "table":
		return outputRulesTable(cmd, rules, cfg)
	default:
		return fmt.Errorf("unknown output format: %s", rulesFormat)
	}
}

type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Disabled    bool   `json:"disabled,omitempty"`
}

func outputRulesJSON(cmd *cobra.Command, rules []rule.Rule, cfg *rule.Config) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, ruleInfo{
			ID:          r.ID(),
			Name:        r.Name(),
			Description: r.Description(),
			Severity:    cfg.SeverityFor(r).String(),
			Disabled:    cfg.IsDisabled(r.ID()),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}

func outputRulesTable(cmd *cobra.Command, rules []rule.Rule, cfg *rule.Config) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tName\tSeverity\n")
	fmt.Fprintf(w, "--\t----\t--------\n")

	for _, r := range rules {
		severity := cfg.SeverityFor(r).String()
		if cfg.IsDisabled(r.ID()) {
			severity = "disabled"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID(), r.Name(), severity)
	}

	return nil
}
