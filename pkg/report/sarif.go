package report

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/cottonBuddha/SwiftLint/pkg/rule"
	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// SARIF 2.1.0 constants
const (
	SchemaURI   = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version     = "2.1.0"
	ToolName    = "swiftlint"
	ToolVersion = "0.1.0"
)

// SARIFReport is the top-level SARIF report structure
type SARIFReport struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single invocation of the tool
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []SARIFRule `json:"rules,omitempty"`
}

// SARIFRule describes a lint rule
type SARIFRule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// Result represents a single violation
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range
type Region struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// SARIFReporter emits violations in SARIF 2.1.0 format.
type SARIFReporter struct {
	rules []rule.Rule
}

// Report renders the violations.
func (r *SARIFReporter) Report(w io.Writer, violations []types.Violation) error {
	report := newSARIFReport()

	for _, ru := range r.rules {
		report.addRule(ru)
	}
	for i := range violations {
		report.addResult(&violations[i])
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// newSARIFReport creates a report with initialized structure
func newSARIFReport() *SARIFReport {
	return &SARIFReport{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: ToolVersion,
						Rules:   []SARIFRule{},
					},
				},
				Results: []Result{},
			},
		},
	}
}

// addRule adds a lint rule to the report
func (r *SARIFReport) addRule(ru rule.Rule) {
	r.Runs[0].Tool.Driver.Rules = append(r.Runs[0].Tool.Driver.Rules, SARIFRule{
		ID:   ru.ID(),
		Name: ru.Name(),
		ShortDescription: ShortDescription{
			Text: ru.Description(),
		},
	})
}

// addResult adds a violation result to the report
func (r *SARIFReport) addResult(v *types.Violation) {
	result := Result{
		RuleID: v.RuleID,
		Level:  severityLevel(v.Severity),
		Message: Message{
			Text: v.Message,
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: formatFileURI(v.FilePath),
					},
					Region: Region{
						StartLine:   v.Location.Source.Start.Line,
						StartColumn: v.Location.Source.Start.Column,
						EndLine:     v.Location.Source.End.Line,
						EndColumn:   v.Location.Source.End.Column,
					},
				},
			},
		},
	}

	r.Runs[0].Results = append(r.Runs[0].Results, result)
}

// severityLevel maps a severity to a SARIF level
func severityLevel(s types.Severity) string {
	if s == types.SeverityError {
		return "error"
	}
	return "warning"
}

// formatFileURI converts a file path to SARIF URI format
// Absolute paths get file:// prefix, relative paths stay as-is
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
