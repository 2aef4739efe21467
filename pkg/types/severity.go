package types

import "fmt"

// Severity is the reporting level of a violation.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityWarning, SeverityError:
		return Severity(s), nil
	default:
		return "", fmt.Errorf("unknown severity: %q", s)
	}
}

// IsValid reports whether the severity is one of the known levels.
func (s Severity) IsValid() bool {
	return s == SeverityWarning || s == SeverityError
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}
