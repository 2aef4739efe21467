package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Violation is a single style issue found in a file.
type Violation struct {
	RuleID   string   `json:"rule_id"`
	RuleName string   `json:"rule_name"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	FilePath string   `json:"file_path"`
	Location Location `json:"location"`
}

// Fingerprint computes a content-based ID for the violation.
// Format: SHA-1(rule_id + '\0' + file_path + '\0' + offset_range)
// It is stable across runs as long as the file content does not move,
// which is what the baseline store keys on.
func (v *Violation) Fingerprint() string {
	h := sha1.New()

	h.Write([]byte(v.RuleID))
	h.Write([]byte{0})
	h.Write([]byte(v.FilePath))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d:%d", v.Location.Offset.Start, v.Location.Offset.End)

	return hex.EncodeToString(h.Sum(nil))
}
