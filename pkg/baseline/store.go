// Package baseline persists known violations so existing debt can be
// suppressed while new violations are still reported.
package baseline

import (
	"fmt"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// Store provides persistence for baseline violations.
// This interface abstracts the underlying storage implementation.
type Store interface {
	// Add records a violation in the baseline (deduplicated by fingerprint).
	Add(v *types.Violation) error

	// Contains checks whether a fingerprint is in the baseline.
	Contains(fingerprint string) (bool, error)

	// All retrieves every baselined violation.
	All() ([]*types.Violation, error)

	// Close closes the store.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory store (useful for testing).
	Path string
}

// New creates a Store. ":memory:" paths get the in-memory
// implementation; file paths get SQLite.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}

// Filter returns the violations not present in the baseline.
func Filter(s Store, violations []types.Violation) ([]types.Violation, error) {
	kept := make([]types.Violation, 0, len(violations))
	for i := range violations {
		known, err := s.Contains(violations[i].Fingerprint())
		if err != nil {
			return nil, fmt.Errorf("checking baseline: %w", err)
		}
		if !known {
			kept = append(kept, violations[i])
		}
	}
	return kept, nil
}
