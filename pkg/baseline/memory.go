package baseline

import (
	"sort"
	"sync"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// MemoryStore implements Store with an in-memory map. Used for
// ":memory:" paths and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	violations map[string]*types.Violation
}

// NewMemory creates an in-memory baseline store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		violations: make(map[string]*types.Violation),
	}
}

// Add records a violation in the baseline.
func (s *MemoryStore) Add(v *types.Violation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp := v.Fingerprint()
	if _, exists := s.violations[fp]; !exists {
		clone := *v
		s.violations[fp] = &clone
	}
	return nil
}

// Contains checks whether a fingerprint is in the baseline.
func (s *MemoryStore) Contains(fingerprint string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.violations[fingerprint]
	return ok, nil
}

// All retrieves every baselined violation ordered by file and offset.
func (s *MemoryStore) All() ([]*types.Violation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	violations := make([]*types.Violation, 0, len(s.violations))
	for _, v := range s.violations {
		violations = append(violations, v)
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].FilePath != violations[j].FilePath {
			return violations[i].FilePath < violations[j].FilePath
		}
		return violations[i].Location.Offset.Start < violations[j].Location.Offset.Start
	})
	return violations, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
