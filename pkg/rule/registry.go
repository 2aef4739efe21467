package rule

import (
	"sort"
	"sync"
)

var registry = struct {
	sync.RWMutex
	factories map[string]func() Rule
}{factories: make(map[string]func() Rule)}

// Register adds a rule factory to the global registry. Factories are
// invoked per linter instance so configured rules do not share state.
// Registering the same ID twice panics; rule IDs are program constants.
func Register(factory func() Rule) {
	id := factory().ID()

	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.factories[id]; dup {
		panic("rule: duplicate registration of " + id)
	}
	registry.factories[id] = factory
}

// NewAll returns a fresh instance of every registered rule, sorted by ID.
func NewAll() []Rule {
	registry.RLock()
	defer registry.RUnlock()

	rules := make([]Rule, 0, len(registry.factories))
	for _, factory := range registry.factories {
		rules = append(rules, factory())
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// New returns a fresh instance of the rule with the given ID.
func New(id string) (Rule, bool) {
	registry.RLock()
	factory, ok := registry.factories[id]
	registry.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}
