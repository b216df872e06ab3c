package tax

import (
	"sort"
	"sync"
)

// Registry holds the named tax strategies available to the payroll
// calculator. Registration happens at service start-up; lookups dominate
// afterwards, so reads take the shared lock.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

func (r *Registry) Register(name string, strategy Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[name]; exists {
		return ErrDuplicateStrategyName
	}
	r.strategies[name] = strategy
	return nil
}

func (r *Registry) Resolve(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, ok := r.strategies[name]
	if !ok {
		return nil, ErrUnknownStrategy
	}
	return strategy, nil
}

// ListNames returns the registered strategy names, sorted for stable output.
func (r *Registry) ListNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
