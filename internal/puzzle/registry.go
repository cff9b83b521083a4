package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("no solver registered for day")

// Registry maps day numbers to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates a registry pre-populated with solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a solver. Registering the same day twice is an error.
func (r *Registry) Register(s Solver) error {
	if s == nil {
		return fmt.Errorf("cannot register nil solver")
	}
	day := s.Day()
	if day < 1 || day > 25 {
		return fmt.Errorf("solver %q has invalid day %d", s.Title(), day)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.solvers[day]; ok {
		return fmt.Errorf("day %d already registered by %q", day, existing.Title())
	}
	r.solvers[day] = s
	return nil
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Solvers returns every registered solver ordered by day.
func (r *Registry) Solvers() []Solver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Solver, 0, len(r.solvers))
	for _, s := range r.solvers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day() < out[j].Day() })
	return out
}
