package puzzle

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps keys to solvers. The zero value is not usable; call NewRegistry.
type Registry struct {
	solvers map[Key]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[Key]Solver)}
}

// Register adds s under k. Invalid keys and duplicates are rejected.
func (r *Registry) Register(k Key, s Solver) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if _, ok := r.solvers[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, k)
	}
	r.solvers[k] = s

	return nil
}

// MustRegister is Register that panics on error, for package-level wiring.
func (r *Registry) MustRegister(k Key, s Solver) {
	if err := r.Register(k, s); err != nil {
		panic(err)
	}
}

// Lookup returns the solver registered under k.
func (r *Registry) Lookup(k Key) (Solver, error) {
	s, ok := r.solvers[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
	}

	return s, nil
}

// Keys returns every registered key in (year, day) order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})

	return keys
}

// Len reports the number of registered solvers.
func (r *Registry) Len() int { return len(r.solvers) }

// Run computes a single part (1 or 2) of s.
func Run(s Solver, part int, input string) (string, error) {
	switch part {
	case 1:
		return s.Part1(input)
	case 2:
		return s.Part2(input)
	}

	return "", fmt.Errorf("%w: %d", ErrBadPart, part)
}

// Solve computes both parts of s. Windows line endings are normalized first.
// The first failing part aborts with its error wrapped in the part number.
func Solve(s Solver, input string) (Answer, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var ans Answer
	var err error
	if ans.Part1, err = s.Part1(input); err != nil {
		return Answer{}, fmt.Errorf("part 1: %w", err)
	}
	if ans.Part2, err = s.Part2(input); err != nil {
		return Answer{}, fmt.Errorf("part 2: %w", err)
	}

	return ans, nil
}
