// SPDX-License-Identifier: MIT

package fem

import "fmt"

// Backend selects the dense factorization used for K_ff.
type Backend int

const (
	// BackendLU uses gonum's LAPACK-style partial-pivoting LU.
	BackendLU Backend = iota
	// BackendDoolittle uses matrix.LU (Doolittle with row pivoting).
	BackendDoolittle
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case BackendLU:
		return "lu"
	case BackendDoolittle:
		return "doolittle"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps "lu" / "doolittle" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "lu":
		return BackendLU, nil
	case "doolittle":
		return BackendDoolittle, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownBackend)
	}
}

// Option configures a Solver.
type Option func(*Solver)

// WithBackend selects the factorization backend (default BackendLU).
func WithBackend(b Backend) Option {
	return func(s *Solver) { s.backend = b }
}
