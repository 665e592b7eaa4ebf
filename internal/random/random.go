// Package random provides the randomness sources behind ad fallback
// selection.
package random

import "math/rand/v2"

// System draws from the process-wide generator. Safe for concurrent use,
// which matters because the transport dispatches calls in parallel.
type System struct{}

// IntN returns a uniform int in [0, n).
func (System) IntN(n int) int {
	return rand.IntN(n)
}

// Seeded is a deterministic PCG-backed source for tests. Not safe for
// concurrent use.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a Seeded source from the two PCG seed words.
func NewSeeded(seed1, seed2 uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// IntN returns a uniform int in [0, n).
func (s *Seeded) IntN(n int) int {
	return s.r.IntN(n)
}
