// Package random provides the random source used to fabricate sample records.
package random

import "math/rand/v2"

// Source yields uniform random integers.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// New returns a Source backed by the process-wide generator.
// It is safe for concurrent use.
func New() Source {
	return globalSource{}
}

// NewSeeded returns a deterministic Source for the given seed.
// It is not safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Between returns a uniform int in [lo, hi).
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}

// Choice returns a uniformly chosen element of items.
func Choice[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
