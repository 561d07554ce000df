package service

import (
	"math/rand"

	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/ports"
)

// PickRandom returns one uniformly chosen element of items, or
// domain.ErrEmptyCollection when there is nothing to pick from.
func PickRandom[T any](r ports.Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, domain.ErrEmptyCollection
	}
	return items[r.Intn(len(items))], nil
}

// Keep returns the elements of items for which keep is true, preserving
// insertion order. No match yields an empty (non-nil) slice so JSON
// encodes it as [] rather than null.
func Keep[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }

// SystemRand returns the production random source. The top-level
// math/rand functions are safe for concurrent use.
func SystemRand() ports.Rand { return systemRand{} }
