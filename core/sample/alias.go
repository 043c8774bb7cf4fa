// Package sample implements discrete sampling from frequency
// distributions using the Vose alias method, which draws in O(1) after
// O(n) setup.
package sample

import (
	"math/rand/v2"

	"github.com/nlptk/nlptk/core/errors"
)

// AliasTable samples values from a fixed discrete distribution. Build
// one with New or FromCounts; tables are immutable and safe for
// concurrent draws with separate rand sources.
type AliasTable[T any] struct {
	items []T
	prob  []float64
	alias []int
}

// New builds an alias table over items with the matching weights.
// Weights need not be normalized but must all be positive, and the two
// slices must have equal, non-zero length.
func New[T any](items []T, weights []float64) (*AliasTable[T], error) {
	if len(items) == 0 {
		return nil, errors.NewValidation("items", "empty distribution")
	}
	if len(items) != len(weights) {
		return nil, errors.NewValidation("weights", "length does not match items")
	}
	total := 0.0
	for _, w := range weights {
		if w <= 0 {
			return nil, errors.NewValidation("weights", "weights must be positive")
		}
		total += w
	}

	n := len(items)
	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
	}

	t := &AliasTable[T]{
		items: items,
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	var small, large []int
	for i, p := range scaled {
		if p < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l
		scaled[l] += scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	// Leftovers are 1 up to rounding error.
	for _, i := range large {
		t.prob[i] = 1
	}
	for _, i := range small {
		t.prob[i] = 1
	}
	return t, nil
}

// FromCounts builds a table from a frequency map, weighting each value
// by its count.
func FromCounts[T comparable](counts map[T]int) (*AliasTable[T], error) {
	items := make([]T, 0, len(counts))
	weights := make([]float64, 0, len(counts))
	for v, c := range counts {
		items = append(items, v)
		weights = append(weights, float64(c))
	}
	return New(items, weights)
}

// Len returns the number of distinct values in the distribution.
func (t *AliasTable[T]) Len() int {
	return len(t.items)
}

// Pick draws one value using rng. Draws with the same seeded source are
// deterministic.
func (t *AliasTable[T]) Pick(rng *rand.Rand) T {
	i := rng.IntN(len(t.items))
	if rng.Float64() < t.prob[i] {
		return t.items[i]
	}
	return t.items[t.alias[i]]
}
