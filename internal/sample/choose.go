package sample

import (
	"errors"
	"math/rand"
)

var (
	// ErrEmptyCatalog is returned when a weighted draw gets no items.
	ErrEmptyCatalog = errors.New("sample: empty catalogue")

	// ErrZeroWeight is returned when the weight total is not positive.
	ErrZeroWeight = errors.New("sample: catalogue weight total is not positive")
)

// ChooseWeighted draws one item with probability proportional to its
// weight: draw r uniform in [0, total), then walk the items subtracting
// weights until the remainder drops to zero or below. If floating-point
// edge cases leave no match, the first item is the defined fallback.
//
// An empty item list or a non-positive weight total is a configuration
// error and fails immediately rather than producing degenerate output.
func ChooseWeighted[T any](rng *rand.Rand, items []T, weightOf func(T) float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCatalog
	}

	total := 0.0
	for _, item := range items {
		total += weightOf(item)
	}
	if total <= 0 {
		return zero, ErrZeroWeight
	}

	r := rng.Float64() * total
	for _, item := range items {
		r -= weightOf(item)
		if r <= 0 {
			return item, nil
		}
	}
	return items[0], nil
}
