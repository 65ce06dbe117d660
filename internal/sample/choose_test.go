package sample

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weighted struct {
	name   string
	weight float64
}

func TestChooseWeightedEmpiricalRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := []weighted{{"A", 3}, {"B", 1}}

	counts := map[string]int{}
	const draws = 100_000
	for i := 0; i < draws; i++ {
		item, err := ChooseWeighted(rng, items, func(w weighted) float64 { return w.weight })
		require.NoError(t, err)
		counts[item.name]++
	}

	require.Equal(t, draws, counts["A"]+counts["B"])
	ratio := float64(counts["A"]) / float64(counts["B"])
	assert.InDelta(t, 3.0, ratio, 3.0*0.05, "A:B ratio %v drifted from the 3:1 weights", ratio)
}

func TestChooseWeightedSingleItem(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	items := []weighted{{"only", 0.2}}

	for i := 0; i < 100; i++ {
		item, err := ChooseWeighted(rng, items, func(w weighted) float64 { return w.weight })
		require.NoError(t, err)
		assert.Equal(t, "only", item.name)
	}
}

func TestChooseWeightedZeroWeightItemNeverChosen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	items := []weighted{{"always", 1}, {"never", 0}}

	for i := 0; i < 1000; i++ {
		item, err := ChooseWeighted(rng, items, func(w weighted) float64 { return w.weight })
		require.NoError(t, err)
		assert.Equal(t, "always", item.name)
	}
}

func TestChooseWeightedEmptyItems(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	_, err := ChooseWeighted(rng, nil, func(w weighted) float64 { return w.weight })
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestChooseWeightedNonPositiveTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	items := []weighted{{"a", 0}, {"b", 0}}

	_, err := ChooseWeighted(rng, items, func(w weighted) float64 { return w.weight })
	assert.ErrorIs(t, err, ErrZeroWeight)
}
