package grid

import (
	"encoding/json"
	"math/rand"
	"testing"

	"geo-density-pipeline/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []model.ResolvedRecord {
	rng := rand.New(rand.NewSource(42))
	surnames := []struct {
		name   string
		weight float64
	}{
		{"Miller", 0.92},
		{"Baker", 0.74},
		{"Wilson", 0.61},
		{"Hill", 0.48},
	}

	records := make([]model.ResolvedRecord, 0, 400)
	for i := 0; i < 400; i++ {
		s := surnames[rng.Intn(len(surnames))]
		records = append(records, model.ResolvedRecord{
			Surname: s.name,
			Weight:  s.weight,
			Point: model.GeoPoint{
				Lat: 40.70 + rng.Float64()*0.05,
				Lng: -74.02 + rng.Float64()*0.05,
			},
		})
	}
	return records
}

func TestAggregateOrderIndependence(t *testing.T) {
	records := testRecords()

	shuffled := make([]model.ResolvedRecord, len(records))
	copy(shuffled, records)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	a, err := Aggregate(records, 0.005)
	require.NoError(t, err)
	b, err := Aggregate(shuffled, 0.005)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for id, cellA := range a {
		cellB, ok := b[id]
		require.True(t, ok, "cell %s missing from shuffled run", id)
		assert.Equal(t, cellA.Centroid, cellB.Centroid)
		assert.Equal(t, cellA.SurnameCounts, cellB.SurnameCounts)
		assert.Equal(t, cellA.TotalCount, cellB.TotalCount)
		// Not just close: bit-identical, because the weighted sum is
		// computed in sorted surname order at read time.
		assert.Equal(t, cellA.WeightedSum(), cellB.WeightedSum())
	}

	jsonA, err := json.Marshal(a)
	require.NoError(t, err)
	jsonB, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, jsonA, jsonB)
}

func TestAggregateCountConservation(t *testing.T) {
	records := testRecords()

	cells, err := Aggregate(records, 0.005)
	require.NoError(t, err)

	total := 0
	for _, cell := range cells {
		perSurname := 0
		for _, n := range cell.SurnameCounts {
			perSurname += n
		}
		assert.Equal(t, cell.TotalCount, perSurname,
			"cell %s total disagrees with per-surname counts", cell.CellID)
		total += cell.TotalCount
	}
	assert.Equal(t, len(records), total)
}

func TestAggregatorSkipsInvalidPoints(t *testing.T) {
	agg, err := NewAggregator(0.005)
	require.NoError(t, err)

	agg.Add(model.ResolvedRecord{Surname: "Miller", Weight: 0.9, Point: model.GeoPoint{Lat: 40.7, Lng: -74.0}})
	agg.Add(model.ResolvedRecord{Surname: "Baker", Weight: 0.7, Point: model.GeoPoint{Lat: 95, Lng: 0}})
	agg.SkipUnresolved()

	assert.EqualValues(t, 1, agg.Resolved())
	assert.EqualValues(t, 2, agg.Unresolved())
	assert.Len(t, agg.Cells(), 1)
}

func TestAggregatorMergeMatchesSequentialFold(t *testing.T) {
	records := testRecords()

	sequential, err := Aggregate(records, 0.005)
	require.NoError(t, err)

	// Partition across three workers, then merge the partials.
	parts := make([]*CellAggregator, 3)
	for i := range parts {
		parts[i], err = NewAggregator(0.005)
		require.NoError(t, err)
	}
	for i, rec := range records {
		parts[i%len(parts)].Add(rec)
	}
	merged := parts[0]
	merged.Merge(parts[1])
	merged.Merge(parts[2])

	assert.EqualValues(t, len(records), merged.Resolved())
	require.Equal(t, len(sequential), len(merged.Cells()))
	for id, want := range sequential {
		got, ok := merged.Cells()[id]
		require.True(t, ok, "cell %s missing after merge", id)
		assert.Equal(t, want.SurnameCounts, got.SurnameCounts)
		assert.Equal(t, want.TotalCount, got.TotalCount)
		assert.Equal(t, want.WeightedSum(), got.WeightedSum())
	}
}

func TestNewAggregatorRejectsBadCellSize(t *testing.T) {
	for _, size := range []float64{0, -1, 0.00001} {
		_, err := NewAggregator(size)
		assert.ErrorIs(t, err, ErrInvalidCellSize, "cell size %v", size)
	}
}
