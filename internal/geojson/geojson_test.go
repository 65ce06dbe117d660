package geojson

import (
	"encoding/json"
	"testing"

	"geo-density-pipeline/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCellsSortedAndShaped(t *testing.T) {
	cells := map[string]*model.PrivacyCell{
		"40.7125_-74.0075": {
			CellID:         "40.7125_-74.0075",
			Centroid:       model.GeoPoint{Lat: 40.7125, Lng: -74.0075},
			SurnameCounts:  map[string]int{"Miller": 2, "Baker": 1},
			SurnameWeights: map[string]float64{"Miller": 0.9, "Baker": 0.7},
			TotalCount:     3,
		},
		"40.7025_-74.0125": {
			CellID:         "40.7025_-74.0125",
			Centroid:       model.GeoPoint{Lat: 40.7025, Lng: -74.0125},
			SurnameCounts:  map[string]int{"Hill": 1},
			SurnameWeights: map[string]float64{"Hill": 0.4},
			TotalCount:     1,
		},
	}

	fc := FromCells(cells)
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)

	// Ordered by cell id, not map iteration order.
	assert.Equal(t, "40.7025_-74.0125", fc.Features[0].Properties["cell_id"])
	assert.Equal(t, "40.7125_-74.0075", fc.Features[1].Properties["cell_id"])

	f := fc.Features[1]
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "Point", f.Geometry.Type)
	// GeoJSON coordinate order is [lng, lat].
	assert.Equal(t, []float64{-74.0075, 40.7125}, f.Geometry.Coordinates)
	assert.Equal(t, 3, f.Properties["count"])
	assert.InDelta(t, 2*0.9+1*0.7, f.Properties["weight"].(float64), 1e-12)
	assert.Equal(t, map[string]int{"Miller": 2, "Baker": 1}, f.Properties["surnames"])
}

func TestFromCellsEmpty(t *testing.T) {
	fc := FromCells(nil)
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Empty(t, fc.Features)

	// An empty collection still marshals with a features array present.
	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}

func TestFromSynthetic(t *testing.T) {
	fc := FromSynthetic([]model.SyntheticFeature{
		{Point: model.GeoPoint{Lat: 40.71, Lng: -74.00}, Surname: "Miller", Weight: 0.42, Count: 22},
	})
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, []float64{-74.00, 40.71}, f.Geometry.Coordinates)
	assert.Equal(t, "Miller", f.Properties["surname"])
	assert.Equal(t, 0.42, f.Properties["weight"])
	assert.Equal(t, 22, f.Properties["count"])
}
