// Package geojson renders aggregation and sampler output as GeoJSON
// FeatureCollections. The property layout is a stable wire format consumed
// by map frontends; do not reshape it.
package geojson

import (
	"sort"

	"geo-density-pipeline/internal/model"
)

// FeatureCollection is a standard GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON feature with point geometry.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry holds a Point geometry. Coordinates are [lng, lat].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func pointGeometry(p model.GeoPoint) Geometry {
	return Geometry{Type: "Point", Coordinates: []float64{p.Lng, p.Lat}}
}

// CellFeature builds the feature for one privacy cell aggregate.
func CellFeature(cellID string, centroid model.GeoPoint, count int, weight float64, surnames map[string]int) Feature {
	return Feature{
		Type:     "Feature",
		Geometry: pointGeometry(centroid),
		Properties: map[string]interface{}{
			"cell_id":  cellID,
			"count":    count,
			"weight":   weight,
			"surnames": surnames,
		},
	}
}

// FromCells renders privacy cells as a FeatureCollection, one point per
// cell centroid, ordered by cell id so output is deterministic.
func FromCells(cells map[string]*model.PrivacyCell) FeatureCollection {
	ids := make([]string, 0, len(cells))
	for id := range cells {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	features := make([]Feature, 0, len(cells))
	for _, id := range ids {
		cell := cells[id]
		features = append(features, CellFeature(cell.CellID, cell.Centroid, cell.TotalCount, cell.WeightedSum(), cell.SurnameCounts))
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

// FromSynthetic renders sampler output as a FeatureCollection.
func FromSynthetic(points []model.SyntheticFeature) FeatureCollection {
	features := make([]Feature, 0, len(points))
	for _, p := range points {
		features = append(features, Feature{
			Type:     "Feature",
			Geometry: pointGeometry(p.Point),
			Properties: map[string]interface{}{
				"weight":  p.Weight,
				"surname": p.Surname,
				"count":   p.Count,
			},
		})
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
