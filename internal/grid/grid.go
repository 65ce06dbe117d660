// Package grid implements the privacy-cell quantization: it snaps raw
// coordinates to fixed grid centroids and accumulates per-surname
// statistics, so no individual coordinate survives aggregation.
package grid

import (
	"errors"
	"fmt"
	"math"

	"geo-density-pipeline/internal/model"
)

// Cell ids embed the centroid formatted to 4 decimal places. Two centroids
// closer than twice that resolution could collide after rounding, so cell
// sizes below MinCellSize are rejected instead of silently widening the id
// precision (which would change exported ids).
const (
	idPrecision = 4
	MinCellSize = 0.0002
)

var (
	// ErrInvalidCellSize is returned for non-positive cell sizes and for
	// cell sizes too small for the fixed cell-id precision.
	ErrInvalidCellSize = errors.New("grid: invalid cell size")

	// ErrInvalidPoint is returned for coordinates outside the lat/lng ranges.
	ErrInvalidPoint = errors.New("grid: point outside coordinate ranges")
)

// CellFor snaps a point to its privacy cell. Every point inside the same
// cellSize-aligned grid square maps to one fixed centroid and one id.
// Pure function; no side effects.
func CellFor(p model.GeoPoint, cellSize float64) (string, model.GeoPoint, error) {
	if cellSize <= 0 || cellSize < MinCellSize {
		return "", model.GeoPoint{}, fmt.Errorf("%w: %v", ErrInvalidCellSize, cellSize)
	}
	if !p.Valid() {
		return "", model.GeoPoint{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidPoint, p.Lat, p.Lng)
	}

	centroid := model.GeoPoint{
		Lat: math.Floor(p.Lat/cellSize)*cellSize + cellSize/2,
		Lng: math.Floor(p.Lng/cellSize)*cellSize + cellSize/2,
	}
	id := fmt.Sprintf("%.*f_%.*f", idPrecision, centroid.Lat, idPrecision, centroid.Lng)
	return id, centroid, nil
}
