package grid

import (
	"geo-density-pipeline/internal/model"
)

// NewAggregator creates an aggregator for the given cell size.
func NewAggregator(cellSize float64) (*CellAggregator, error) {
	if cellSize <= 0 || cellSize < MinCellSize {
		return nil, ErrInvalidCellSize
	}
	return &CellAggregator{
		cellSize: cellSize,
		cells:    make(map[string]*model.PrivacyCell),
	}, nil
}

// CellAggregator accumulates per-cell statistics for one pipeline run. It
// is a plain single-goroutine fold; for parallel use, give each worker its
// own aggregator and combine them with Merge (accumulation is associative
// and commutative, keyed by cell id).
//
// The aggregator never sees a raw address: its input type carries only a
// surname, a coordinate and a weight.
type CellAggregator struct {
	cellSize   float64
	cells      map[string]*model.PrivacyCell
	resolved   int64
	unresolved int64
}

// Add folds one resolved record into its cell. Invalid coordinates are
// treated like unresolved records: counted and skipped, never fatal.
func (a *CellAggregator) Add(rec model.ResolvedRecord) {
	id, centroid, err := CellFor(rec.Point, a.cellSize)
	if err != nil {
		a.unresolved++
		return
	}

	cell, ok := a.cells[id]
	if !ok {
		cell = &model.PrivacyCell{
			CellID:         id,
			Centroid:       centroid,
			SurnameCounts:  make(map[string]int),
			SurnameWeights: make(map[string]float64),
		}
		a.cells[id] = cell
	}

	cell.SurnameCounts[rec.Surname]++
	cell.SurnameWeights[rec.Surname] = rec.Weight
	cell.TotalCount++
	a.resolved++
}

// SkipUnresolved records a record whose address could not be resolved.
func (a *CellAggregator) SkipUnresolved() {
	a.unresolved++
}

// Aggregate runs the whole fold over a record slice in one call.
func Aggregate(records []model.ResolvedRecord, cellSize float64) (map[string]*model.PrivacyCell, error) {
	agg, err := NewAggregator(cellSize)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		agg.Add(rec)
	}
	return agg.Cells(), nil
}

// Cells returns the accumulated cell map. The aggregator must not be
// mutated after the result is taken.
func (a *CellAggregator) Cells() map[string]*model.PrivacyCell {
	return a.cells
}

// Resolved returns how many records were folded into cells.
func (a *CellAggregator) Resolved() int64 {
	return a.resolved
}

// Unresolved returns how many records were skipped.
func (a *CellAggregator) Unresolved() int64 {
	return a.unresolved
}

// Merge combines another aggregator's partial result into this one by
// summing counts per cell and per surname. Used to combine per-worker
// partition aggregates after a parallel fold.
func (a *CellAggregator) Merge(other *CellAggregator) {
	for id, cell := range other.cells {
		existing, ok := a.cells[id]
		if !ok {
			a.cells[id] = cell
			continue
		}
		for name, n := range cell.SurnameCounts {
			existing.SurnameCounts[name] += n
			existing.SurnameWeights[name] = cell.SurnameWeights[name]
		}
		existing.TotalCount += cell.TotalCount
	}
	a.resolved += other.resolved
	a.unresolved += other.unresolved
}
