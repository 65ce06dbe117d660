package pipeline

import (
	"sync/atomic"

	"geo-density-pipeline/internal/model"
)

// RunStats tracks per-run counters across stages. Counters only; it never
// holds record content.
type RunStats struct {
	ingested   atomic.Int64
	matched    atomic.Int64
	unmatched  atomic.Int64
	resolved   atomic.Int64
	unresolved atomic.Int64
	cellCount  atomic.Int64
}

func (s *RunStats) AddIngested(n int64)   { s.ingested.Add(n) }
func (s *RunStats) AddMatched(n int64)    { s.matched.Add(n) }
func (s *RunStats) AddUnmatched(n int64)  { s.unmatched.Add(n) }
func (s *RunStats) AddResolved(n int64)   { s.resolved.Add(n) }
func (s *RunStats) AddUnresolved(n int64) { s.unresolved.Add(n) }
func (s *RunStats) SetCellCount(n int64)  { s.cellCount.Store(n) }

func (s *RunStats) Ingested() int64   { return s.ingested.Load() }
func (s *RunStats) Resolved() int64   { return s.resolved.Load() }
func (s *RunStats) Unresolved() int64 { return s.unresolved.Load() }

// Snapshot returns the counters as a storable summary.
func (s *RunStats) Snapshot() model.JobStats {
	return model.JobStats{
		RecordsIngested:   s.ingested.Load(),
		RecordsMatched:    s.matched.Load(),
		RecordsUnmatched:  s.unmatched.Load(),
		RecordsResolved:   s.resolved.Load(),
		RecordsUnresolved: s.unresolved.Load(),
		CellCount:         s.cellCount.Load(),
	}
}
