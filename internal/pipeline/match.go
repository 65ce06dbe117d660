package pipeline

import (
	"context"
	"fmt"

	"geo-density-pipeline/internal/catalog"
	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/internal/model"
)

// MatchRecords filters raw records against the surname catalogue and
// attaches the catalogue weight. Non-matching records are dropped with a
// counter; matching is case-insensitive but the catalogue spelling of the
// surname is what flows downstream, so cells key on canonical names.
func MatchRecords(
	ctx context.Context,
	surnames *catalog.Surnames,
	in <-chan model.RawRecord,
	out chan<- model.MatchedRecord,
	stats *RunStats,
) {
	defer close(out)

	matched, unmatched := 0, 0
	for rec := range in {
		select {
		case <-ctx.Done():
			return
		default:
		}

		entry, ok := surnames.Lookup(rec.Surname)
		if !ok {
			unmatched++
			stats.AddUnmatched(1)
			metrics.RecordsUnmatchedTotal.Inc()
			continue
		}

		select {
		case <-ctx.Done():
			return
		case out <- model.MatchedRecord{Surname: entry.Name, Address: rec.Address, Weight: entry.Weight}:
			matched++
			stats.AddMatched(1)
			metrics.RecordsMatchedTotal.Inc()
		}
	}

	fmt.Printf("🔍 Match Summary: %d matched, %d dropped\n", matched, unmatched)
}
