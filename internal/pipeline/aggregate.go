package pipeline

import (
	"context"
	"fmt"
	"sync"

	"geo-density-pipeline/internal/grid"
	"geo-density-pipeline/internal/model"
)

// AggregateRecords folds resolved records into privacy cells with a worker
// pool. Each worker owns a private grid.CellAggregator; the partials are
// merged per cell id once the input drains. Accumulation is associative
// and commutative, so the split changes nothing about the result.
func AggregateRecords(ctx context.Context, in <-chan model.ResolvedRecord, cellSize float64, workerCount int) (map[string]*model.PrivacyCell, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	workers := make([]*grid.CellAggregator, workerCount)
	for i := 0; i < workerCount; i++ {
		agg, err := grid.NewAggregator(cellSize)
		if err != nil {
			return nil, err
		}
		workers[i] = agg
	}

	var wg sync.WaitGroup
	wg.Add(workerCount)

	for i := 0; i < workerCount; i++ {
		go func(agg *grid.CellAggregator, workerID int) {
			defer wg.Done()
			count := 0
			for rec := range in {
				select {
				case <-ctx.Done():
					return
				default:
				}
				agg.Add(rec)
				count++
				if count%5000 == 0 {
					fmt.Printf("📊 Aggregation Worker %d: %d records folded\n", workerID, count)
				}
			}
		}(workers[i], i)
	}

	wg.Wait()

	// Merge partition aggregates into the first worker's map
	merged := workers[0]
	for _, partial := range workers[1:] {
		merged.Merge(partial)
	}

	fmt.Printf("📊 Aggregation Summary: %d cells from %d records (%d skipped)\n",
		len(merged.Cells()), merged.Resolved(), merged.Unresolved())
	return merged.Cells(), nil
}
