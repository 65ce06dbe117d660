package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"geo-density-pipeline/internal/geocode"
	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/internal/model"
)

// defaultResolveTimeout bounds a single coordinate lookup; lookups that
// overrun count as unresolved rather than blocking the pipeline.
const defaultResolveTimeout = 5 * time.Second

// ResolveRecords runs a worker pool over matched records, calling the
// injected resolver for each address. This is the stage where the raw
// address dies: workers forward only (surname, point, weight), and a
// resolution failure of any kind skips the record without error.
//
// Worker logs carry counters only, never the address being resolved.
func ResolveRecords(
	ctx context.Context,
	resolver geocode.Resolver,
	timeout time.Duration,
	in <-chan model.MatchedRecord,
	out chan<- model.ResolvedRecord,
	workerCount int,
	stats *RunStats,
) {
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	wg.Add(workerCount)

	var resolvedCount, unresolvedCount int64
	var mu sync.Mutex

	for i := 0; i < workerCount; i++ {
		go func(workerID int) {
			defer wg.Done()
			workerResolved := 0
			workerUnresolved := 0

			for rec := range in {
				select {
				case <-ctx.Done():
					return
				default:
				}

				point, ok := resolveOne(ctx, resolver, timeout, rec.Address)
				if !ok || !point.Valid() {
					workerUnresolved++
					stats.AddUnresolved(1)
					metrics.RecordsUnresolvedTotal.Inc()
					continue
				}

				select {
				case <-ctx.Done():
					return
				case out <- model.ResolvedRecord{Surname: rec.Surname, Point: point, Weight: rec.Weight}:
					workerResolved++
					stats.AddResolved(1)
					metrics.RecordsResolvedTotal.Inc()
					if workerResolved%1000 == 0 {
						fmt.Printf("🌐 Resolve Worker %d: %d records resolved\n", workerID, workerResolved)
					}
				}
			}

			mu.Lock()
			resolvedCount += int64(workerResolved)
			unresolvedCount += int64(workerUnresolved)
			mu.Unlock()
		}(i)
	}

	// Close the output channel only AFTER all workers finish
	go func() {
		wg.Wait()
		mu.Lock()
		fmt.Printf("🌐 Resolution Summary: %d resolved, %d unresolved (skipped)\n", resolvedCount, unresolvedCount)
		mu.Unlock()
		close(out)
	}()
}

// resolveOne performs a single bounded lookup. Timeouts and transport
// errors are both folded into the unresolved outcome; retrying is the
// resolver's concern, not the pipeline's.
func resolveOne(ctx context.Context, resolver geocode.Resolver, timeout time.Duration, address string) (model.GeoPoint, bool) {
	lookupCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	point, ok, err := resolver.Resolve(lookupCtx, address)
	if err != nil || !ok {
		return model.GeoPoint{}, false
	}
	return point, true
}
