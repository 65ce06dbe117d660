package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"geo-density-pipeline/internal/catalog"
	"geo-density-pipeline/internal/geocode"
	"geo-density-pipeline/internal/grid"
	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/internal/model"
	"geo-density-pipeline/internal/store"
	"geo-density-pipeline/pkg/utils"
)

// Deps are the injected collaborators for a pipeline run: the immutable
// reference catalogues, the coordinate resolver, and output settings.
type Deps struct {
	Surnames        *catalog.Surnames
	Centers         *catalog.Centers
	Resolver        geocode.Resolver
	OutputDir       string
	DefaultCellSize float64
	ResolveTimeout  time.Duration
}

// ------------------- Pipeline Runner -------------------

// Run executes one aggregation job: ingest -> match -> resolve ->
// aggregate -> export. Raw addresses live only between ingest and resolve;
// nothing past the resolve stage can see or store them, and no stage logs
// record content.
func Run(ctx context.Context, jobID string, job model.AggregationJobSpec, deps Deps) (err error) {
	start := time.Now()
	fmt.Printf("🚀 Starting aggregation job: %s\n", jobID)

	store.UpdateJobStatus(jobID, "running")

	defer func() {
		if err != nil {
			store.UpdateJobStatus(jobID, "failed")
			store.SaveJobError(jobID, err)
			metrics.JobsTotal.WithLabelValues("failed").Inc()
		}
	}()

	cellSize := job.CellSize
	if cellSize == 0 {
		cellSize = deps.DefaultCellSize
	}
	// Reject bad cell sizes before any stage starts; failing inside the
	// aggregation goroutine would strand the upstream stages.
	if _, validateErr := grid.NewAggregator(cellSize); validateErr != nil {
		return validateErr
	}

	timeout := utils.ParseDuration(job.Concurrency.JobTimeout)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	bufSize := job.Concurrency.ChannelBufferSize
	if bufSize == 0 {
		bufSize = 100
	}

	rawCh := make(chan model.RawRecord, bufSize)
	matchedCh := make(chan model.MatchedRecord, bufSize)
	resolvedCh := make(chan model.ResolvedRecord, bufSize)
	errorCh := make(chan error, bufSize)

	stats := &RunStats{}

	var wg sync.WaitGroup

	// --- ERROR LOGGER ---
	// Tracked separately: it only exits once errorCh closes, which happens
	// after the stage goroutines are done.
	var logWg sync.WaitGroup
	logWg.Add(1)
	go func() {
		defer logWg.Done()
		for err := range errorCh {
			log.Printf("❌ Error in job %s: %v\n", jobID, err)
		}
	}()

	// --- INGESTION STAGE ---
	wg.Add(1)
	go func() {
		defer wg.Done()
		startTime := time.Now()
		store.UpdateJobStatus(jobID, "ingesting")
		store.SaveStageProgress(jobID, "ingestion", "started", &startTime, nil, 0)

		StartIngestion(ctx, job.Sources, rawCh, errorCh, stats)
		close(rawCh) // safe: only this goroutine closes rawCh

		endTime := time.Now()
		store.SaveStageProgress(jobID, "ingestion", "completed", &startTime, &endTime, stats.Ingested())
	}()

	// --- MATCH STAGE ---
	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Println("🔍 Starting surname match stage...")
		store.UpdateJobStatus(jobID, "matching")

		MatchRecords(ctx, deps.Surnames, rawCh, matchedCh, stats)

		fmt.Println("✅ Surname match stage setup complete.")
	}()

	// --- RESOLUTION STAGE ---
	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Println("🌐 Starting coordinate resolution stage...")
		store.UpdateJobStatus(jobID, "resolving")

		numWorkers := job.Concurrency.Workers.Resolve
		if numWorkers == 0 {
			numWorkers = 4 // default
		}

		ResolveRecords(ctx, deps.Resolver, deps.ResolveTimeout, matchedCh, resolvedCh, numWorkers, stats)

		fmt.Println("✅ Resolution stage setup complete.")
	}()

	// --- AGGREGATION + EXPORT ---
	wg.Add(1)
	var runErr error
	go func() {
		defer wg.Done()
		startTime := time.Now()
		fmt.Println("📊 Starting aggregation stage...")
		store.UpdateJobStatus(jobID, "aggregating")
		store.SaveStageProgress(jobID, "aggregation", "started", &startTime, nil, 0)

		numWorkers := job.Concurrency.Workers.Aggregate
		if numWorkers == 0 {
			numWorkers = 2 // default
		}

		cells, aggErr := AggregateRecords(ctx, resolvedCh, cellSize, numWorkers)
		if aggErr != nil {
			// Drain the channel so upstream stages can finish.
			for range resolvedCh {
			}
			runErr = aggErr
			return
		}
		stats.SetCellCount(int64(len(cells)))
		metrics.CellsCreatedTotal.Add(float64(len(cells)))

		endTime := time.Now()
		store.SaveStageProgress(jobID, "aggregation", "completed", &startTime, &endTime, int64(len(cells)))
		fmt.Printf("📊 Aggregation complete: %d unique cells\n", len(cells))

		fmt.Println("💾 Starting export stage...")
		store.UpdateJobStatus(jobID, "exporting")
		result := ExportCells(jobID, cells, job.Export, deps.OutputDir)
		if result.Success {
			fmt.Printf("✅ Export: %d cells exported to %s\n", result.CellCount, result.Path)
		} else {
			fmt.Printf("❌ Export failed: %s\n", result.Error)
			errorCh <- fmt.Errorf("export failed: %s", result.Error)
		}
	}()

	// Wait for all stages to finish
	wg.Wait()

	// Close errorCh at the very end, then let the logger drain it
	close(errorCh)
	logWg.Wait()

	if runErr != nil {
		return runErr
	}

	if err := store.SaveJobStats(jobID, stats.Snapshot()); err != nil {
		log.Printf("⚠️ Failed to save stats for job %s: %v\n", jobID, err)
	}

	duration := time.Since(start)
	fmt.Printf("🏁 Job %s completed in %v (%d resolved, %d unresolved)\n",
		jobID, duration, stats.Resolved(), stats.Unresolved())
	fmt.Println("🔒 Raw addresses discarded - only cell aggregates retained")

	store.UpdateJobStatus(jobID, "completed")
	metrics.JobsTotal.WithLabelValues("completed").Inc()
	return nil
}
