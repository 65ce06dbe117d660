package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"geo-density-pipeline/internal/geojson"
	"geo-density-pipeline/internal/grid"
	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/internal/model"
	"geo-density-pipeline/internal/pipeline"
	"geo-density-pipeline/internal/sample"
	"geo-density-pipeline/internal/store"
	"geo-density-pipeline/pkg/utils"

	"github.com/google/uuid"
)

const (
	defaultHeatmapPoints = 15000
	minHeatmapPoints     = 100
	maxHeatmapPoints     = 50000
)

// DensityHandler serves the density API. The sampler and catalogues are
// fixed at construction; aggregation jobs run against the injected
// pipeline dependencies.
type DensityHandler struct {
	deps    pipeline.Deps
	sampler *sample.Sampler
}

// New builds the handler set.
func New(deps pipeline.Deps) *DensityHandler {
	return &DensityHandler{
		deps:    deps,
		sampler: sample.New(deps.Surnames, deps.Centers),
	}
}

// Health reports service liveness
// @Summary Health check
// @Description Report service status
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router /health [get]
func (h *DensityHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "ok",
		"service": "geo-density-pipeline",
	})
}

// GetSurnames lists the surname catalogue
// @Summary List surname catalogue
// @Description Get all tracked surnames with selection weights, weight-descending
// @Tags catalogue
// @Produce json
// @Success 200 {array} model.SurnameEntry "Surname catalogue"
// @Router /surnames [get]
func (h *DensityHandler) GetSurnames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.deps.Surnames.Entries())
}

// GetHeatmap generates a synthetic density point cloud
// @Summary Synthetic heatmap
// @Description Generate a synthetic GeoJSON point cloud; optionally filter by surname
// @Tags heatmap
// @Produce json
// @Param surname query string false "Filter by specific surname"
// @Param limit query int false "Number of points to generate (100-50000, default 15000)"
// @Success 200 {object} geojson.FeatureCollection "Heatmap GeoJSON"
// @Failure 500 {object} map[string]interface{} "Sampler configuration error"
// @Router /heatmap [get]
func (h *DensityHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	surname := r.URL.Query().Get("surname")
	limit := utils.ParseIntInRange(r.URL.Query().Get("limit"), defaultHeatmapPoints, minHeatmapPoints, maxHeatmapPoints)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	features, err := h.sampler.Generate(rng, surname, limit)
	if err != nil {
		http.Error(w, "Sampler configuration error", http.StatusInternalServerError)
		return
	}
	metrics.SyntheticPointsTotal.Add(float64(len(features)))

	writeJSON(w, geojson.FromSynthetic(features))
}

// GetStats reports aggregate statistics
// @Summary Aggregate statistics
// @Description Totals across the catalogues and all completed jobs
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /stats [get]
func (h *DensityHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	totals, err := store.Totals()
	if err != nil {
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"total_surnames": h.deps.Surnames.Len(),
		"total_centers":  h.deps.Centers.Len(),
		"total_jobs":     totals["jobs"],
		"total_cells":    totals["cells"],
		"total_resolved": totals["records_resolved"],
	})
}

// CreateJob creates a new aggregation job
// @Summary Create an aggregation job
// @Description Create and start a privacy-cell aggregation job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body model.AggregationJobSpec true "Job configuration"
// @Success 200 {object} map[string]interface{} "Job created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /jobs [post]
func (h *DensityHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var job model.AggregationJobSpec
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if len(job.Sources) == 0 {
		http.Error(w, "At least one source is required", http.StatusBadRequest)
		return
	}
	if job.CellSize != 0 {
		if _, _, err := grid.CellFor(model.GeoPoint{}, job.CellSize); errors.Is(err, grid.ErrInvalidCellSize) {
			http.Error(w, "Invalid cell size", http.StatusBadRequest)
			return
		}
	}

	jobID := uuid.New().String()

	if err := store.SaveJob(jobID, job); err != nil {
		http.Error(w, "Failed to save job", http.StatusInternalServerError)
		return
	}

	// Start pipeline asynchronously
	ctx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(job.Concurrency.JobTimeout))
	go func() {
		defer cancel()
		if err := pipeline.Run(ctx, jobID, job, h.deps); err != nil {
			store.SaveJobError(jobID, err)
		}
	}()

	writeJSON(w, map[string]interface{}{
		"message":   "Aggregation job created successfully!",
		"jobID":     jobID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	})
}

// ListJobs retrieves all aggregation jobs
// @Summary List jobs
// @Description Get all aggregation jobs with their current status
// @Tags jobs
// @Produce json
// @Success 200 {array} map[string]interface{} "List of jobs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /jobs [get]
func (h *DensityHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListJobs()
	if err != nil {
		http.Error(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, jobs)
}

// GetJob retrieves a specific job
// @Summary Get job
// @Description Retrieve spec, status and stats of a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job details"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /jobs/{id} [get]
func (h *DensityHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(r.URL.Path)
	if !ok {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	job, err := store.GetJob(jobID)
	if err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}
	writeJSON(w, job)
}

// GetJobResult returns the aggregated GeoJSON for a completed job
// @Summary Get job result
// @Description GeoJSON FeatureCollection of privacy-cell aggregates
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} geojson.FeatureCollection "Aggregate GeoJSON"
// @Failure 404 {object} map[string]interface{} "No result for job"
// @Router /jobs/{id}/result [get]
func (h *DensityHandler) GetJobResult(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(r.URL.Path)
	if !ok {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	rows, err := store.GetCells(jobID)
	if err != nil || len(rows) == 0 {
		http.Error(w, "No result for job", http.StatusNotFound)
		return
	}

	features := make([]geojson.Feature, 0, len(rows))
	for _, row := range rows {
		features = append(features, geojson.CellFeature(row.CellID, row.Centroid, row.TotalCount, row.WeightedSum, row.SurnameCounts))
	}
	writeJSON(w, geojson.FeatureCollection{Type: "FeatureCollection", Features: features})
}

// GetJobErrors returns recorded errors for a job
// @Summary Get job errors
// @Description Errors recorded during a job run
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {array} map[string]interface{} "Job errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /jobs/{id}/errors [get]
func (h *DensityHandler) GetJobErrors(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(r.URL.Path)
	if !ok {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	errs, err := store.GetJobErrors(jobID)
	if err != nil {
		http.Error(w, "Failed to fetch errors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, errs)
}

// GetJobProgress returns stage progress for a job
// @Summary Get job progress
// @Description Per-stage progress records for a job run
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {array} map[string]interface{} "Stage progress"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /jobs/{id}/progress [get]
func (h *DensityHandler) GetJobProgress(w http.ResponseWriter, r *http.Request) {
	jobID, ok := jobIDFromPath(r.URL.Path)
	if !ok {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	stages, err := store.GetStageProgress(jobID)
	if err != nil {
		http.Error(w, "Failed to fetch progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stages)
}

// jobIDFromPath extracts the job id segment from /api/v1/jobs/{id}[/...].
func jobIDFromPath(path string) (string, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	// api / v1 / jobs / {id} [/ sub]
	if len(segments) < 4 || segments[2] != "jobs" {
		return "", false
	}
	if segments[3] == "" {
		return "", false
	}
	return segments[3], true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
