package api

import (
	"time"

	_ "geo-density-pipeline/docs" // generated swagger docs
	"geo-density-pipeline/internal/api/handler"
	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RegisterRoutes wires the API surface onto the router.
func RegisterRoutes(r *router.Router, h *handler.DensityHandler) {
	r.GET("/api/v1/health", h.Health)
	r.GET("/api/v1/surnames", h.GetSurnames)
	r.GET("/api/v1/heatmap", h.GetHeatmap)
	r.GET("/api/v1/stats", h.GetStats)

	r.POST("/api/v1/jobs", h.CreateJob)
	r.GET("/api/v1/jobs", h.ListJobs)
	// More specific routes first
	r.GET("/api/v1/jobs/*/result", h.GetJobResult)
	r.GET("/api/v1/jobs/*/errors", h.GetJobErrors)
	r.GET("/api/v1/jobs/*/progress", h.GetJobProgress)
	// Generic job route last
	r.GET("/api/v1/jobs/*", h.GetJob)

	r.Mount("/metrics", metrics.Handler())
	r.Mount("/swagger", httpSwagger.WrapHandler)

	r.SetObserver(func(method, path string, status int, d time.Duration) {
		metrics.RequestDurationMs.Observe(float64(d.Milliseconds()))
	})
}
