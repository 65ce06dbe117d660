package main

import (
	"geo-density-pipeline/internal/api"
	"geo-density-pipeline/internal/api/handler"
	"geo-density-pipeline/internal/catalog"
	"geo-density-pipeline/internal/config"
	"geo-density-pipeline/internal/geocode"
	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/internal/pipeline"
	"geo-density-pipeline/internal/store"
	"geo-density-pipeline/pkg/router"
)

// @title Geo Density Pipeline API
// @version 0.1.0
// @description Privacy-preserving surname density aggregation and synthetic heatmap API
// @BasePath /api/v1
func main() {
	cfg := config.FromEnv()

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		panic(err)
	}

	surnames, err := catalog.LoadSurnames(cfg.SurnameCatalog)
	if err != nil {
		panic(err)
	}
	centers, err := catalog.LoadCenters(cfg.CenterCatalog)
	if err != nil {
		panic(err)
	}

	metrics.Register()

	// The static resolver is the demo stand-in; swap in a real geocoding
	// client behind the same interface for production ingestion.
	resolver := geocode.WithRetry(geocode.NewStaticResolver(nil), geocode.DefaultRetryConfig)

	deps := pipeline.Deps{
		Surnames:        surnames,
		Centers:         centers,
		Resolver:        resolver,
		OutputDir:       cfg.OutputDir,
		DefaultCellSize: cfg.DefaultCellSize,
	}

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r, handler.New(deps))

	// Start server
	r.Start(cfg.Addr)
}
