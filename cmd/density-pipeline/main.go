package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"geo-density-pipeline/internal/catalog"
	"geo-density-pipeline/internal/config"
	"geo-density-pipeline/internal/geocode"
	"geo-density-pipeline/internal/metrics"
	"geo-density-pipeline/internal/model"
	"geo-density-pipeline/internal/pipeline"
	"geo-density-pipeline/internal/store"

	"github.com/google/uuid"
)

// Batch entry point: run one aggregation job over a records CSV and exit.
func main() {
	var (
		recordsPath = flag.String("records", "", "input records CSV (surname,address columns)")
		surnameCol  = flag.String("surname-col", "", "surname column name (default: surname)")
		addressCol  = flag.String("address-col", "", "address column name(s), comma-separated (default: address)")
		geocodes    = flag.String("geocodes", "", "optional JSON file mapping address -> {lat, lng} for the static resolver")
		cellSize    = flag.Float64("cell-size", 0, "privacy cell size in degrees (default from env, 0.005)")
		outFile     = flag.String("out", "density.geojson", "output GeoJSON file name")
	)
	flag.Parse()

	if *recordsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -records is required")
		flag.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(*recordsPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: input file not found: %s\n", *recordsPath)
		os.Exit(1)
	}

	cfg := config.FromEnv()

	if err := store.InitDB(cfg.DBPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open store: %v\n", err)
		os.Exit(1)
	}

	surnames, err := catalog.LoadSurnames(cfg.SurnameCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	centers, err := catalog.LoadCenters(cfg.CenterCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	resolver, err := buildResolver(*geocodes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	metrics.Register()

	job := model.AggregationJobSpec{
		Sources: []model.Source{{
			Type:       "csv",
			URL:        *recordsPath,
			SurnameCol: *surnameCol,
			AddressCol: *addressCol,
		}},
		CellSize: *cellSize,
		Export:   &model.Export{File: *outFile},
	}

	jobID := uuid.New().String()
	if err := store.SaveJob(jobID, job); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save job: %v\n", err)
		os.Exit(1)
	}

	deps := pipeline.Deps{
		Surnames:        surnames,
		Centers:         centers,
		Resolver:        resolver,
		OutputDir:       cfg.OutputDir,
		DefaultCellSize: cfg.DefaultCellSize,
	}

	if err := pipeline.Run(context.Background(), jobID, job, deps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: pipeline failed: %v\n", err)
		os.Exit(1)
	}
}

// buildResolver loads the static geocode table when one is given;
// otherwise every record counts as unresolved, which still exercises the
// full pipeline without a geocoding provider.
func buildResolver(path string) (geocode.Resolver, error) {
	if path == "" {
		return geocode.NewStaticResolver(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode table: %w", err)
	}
	table := make(map[string]model.GeoPoint)
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode geocode table: %w", err)
	}
	return geocode.WithRetry(geocode.NewStaticResolver(table), geocode.DefaultRetryConfig), nil
}
