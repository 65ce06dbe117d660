package pipeline

import (
	"encoding/json"
	"os"
	"time"

	"geo-density-pipeline/internal/geojson"
	"geo-density-pipeline/internal/model"
	"geo-density-pipeline/internal/store"
	"geo-density-pipeline/pkg/utils"
)

// ExportResult represents the result of an export operation
type ExportResult struct {
	Type       string    `json:"type"` // "geojson"
	Path       string    `json:"path"`
	CellCount  int       `json:"cell_count"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	ExportedAt time.Time `json:"exported_at"`
}

// ExportCells writes the cell aggregates to a GeoJSON file in the job's
// output directory and persists the rows to the store. By this point the
// data contains only centroids and per-surname counts; this is the only
// durable output of a run.
func ExportCells(jobID string, cells map[string]*model.PrivacyCell, export *model.Export, outputDir string) ExportResult {
	result := ExportResult{
		Type:       "geojson",
		CellCount:  len(cells),
		ExportedAt: time.Now().UTC(),
	}

	fileName := "density.geojson"
	if export != nil && export.File != "" {
		fileName = export.File
	}

	om := utils.NewOutputManager(outputDir)
	path, err := om.GetOutputFilePath(jobID, fileName)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Path = path

	collection := geojson.FromCells(cells)
	data, err := json.Marshal(collection)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		result.Error = err.Error()
		return result
	}

	if err := store.SaveCells(jobID, cells); err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	return result
}
