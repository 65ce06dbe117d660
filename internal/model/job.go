package model

// Source represents a record source for an aggregation job
type Source struct {
	Type       string `json:"type"` // csv
	URL        string `json:"url"`  // file path or http(s) URL
	SurnameCol string `json:"surnameCol,omitempty"`
	AddressCol string `json:"addressCol,omitempty"`
}

// Export defines where the aggregated GeoJSON is written
type Export struct {
	File string `json:"file"` // e.g. density.geojson
}

// Workers defines number of workers per stage
type Workers struct {
	Resolve   int `json:"resolve"`
	Aggregate int `json:"aggregate"`
}

// ConcurrencyConfig defines extra concurrency and job options
type ConcurrencyConfig struct {
	Workers           Workers `json:"workers"`
	ChannelBufferSize int     `json:"channelBufferSize"`
	JobTimeout        string  `json:"jobTimeout"` // e.g., "5m"
}

// AggregationJobSpec defines one privacy-cell aggregation run
type AggregationJobSpec struct {
	Sources     []Source          `json:"sources"`
	CellSize    float64           `json:"cellSize"` // degrees; 0 means server default
	Export      *Export           `json:"export,omitempty"`
	Concurrency ConcurrencyConfig `json:"concurrency"`
}

// JobStats summarises one pipeline run. Counts only; no record content.
type JobStats struct {
	RecordsIngested   int64 `json:"records_ingested"`
	RecordsMatched    int64 `json:"records_matched"`
	RecordsUnmatched  int64 `json:"records_unmatched"`
	RecordsResolved   int64 `json:"records_resolved"`
	RecordsUnresolved int64 `json:"records_unresolved"`
	CellCount         int64 `json:"cell_count"`
}
