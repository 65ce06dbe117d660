package model

import "sort"

// Origin classifies a surname catalogue entry by how the name arose.
type Origin string

const (
	OriginPatronymic   Origin = "patronymic"
	OriginOccupational Origin = "occupational"
	OriginToponymic    Origin = "toponymic"
	OriginOrnamental   Origin = "ornamental"
)

// SurnameEntry is one row of the immutable surname reference catalogue.
// Weight is a selection weight in (0,1]; names are unique case-insensitively.
type SurnameEntry struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Origin Origin  `json:"origin"`
}

// LocationCenter is a population-density anchor for the synthetic sampler.
type LocationCenter struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Weight float64 `json:"weight"` // in (0,1]
	Radius float64 `json:"radius"` // degrees, > 0
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is inside the lat/lng value ranges.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// RawRecord is a pipeline-internal record as read from a record source.
// It is ephemeral: its lifetime ends at coordinate resolution, it must
// never be persisted, and Address must never appear in any log or output.
type RawRecord struct {
	Surname string
	Address string
}

// MatchedRecord is a RawRecord whose surname matched the catalogue,
// carrying the catalogue weight for that surname.
type MatchedRecord struct {
	Surname string
	Address string
	Weight  float64
}

// ResolvedRecord is the only shape that reaches the aggregator. There is
// deliberately no address field; the raw address is dropped at resolution.
type ResolvedRecord struct {
	Surname string
	Point   GeoPoint
	Weight  float64
}

// PrivacyCell is the aggregate for one grid square. It stores the shared
// centroid and per-surname statistics, never the coordinates or addresses
// of any individual record.
type PrivacyCell struct {
	CellID         string             `json:"cell_id"`
	Centroid       GeoPoint           `json:"centroid"`
	SurnameCounts  map[string]int     `json:"surname_counts"`
	SurnameWeights map[string]float64 `json:"-"`
	TotalCount     int                `json:"total_count"`
}

// WeightedSum folds count*weight over surnames in sorted key order, so the
// value is identical no matter what order records were accumulated in.
func (c *PrivacyCell) WeightedSum() float64 {
	names := make([]string, 0, len(c.SurnameCounts))
	for name := range c.SurnameCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	sum := 0.0
	for _, name := range names {
		sum += float64(c.SurnameCounts[name]) * c.SurnameWeights[name]
	}
	return sum
}

// SyntheticFeature is one fabricated point from the sampler. It is derived
// from the reference catalogues only, never from a real record.
type SyntheticFeature struct {
	Point   GeoPoint `json:"point"`
	Surname string   `json:"surname"`
	Weight  float64  `json:"weight"`
	Count   int      `json:"count"` // always >= 1
}
