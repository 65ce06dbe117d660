package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"geo-density-pipeline/internal/model"
)

// Configuration errors. These are programming/config errors and are fatal
// at load time, unlike runtime data conditions which are skipped.
var (
	ErrEmptyCatalog = fmt.Errorf("catalog: empty catalogue")
)

// Surnames is an immutable surname reference catalogue. Entries are
// validated once at construction and never mutated afterwards.
type Surnames struct {
	entries []model.SurnameEntry
	byName  map[string]model.SurnameEntry // lowercased name -> entry
}

// NewSurnames validates and builds a surname catalogue.
func NewSurnames(entries []model.SurnameEntry) (*Surnames, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	byName := make(map[string]model.SurnameEntry, len(entries))
	kept := make([]model.SurnameEntry, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog: surname entry with empty name")
		}
		if e.Weight <= 0 || e.Weight > 1 {
			return nil, fmt.Errorf("catalog: surname %q weight %v outside (0,1]", e.Name, e.Weight)
		}
		key := strings.ToLower(e.Name)
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("catalog: duplicate surname %q", e.Name)
		}
		byName[key] = e
		kept = append(kept, e)
	}

	return &Surnames{entries: kept, byName: byName}, nil
}

// Entries returns a copy of the catalogue, weight-descending.
func (s *Surnames) Entries() []model.SurnameEntry {
	out := make([]model.SurnameEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out
}

// All returns the catalogue in load order. Callers must not mutate it.
func (s *Surnames) All() []model.SurnameEntry {
	return s.entries
}

// Len returns the number of entries.
func (s *Surnames) Len() int {
	return len(s.entries)
}

// Lookup finds an entry by name, case-insensitively.
func (s *Surnames) Lookup(name string) (model.SurnameEntry, bool) {
	e, ok := s.byName[strings.ToLower(name)]
	return e, ok
}

// Centers is an immutable location-center catalogue.
type Centers struct {
	entries []model.LocationCenter
}

// NewCenters validates and builds a location-center catalogue.
func NewCenters(entries []model.LocationCenter) (*Centers, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	for _, c := range entries {
		pt := model.GeoPoint{Lat: c.Lat, Lng: c.Lng}
		if !pt.Valid() {
			return nil, fmt.Errorf("catalog: center %q outside coordinate ranges", c.Name)
		}
		if c.Weight <= 0 || c.Weight > 1 {
			return nil, fmt.Errorf("catalog: center %q weight %v outside (0,1]", c.Name, c.Weight)
		}
		if c.Radius <= 0 {
			return nil, fmt.Errorf("catalog: center %q radius %v must be > 0", c.Name, c.Radius)
		}
	}

	kept := make([]model.LocationCenter, len(entries))
	copy(kept, entries)
	return &Centers{entries: kept}, nil
}

// All returns the catalogue in load order. Callers must not mutate it.
func (c *Centers) All() []model.LocationCenter {
	return c.entries
}

// Len returns the number of entries.
func (c *Centers) Len() int {
	return len(c.entries)
}

// LoadSurnames reads a surname catalogue from a JSON file; an empty path
// falls back to the built-in demo catalogue.
func LoadSurnames(path string) (*Surnames, error) {
	if path == "" {
		return NewSurnames(DefaultSurnames)
	}
	var entries []model.SurnameEntry
	if err := loadJSON(path, &entries); err != nil {
		return nil, err
	}
	return NewSurnames(entries)
}

// LoadCenters reads a location-center catalogue from a JSON file; an empty
// path falls back to the built-in demo catalogue.
func LoadCenters(path string) (*Centers, error) {
	if path == "" {
		return NewCenters(DefaultCenters)
	}
	var entries []model.LocationCenter
	if err := loadJSON(path, &entries); err != nil {
		return nil, err
	}
	return NewCenters(entries)
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("catalog: failed to decode %s: %w", path, err)
	}
	return nil
}
