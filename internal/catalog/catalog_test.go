package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"geo-density-pipeline/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSurnamesValidation(t *testing.T) {
	cases := []struct {
		name    string
		entries []model.SurnameEntry
		wantErr string
	}{
		{
			name:    "empty",
			entries: nil,
			wantErr: "empty catalogue",
		},
		{
			name:    "empty name",
			entries: []model.SurnameEntry{{Name: "", Weight: 0.5}},
			wantErr: "empty name",
		},
		{
			name:    "zero weight",
			entries: []model.SurnameEntry{{Name: "Miller", Weight: 0}},
			wantErr: "outside (0,1]",
		},
		{
			name:    "weight above one",
			entries: []model.SurnameEntry{{Name: "Miller", Weight: 1.5}},
			wantErr: "outside (0,1]",
		},
		{
			name: "duplicate differs only by case",
			entries: []model.SurnameEntry{
				{Name: "Miller", Weight: 0.9},
				{Name: "MILLER", Weight: 0.5},
			},
			wantErr: "duplicate surname",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSurnames(tc.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSurnamesLookupCaseInsensitive(t *testing.T) {
	s, err := NewSurnames([]model.SurnameEntry{
		{Name: "Miller", Weight: 0.9, Origin: model.OriginOccupational},
		{Name: "Hill", Weight: 0.4, Origin: model.OriginToponymic},
	})
	require.NoError(t, err)

	for _, query := range []string{"Miller", "miller", "MILLER", "mIlLeR"} {
		e, ok := s.Lookup(query)
		require.True(t, ok, "lookup %q", query)
		assert.Equal(t, "Miller", e.Name)
		assert.Equal(t, 0.9, e.Weight)
	}

	_, ok := s.Lookup("Nobody")
	assert.False(t, ok)
}

func TestSurnamesEntriesSortedByWeight(t *testing.T) {
	s, err := NewSurnames([]model.SurnameEntry{
		{Name: "Hill", Weight: 0.4},
		{Name: "Miller", Weight: 0.9},
		{Name: "Baker", Weight: 0.7},
	})
	require.NoError(t, err)

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Miller", entries[0].Name)
	assert.Equal(t, "Baker", entries[1].Name)
	assert.Equal(t, "Hill", entries[2].Name)

	// Entries returns a copy; mutating it must not touch the catalogue.
	entries[0].Weight = 0
	again, _ := s.Lookup("Miller")
	assert.Equal(t, 0.9, again.Weight)
}

func TestNewCentersValidation(t *testing.T) {
	valid := model.LocationCenter{Name: "Downtown", Lat: 40.7, Lng: -74.0, Weight: 0.9, Radius: 0.05}

	cases := []struct {
		name   string
		mutate func(model.LocationCenter) model.LocationCenter
	}{
		{"bad latitude", func(c model.LocationCenter) model.LocationCenter { c.Lat = 95; return c }},
		{"bad longitude", func(c model.LocationCenter) model.LocationCenter { c.Lng = -190; return c }},
		{"zero weight", func(c model.LocationCenter) model.LocationCenter { c.Weight = 0; return c }},
		{"weight above one", func(c model.LocationCenter) model.LocationCenter { c.Weight = 2; return c }},
		{"zero radius", func(c model.LocationCenter) model.LocationCenter { c.Radius = 0; return c }},
		{"negative radius", func(c model.LocationCenter) model.LocationCenter { c.Radius = -1; return c }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCenters([]model.LocationCenter{tc.mutate(valid)})
			assert.Error(t, err)
		})
	}

	_, err := NewCenters(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	c, err := NewCenters([]model.LocationCenter{valid})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestDefaultCataloguesAreValid(t *testing.T) {
	s, err := LoadSurnames("")
	require.NoError(t, err)
	assert.Greater(t, s.Len(), 0)

	c, err := LoadCenters("")
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)
}

func TestLoadSurnamesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surnames.json")
	data := `[{"name":"Weaver","weight":0.8,"origin":"occupational"},{"name":"Brooks","weight":0.3,"origin":"toponymic"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadSurnames(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	e, ok := s.Lookup("weaver")
	require.True(t, ok)
	assert.Equal(t, model.OriginOccupational, e.Origin)
}

func TestLoadSurnamesErrors(t *testing.T) {
	_, err := LoadSurnames(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadSurnames(path)
	assert.Error(t, err)
}
