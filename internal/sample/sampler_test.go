package sample

import (
	"math"
	"math/rand"
	"testing"

	"geo-density-pipeline/internal/catalog"
	"geo-density-pipeline/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSampler(t *testing.T) *Sampler {
	t.Helper()
	surnames, err := catalog.NewSurnames([]model.SurnameEntry{
		{Name: "Miller", Weight: 0.92, Origin: model.OriginOccupational},
		{Name: "Baker", Weight: 0.74, Origin: model.OriginOccupational},
		{Name: "Wilson", Weight: 0.61, Origin: model.OriginPatronymic},
		{Name: "Hill", Weight: 0.48, Origin: model.OriginToponymic},
	})
	require.NoError(t, err)
	centers, err := catalog.NewCenters([]model.LocationCenter{
		{Name: "Downtown", Lat: 40.71, Lng: -74.00, Weight: 0.9, Radius: 0.05},
		{Name: "Uptown", Lat: 40.80, Lng: -73.95, Weight: 0.4, Radius: 0.03},
	})
	require.NoError(t, err)
	return New(surnames, centers)
}

func TestGenerateShape(t *testing.T) {
	s := testSampler(t)
	rng := rand.New(rand.NewSource(11))

	features, err := s.Generate(rng, "", 1000)
	require.NoError(t, err)
	require.Len(t, features, 1000)

	for _, f := range features {
		assert.True(t, f.Point.Valid(), "invalid point %+v", f.Point)
		assert.NotEmpty(t, f.Surname)
		assert.Greater(t, f.Weight, 0.0)
		assert.GreaterOrEqual(t, f.Count, 1)
		assert.Equal(t, int(f.Weight*countScale)+1, f.Count)
	}
}

func TestGenerateSurnameFilter(t *testing.T) {
	s := testSampler(t)
	rng := rand.New(rand.NewSource(12))

	features, err := s.Generate(rng, "wilson", 200)
	require.NoError(t, err)
	require.Len(t, features, 200)
	for _, f := range features {
		assert.Equal(t, "Wilson", f.Surname)
	}
}

func TestGenerateUnknownFilterWidensToCatalogue(t *testing.T) {
	s := testSampler(t)
	rng := rand.New(rand.NewSource(13))

	features, err := s.Generate(rng, "NoSuchName123", 500)
	require.NoError(t, err)
	require.Len(t, features, 500)

	seen := map[string]bool{}
	for _, f := range features {
		seen[f.Surname] = true
	}
	assert.Greater(t, len(seen), 1, "unknown filter should fall back to the whole catalogue")
}

func TestGenerateWeightBounds(t *testing.T) {
	s := testSampler(t)
	rng := rand.New(rand.NewSource(14))

	features, err := s.Generate(rng, "", 2000)
	require.NoError(t, err)

	// combined weight = center * surname * jitter, jitter in [0.5, 1.0)
	for _, f := range features {
		assert.Less(t, f.Weight, 1.0)
		assert.GreaterOrEqual(t, f.Weight, 0.4*0.48*0.5)
	}
}

func TestPointNearStaysNearCenter(t *testing.T) {
	s := testSampler(t)
	rng := rand.New(rand.NewSource(15))
	center := model.LocationCenter{Name: "c", Lat: 40.71, Lng: -74.00, Weight: 0.9, Radius: 0.05}

	for i := 0; i < 5000; i++ {
		p := s.PointNear(rng, center)
		assert.InDelta(t, center.Lat, p.Lat, 10*center.Radius)
		assert.InDelta(t, center.Lng, p.Lng, 15*center.Radius)
	}
}

func TestPointNearLongitudeCorrection(t *testing.T) {
	s := testSampler(t)
	rng := rand.New(rand.NewSource(16))
	// At 60 degrees north, cos(lat) is 0.5, so east-west offsets should be
	// about twice the north-south offsets.
	center := model.LocationCenter{Name: "north", Lat: 60.0, Lng: 10.0, Weight: 0.5, Radius: 0.02}

	var sumLat, sumLng float64
	const n = 20000
	for i := 0; i < n; i++ {
		p := s.PointNear(rng, center)
		sumLat += math.Abs(p.Lat - center.Lat)
		sumLng += math.Abs(p.Lng - center.Lng)
	}
	ratio := sumLng / sumLat
	assert.InDelta(t, 1/math.Cos(center.Lat*math.Pi/180), ratio, 0.25)
}
