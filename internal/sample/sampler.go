// Package sample implements the weighted spatial sampler: synthetic point
// clouds whose local density follows the configured surname and location
// weights, with no dependency on real records.
package sample

import (
	"math"
	"math/rand"

	"geo-density-pipeline/internal/catalog"
	"geo-density-pipeline/internal/model"
)

// countScale turns a combined weight into a stylised per-point count.
const countScale = 50

// Sampler draws synthetic features from two immutable catalogues. It holds
// no per-draw state, so concurrent Generate calls only need separate RNGs.
type Sampler struct {
	surnames *catalog.Surnames
	centers  *catalog.Centers
}

// New creates a sampler over the given catalogues.
func New(surnames *catalog.Surnames, centers *catalog.Centers) *Sampler {
	return &Sampler{surnames: surnames, centers: centers}
}

// PointNear draws a point within roughly the center's radius. The radial
// magnitude is radius * sqrt(-2 ln u) * 0.5, a half-scaled Gaussian
// distance that concentrates mass near the center with a long tail. The
// longitude offset is divided by cos(lat) so east-west spread stays
// visually round away from the equator.
func (s *Sampler) PointNear(rng *rand.Rand, center model.LocationCenter) model.GeoPoint {
	angle := rng.Float64() * 2 * math.Pi
	// 1-Float64() is in (0,1], keeping the log finite.
	u := 1 - rng.Float64()
	r := center.Radius * math.Sqrt(-2*math.Log(u)) * 0.5

	return model.GeoPoint{
		Lat: center.Lat + r*math.Cos(angle),
		Lng: center.Lng + r*math.Sin(angle)/math.Cos(center.Lat*math.Pi/180),
	}
}

// Generate draws count independent synthetic features. A surname filter
// that case-insensitively matches one catalogue entry narrows the draw to
// that entry; an unknown filter silently widens back to the full catalogue,
// so a heatmap is always non-empty.
func (s *Sampler) Generate(rng *rand.Rand, surnameFilter string, count int) ([]model.SyntheticFeature, error) {
	surnames := s.surnames.All()
	if surnameFilter != "" {
		if entry, ok := s.surnames.Lookup(surnameFilter); ok {
			surnames = []model.SurnameEntry{entry}
		}
	}
	centers := s.centers.All()

	features := make([]model.SyntheticFeature, 0, count)
	for i := 0; i < count; i++ {
		center, err := ChooseWeighted(rng, centers, func(c model.LocationCenter) float64 { return c.Weight })
		if err != nil {
			return nil, err
		}
		point := s.PointNear(rng, center)

		surname, err := ChooseWeighted(rng, surnames, func(e model.SurnameEntry) float64 { return e.Weight })
		if err != nil {
			return nil, err
		}

		weight := center.Weight * surname.Weight * (0.5 + rng.Float64()*0.5)
		features = append(features, model.SyntheticFeature{
			Point:   point,
			Surname: surname.Name,
			Weight:  weight,
			Count:   int(weight*countScale) + 1,
		})
	}
	return features, nil
}
