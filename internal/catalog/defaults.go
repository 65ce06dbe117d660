package catalog

import "geo-density-pipeline/internal/model"

// DefaultSurnames is the built-in demo surname catalogue. Weights are
// stylised selection weights for the synthetic sampler, not measurements.
var DefaultSurnames = []model.SurnameEntry{
	{Name: "Miller", Weight: 0.95, Origin: model.OriginOccupational},
	{Name: "Baker", Weight: 0.92, Origin: model.OriginOccupational},
	{Name: "Cooper", Weight: 0.90, Origin: model.OriginOccupational},
	{Name: "Fisher", Weight: 0.88, Origin: model.OriginOccupational},
	{Name: "Mason", Weight: 0.88, Origin: model.OriginOccupational},
	{Name: "Turner", Weight: 0.87, Origin: model.OriginOccupational},
	{Name: "Weaver", Weight: 0.86, Origin: model.OriginOccupational},
	{Name: "Carter", Weight: 0.85, Origin: model.OriginOccupational},
	{Name: "Sawyer", Weight: 0.85, Origin: model.OriginOccupational},
	{Name: "Shepherd", Weight: 0.84, Origin: model.OriginOccupational},
	{Name: "Gardner", Weight: 0.82, Origin: model.OriginOccupational},
	{Name: "Fletcher", Weight: 0.82, Origin: model.OriginOccupational},
	{Name: "Tanner", Weight: 0.80, Origin: model.OriginOccupational},
	{Name: "Wilson", Weight: 0.78, Origin: model.OriginPatronymic},
	{Name: "Harrison", Weight: 0.78, Origin: model.OriginPatronymic},
	{Name: "Anderson", Weight: 0.76, Origin: model.OriginPatronymic},
	{Name: "Richardson", Weight: 0.75, Origin: model.OriginPatronymic},
	{Name: "Robertson", Weight: 0.75, Origin: model.OriginPatronymic},
	{Name: "Peterson", Weight: 0.74, Origin: model.OriginPatronymic},
	{Name: "Jameson", Weight: 0.72, Origin: model.OriginPatronymic},
	{Name: "Hill", Weight: 0.70, Origin: model.OriginToponymic},
	{Name: "Brooks", Weight: 0.70, Origin: model.OriginToponymic},
	{Name: "Ford", Weight: 0.68, Origin: model.OriginToponymic},
	{Name: "Marsh", Weight: 0.68, Origin: model.OriginToponymic},
	{Name: "Dale", Weight: 0.66, Origin: model.OriginToponymic},
	{Name: "Holt", Weight: 0.66, Origin: model.OriginToponymic},
	{Name: "Ashford", Weight: 0.65, Origin: model.OriginToponymic},
	{Name: "Whitfield", Weight: 0.64, Origin: model.OriginToponymic},
	{Name: "Underwood", Weight: 0.62, Origin: model.OriginToponymic},
	{Name: "Greenwood", Weight: 0.62, Origin: model.OriginOrnamental},
	{Name: "Silverstone", Weight: 0.60, Origin: model.OriginOrnamental},
	{Name: "Fairweather", Weight: 0.58, Origin: model.OriginOrnamental},
}

// DefaultCenters is the built-in demo location-center catalogue: a handful
// of US metro anchors with stylised weights and radii in degrees.
var DefaultCenters = []model.LocationCenter{
	{Name: "Manhattan", Lat: 40.7128, Lng: -74.0060, Weight: 1.0, Radius: 0.15},
	{Name: "Brooklyn", Lat: 40.6501, Lng: -73.9496, Weight: 1.0, Radius: 0.12},
	{Name: "Chicago", Lat: 41.8781, Lng: -87.6298, Weight: 0.95, Radius: 0.12},
	{Name: "Philadelphia", Lat: 39.9526, Lng: -75.1652, Weight: 0.90, Radius: 0.10},
	{Name: "Boston", Lat: 42.3601, Lng: -71.0589, Weight: 0.88, Radius: 0.08},
	{Name: "Washington", Lat: 38.9072, Lng: -77.0369, Weight: 0.85, Radius: 0.08},
	{Name: "Miami", Lat: 25.7617, Lng: -80.1918, Weight: 0.85, Radius: 0.10},
	{Name: "Atlanta", Lat: 33.7490, Lng: -84.3880, Weight: 0.80, Radius: 0.09},
	{Name: "Cleveland", Lat: 41.4993, Lng: -81.6944, Weight: 0.75, Radius: 0.07},
	{Name: "Baltimore", Lat: 39.2904, Lng: -76.6122, Weight: 0.75, Radius: 0.06},
	{Name: "Denver", Lat: 39.7392, Lng: -104.9903, Weight: 0.70, Radius: 0.08},
	{Name: "Seattle", Lat: 47.6062, Lng: -122.3321, Weight: 0.70, Radius: 0.08},
	{Name: "Los Angeles", Lat: 34.0522, Lng: -118.2437, Weight: 0.92, Radius: 0.14},
	{Name: "San Francisco", Lat: 37.7749, Lng: -122.4194, Weight: 0.85, Radius: 0.08},
}
