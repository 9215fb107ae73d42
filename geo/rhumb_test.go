package geo_test

import (
	"math"
	"testing"

	"github.com/markdrayton/geokit/geo"
	"github.com/stretchr/testify/assert"
)

var (
	dover  = geo.LatLng{51.127, 1.338}
	calais = geo.LatLng{50.964, 1.853}
)

func TestRhumbDistance(t *testing.T) {
	assert.InDelta(t, 40.3191, geo.RhumbDistance(dover, calais), 1e-4)
	assert.InDelta(t, 0, geo.RhumbDistance(dover, dover), 0)

	// Along the equator the rhumb line is the great circle.
	assert.InDelta(t, 6372.8*math.Pi/2, geo.RhumbDistance(geo.LatLng{0, 0}, geo.LatLng{0, 90}), 1e-6)

	// The short way round, not 358 degrees of longitude.
	assert.InDelta(t, 6372.8*math.Pi/90, geo.RhumbDistance(geo.LatLng{0, 179}, geo.LatLng{0, -179}), 1e-6)
	assert.InDelta(t, geo.RhumbDistance(geo.LatLng{0, 179}, geo.LatLng{0, -179}),
		geo.RhumbDistance(geo.LatLng{0, -179}, geo.LatLng{0, 179}), 1e-9)
}

func TestRhumbDistance_LongerThanGreatCircle(t *testing.T) {
	from := geo.LatLng{50, -5}
	to := geo.LatLng{58, 40}
	assert.Greater(t, geo.RhumbDistance(from, to), geo.Distance(from, to))
}

func TestRhumbBearingTo(t *testing.T) {
	tests := []struct {
		name  string
		start geo.LatLng
		dest  geo.LatLng
		want  float64
	}{
		{"Dover to Calais", dover, calais, 116.7219},
		{"due north", geo.LatLng{0, 0}, geo.LatLng{10, 0}, 0},
		{"due south", geo.LatLng{10, 0}, geo.LatLng{0, 0}, 180},
		{"due east across antimeridian", geo.LatLng{0, 179}, geo.LatLng{0, -179}, 90},
		{"due west across antimeridian", geo.LatLng{0, -179}, geo.LatLng{0, 179}, 270},
		{"same latitude west", geo.LatLng{40, 10}, geo.LatLng{40, 0}, 270},
		{"from north pole", geo.LatLng{90, 0}, geo.LatLng{10, 10}, 0},
		{"to south pole", geo.LatLng{10, 10}, geo.LatLng{-90, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.RhumbBearingTo(tt.start, tt.dest)
			assert.InDelta(t, tt.want, got, 1e-4)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}

func TestRhumbDestinationPoint(t *testing.T) {
	tests := []struct {
		name    string
		start   geo.LatLng
		bearing float64
		km      float64
		want    geo.LatLng
	}{
		{"Dover towards Calais", dover, 116.7, 40.31, geo.LatLng{50.9642, 1.8530}},
		{"due east on the equator", geo.LatLng{0, 0}, 90, 6372.8 * math.Pi / 2, geo.LatLng{0, 90}},
		{"same latitude", geo.LatLng{45, 0}, 90, 100, geo.LatLng{45, 1.2715}},
		{"wraps the antimeridian", geo.LatLng{0, 179}, 90, 6372.8 * math.Pi / 90, geo.LatLng{0, -179}},
		{"reflects over the north pole", geo.LatLng{80, 10}, 0, 6372.8 * math.Pi / 9, geo.LatLng{80, 10}},
		{"reflects over the south pole", geo.LatLng{-85, 10}, 180, 6372.8 * math.Pi / 18, geo.LatLng{-85, 10}},
		{"zero distance", dover, 42, 0, dover},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.RhumbDestinationPoint(tt.start, tt.bearing, tt.km)
			assert.InDelta(t, tt.want.Lat(), got.Lat(), 1e-4)
			assert.InDelta(t, tt.want.Lng(), got.Lng(), 1e-4)
		})
	}
}

func TestRhumbDestinationPoint_BearingRoundTrip(t *testing.T) {
	tests := []struct {
		start   geo.LatLng
		bearing float64
		km      float64
	}{
		{dover, 116.7, 40.31},
		{geo.LatLng{10, 20}, 45, 500},
		{geo.LatLng{-30, 150}, 200, 1000},
		{geo.LatLng{0, 179}, 90, 300},
		{geo.LatLng{40, -170}, 270, 800},
		{geo.LatLng{-60, -10}, 135, 2500},
		{geo.LatLng{20, 170}, 60, 1500},
	}

	for _, tt := range tests {
		dest := geo.RhumbDestinationPoint(tt.start, tt.bearing, tt.km)
		assert.InDelta(t, tt.bearing, geo.RhumbBearingTo(tt.start, dest), 1e-6, "bearing from %v to %v", tt.start, dest)
		assert.InDelta(t, tt.km, geo.RhumbDistance(tt.start, dest), 1e-6, "distance from %v to %v", tt.start, dest)
	}
}
