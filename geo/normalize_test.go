package geo_test

import (
	"testing"

	"github.com/markdrayton/geokit/geo"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLat(t *testing.T) {
	assert.InDelta(t, 90.0, geo.NormalizeLat(100), 0)
	assert.InDelta(t, -90.0, geo.NormalizeLat(-100), 0)
	assert.InDelta(t, 45.5, geo.NormalizeLat(45.5), 0)
	assert.InDelta(t, 90.0, geo.NormalizeLat(90), 0)
}

func TestNormalizeLng(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{180, 180},
		{-180, 180},
		{-190, 170},
		{190, -170},
		{0, 0},
		{-10, -10},
		{179.5, 179.5},
		{360, 0},
		{540, 180},
		{-725, -5},
		{1000, -80},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, geo.NormalizeLng(tt.in), 1e-9, "NormalizeLng(%v)", tt.in)
	}
}

func TestNormalizeLng_Range(t *testing.T) {
	for l := -1000.0; l <= 1000; l += 7.3 {
		got := geo.NormalizeLng(l)
		assert.GreaterOrEqual(t, got, -180.0)
		assert.LessOrEqual(t, got, 180.0)
	}
}

func TestNormalizeBearing(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 359},
		{361, 1},
		{360, 0},
		{0, 0},
		{-725, 355},
		{725, 5},
		{-3600.5, 359.5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, geo.NormalizeBearing(tt.in), 1e-9, "NormalizeBearing(%v)", tt.in)
	}
}

func TestNormalizeBearing_Periodic(t *testing.T) {
	for _, b := range []float64{-721.25, -90, 0, 12.5, 359.75, 1080.5} {
		got := geo.NormalizeBearing(b)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
		for k := -3; k <= 3; k++ {
			assert.InDelta(t, got, geo.NormalizeBearing(b+360*float64(k)), 1e-9)
		}
	}
}
