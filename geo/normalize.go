package geo

import (
	"math"

	"github.com/markdrayton/geokit/mathx"
)

// NormalizeLat caps lat to [-90, 90]. It does not wrap over the pole.
func NormalizeLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// NormalizeLng wraps lng to [-180, 180]. 180 stays 180 and -180 becomes 180.
func NormalizeLng(lng float64) float64 {
	l := mathx.Fmod(lng, 360)
	switch {
	case l == 180:
		return 180
	case l < -180:
		return l + 360
	case l > 180:
		return l - 360
	}
	return l
}

// NormalizeBearing wraps b to [0, 360).
func NormalizeBearing(b float64) float64 {
	return mathx.Fmod(mathx.Fmod(b, 360)+360, 360)
}
