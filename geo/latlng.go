// Package geo implements spherical-earth formulas over latitude/longitude
// pairs: great-circle and rhumb-line navigation, coordinate normalization and
// axis-aligned bounding boxes that may cross the antimeridian.
//
// All angles are degrees unless a function says otherwise. Every function is
// pure and safe for concurrent use.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/markdrayton/geokit/mathx"
)

// earthRadiusKm is the mean radius used by every distance formula.
const earthRadiusKm = 6372.8

// ErrMalformedLatLng is returned by ParseLatLng for input that isn't "lat,lng".
var ErrMalformedLatLng = errors.New("malformed lat,lng")

// LatLng is a coordinate pair, latitude first.
type LatLng [2]float64

func (l LatLng) Lat() float64 {
	return l[0]
}

func (l LatLng) Lng() float64 {
	return l[1]
}

func (l LatLng) IsZero() bool {
	return l.Lat() == 0 && l.Lng() == 0
}

func (l LatLng) String() string {
	return strconv.FormatFloat(l.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng(), 'f', -1, 64)
}

// ParseLatLng parses "lat,lng" in decimal degrees. Values are not normalized.
func ParseLatLng(s string) (LatLng, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return LatLng{}, fmt.Errorf("%w: %q", ErrMalformedLatLng, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("%w: latitude %q: %v", ErrMalformedLatLng, parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("%w: longitude %q: %v", ErrMalformedLatLng, parts[1], err)
	}
	return LatLng{lat, lng}, nil
}

// Snap returns l with latitude and longitude rounded down to the next km
// boundary, measured along the meridian and along the parallel of the snapped
// latitude respectively. Longitude is left alone at the poles.
func Snap(l LatLng, km float64) LatLng {
	if km <= 0 {
		return l
	}
	lat := snap(l.Lat(), earthRadiusKm, km)
	parallel := earthRadiusKm * math.Cos(Deg2Rad(lat))
	if parallel < 1e-9 {
		return LatLng{lat, l.Lng()}
	}
	return LatLng{lat, snap(l.Lng(), parallel, km)}
}

func snap(degrees, radius, km float64) float64 {
	arc := radius * Deg2Rad(degrees)
	return Rad2Deg(float64(mathx.Floor(arc/km)) * km / radius)
}
