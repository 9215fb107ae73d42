package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoPoints is returned by BoundsOf when it is given nothing to enclose.
var ErrNoPoints = errors.New("no points to bound")

// Bounds is a latitude/longitude aligned box, north-east corner first. A box
// whose south-west longitude is greater than its north-east longitude wraps
// across the antimeridian. North-east latitude is expected to be at least the
// south-west latitude but this is not checked.
type Bounds [2]LatLng

func NewBounds(northEast, southWest LatLng) Bounds {
	return Bounds{northEast, southWest}
}

// BoundsOf returns the box obtained by extending a degenerate box at the
// first point with each of the remaining points in order.
func BoundsOf(points ...LatLng) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, ErrNoPoints
	}
	b := Bounds{points[0], points[0]}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b, nil
}

func (b Bounds) NorthEast() LatLng {
	return b[0]
}

func (b Bounds) SouthWest() LatLng {
	return b[1]
}

func (b Bounds) String() string {
	return fmt.Sprintf("NE(%s) SW(%s)", b.NorthEast(), b.SouthWest())
}

func (b Bounds) CrossesAntimeridian() bool {
	return b.SouthWest().Lng() > b.NorthEast().Lng()
}

// Center returns the midpoint of the box. For a box across the antimeridian
// the longitude is taken halfway along the eastward span from the south-west
// edge and normalized back into [-180, 180].
func (b Bounds) Center() LatLng {
	ne, sw := b.NorthEast(), b.SouthWest()
	lat := (sw.Lat() + ne.Lat()) / 2
	if b.CrossesAntimeridian() {
		span := lngSpan(sw.Lng(), ne.Lng())
		return LatLng{lat, NormalizeLng(sw.Lng() + span/2)}
	}
	return LatLng{lat, (sw.Lng() + ne.Lng()) / 2}
}

// ContainsPoint reports whether p lies in the box, edges included.
func (b Bounds) ContainsPoint(p LatLng) bool {
	if p.Lat() < b.SouthWest().Lat() || p.Lat() > b.NorthEast().Lat() {
		return false
	}
	return b.containsLng(p.Lng())
}

func (b Bounds) containsLng(lng float64) bool {
	return lngInRange(b.SouthWest().Lng(), b.NorthEast().Lng(), lng)
}

// lngInRange reports whether lng is in the eastward range [west, east],
// which wraps across the antimeridian when west > east.
func lngInRange(west, east, lng float64) bool {
	if west > east {
		return lng <= east || lng >= west
	}
	return west <= lng && lng <= east
}

// Extend returns a copy of b grown to include p. Latitude always widens. A
// longitude outside the box moves whichever edge adds the shorter span,
// the east edge on a tie.
func (b Bounds) Extend(p LatLng) Bounds {
	ne, sw := b.NorthEast(), b.SouthWest()
	north, east := ne.Lat(), ne.Lng()
	south, west := sw.Lat(), sw.Lng()

	if p.Lat() > north {
		north = p.Lat()
	}
	if p.Lat() < south {
		south = p.Lat()
	}

	if !b.containsLng(p.Lng()) {
		if lngSpan(west, p.Lng()) <= lngSpan(p.Lng(), east) {
			east = p.Lng()
		} else {
			west = p.Lng()
		}
	}

	return Bounds{{north, east}, {south, west}}
}

// lngSpan is the eastward distance in degrees from west to east.
func lngSpan(west, east float64) float64 {
	if west > east {
		return east + 360 - west
	}
	return east - west
}

// Union returns a box enclosing both b and o. Of the longitude ranges that
// cover both boxes it keeps the narrowest. When no single range from their
// edges covers both, the box spans every longitude.
func (b Bounds) Union(o Bounds) Bounds {
	north := math.Max(b.NorthEast().Lat(), o.NorthEast().Lat())
	south := math.Min(b.SouthWest().Lat(), o.SouthWest().Lat())

	bw, be := b.SouthWest().Lng(), b.NorthEast().Lng()
	ow, oe := o.SouthWest().Lng(), o.NorthEast().Lng()

	west, east := -180.0, 180.0
	best := math.Inf(1)
	for _, c := range [][2]float64{{bw, be}, {ow, oe}, {bw, oe}, {ow, be}} {
		if !lngRangeCovers(c[0], c[1], bw, be) || !lngRangeCovers(c[0], c[1], ow, oe) {
			continue
		}
		if span := lngSpan(c[0], c[1]); span < best {
			west, east, best = c[0], c[1], span
		}
	}

	return Bounds{{north, east}, {south, west}}
}

// lngRangeCovers reports whether the eastward range [west, east] contains
// the eastward range [w, e]: both ends inside, w reached first going east
// and no longer. The span check keeps [-180, 180], whose ends are the same
// meridian, from fitting inside a narrower range.
func lngRangeCovers(west, east, w, e float64) bool {
	return lngInRange(west, east, w) && lngInRange(west, east, e) &&
		lngSpan(west, w) <= lngSpan(west, e) &&
		lngSpan(w, e) <= lngSpan(west, east)
}
