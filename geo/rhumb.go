package geo

import (
	"math"

	"github.com/markdrayton/geokit/mathx"
)

const π = math.Pi

// Below this the projected latitude difference is treated as zero and the
// rhumb line as running due east or west.
const minΔψ = 1e-12

// RhumbDistance returns the length in kilometres of the constant-bearing path
// from start to dest, going the short way around the antimeridian.
func RhumbDistance(start, dest LatLng) float64 {
	φ1 := Deg2Rad(start.Lat())
	φ2 := Deg2Rad(dest.Lat())
	Δφ := φ2 - φ1
	Δλ := shortΔλ(Deg2Rad(math.Abs(dest.Lng() - start.Lng())))

	q := stretchFactor(Δφ, φ1, φ2)
	δ := math.Sqrt(Δφ*Δφ + q*q*Δλ*Δλ)

	return earthRadiusKm * δ
}

// RhumbBearingTo returns the constant bearing from start to dest in
// [0, 360). It is 0 when either point is a pole.
func RhumbBearingTo(start, dest LatLng) float64 {
	φ1 := Deg2Rad(start.Lat())
	φ2 := Deg2Rad(dest.Lat())
	if isPole(φ1) || isPole(φ2) {
		return 0
	}

	Δψ := projectedΔφ(φ1, φ2)
	Δλ := shortΔλ(Deg2Rad(dest.Lng() - start.Lng()))
	θ := math.Atan2(Δλ, Δψ)

	return NormalizeBearing(Rad2Deg(θ))
}

// RhumbDestinationPoint returns the point reached by travelling km along a
// constant bearing from start. A path over a pole is reflected back on the
// same meridian.
func RhumbDestinationPoint(start LatLng, bearing, km float64) LatLng {
	δ := km / earthRadiusKm
	φ1 := Deg2Rad(start.Lat())
	λ1 := Deg2Rad(start.Lng())
	θ := Deg2Rad(bearing)

	Δφ := δ * math.Cos(θ)
	φ2 := φ1 + Δφ
	if math.Abs(φ2) > π/2 {
		if φ2 > 0 {
			φ2 = π - φ2
		} else {
			φ2 = -π - φ2
		}
	}

	q := stretchFactor(Δφ, φ1, φ2)
	Δλ := δ * math.Sin(θ) / q
	λ2 := mathx.Fmod(λ1+Δλ+3*π, 2*π) - π

	return LatLng{Rad2Deg(φ2), Rad2Deg(λ2)}
}

// stretchFactor is the ratio of true to projected latitude difference, which
// scales a longitude difference into distance along the rhumb line.
func stretchFactor(Δφ, φ1, φ2 float64) float64 {
	if isPole(φ1) || isPole(φ2) {
		return math.Cos(φ1)
	}
	Δψ := projectedΔφ(φ1, φ2)
	if math.Abs(Δψ) < minΔψ {
		return math.Cos(φ1)
	}
	return Δφ / Δψ
}

// projectedΔφ is the latitude difference on a Mercator projection.
func projectedΔφ(φ1, φ2 float64) float64 {
	return math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
}

// shortΔλ takes a longitude difference in radians the short way round.
func shortΔλ(Δλ float64) float64 {
	if math.Abs(Δλ) > π {
		if Δλ > 0 {
			return -(2*π - Δλ)
		}
		return 2*π + Δλ
	}
	return Δλ
}

func isPole(φ float64) bool {
	return math.Abs(φ) == π/2
}
