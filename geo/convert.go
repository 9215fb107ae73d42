package geo

import "math"

func Deg2Rad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func Rad2Deg(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// Deg2RadLatLng converts both fields of l to radians.
func Deg2RadLatLng(l LatLng) LatLng {
	return mapLatLng(l, Deg2Rad)
}

// Rad2DegLatLng converts both fields of l to degrees.
func Rad2DegLatLng(l LatLng) LatLng {
	return mapLatLng(l, Rad2Deg)
}

func mapLatLng(l LatLng, f func(float64) float64) LatLng {
	return LatLng{f(l.Lat()), f(l.Lng())}
}
