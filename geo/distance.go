package geo

import "math"

// Distance returns the great-circle distance in kilometres between two points
// using the haversine formula.
func Distance(start, dest LatLng) float64 {
	φ1 := Deg2Rad(start.Lat())
	φ2 := Deg2Rad(dest.Lat())
	Δφ := Deg2Rad(dest.Lat() - start.Lat())
	Δλ := Deg2Rad(dest.Lng() - start.Lng())

	sΔφ := math.Sin(Δφ / 2)
	sΔλ := math.Sin(Δλ / 2)
	a := sΔφ*sΔφ + math.Cos(φ1)*math.Cos(φ2)*sΔλ*sΔλ
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}
