// Package geo provides great-circle distance math for the store locator.
package geo

import "math"

// EarthRadiusMiles is the mean Earth radius used for haversine distances.
const EarthRadiusMiles = 3959.0

// Distance returns the great-circle distance in miles between two points given
// in decimal degrees, using the haversine formula. The result is symmetric,
// zero for identical points, and left unrounded; callers round for display.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
