package domain

import "math"

// NormalizeLongitude wraps any finite longitude into [-180, 180).
func NormalizeLongitude(lon float64) float64 {
	return math.Mod(math.Mod(lon+180, 360)+360, 360) - 180
}

// Project maps a geographic coordinate onto a canvas of the given size using an
// equirectangular projection with north at the top. Latitude is not clipped.
func Project(lon, lat float64, size Size) Point {
	l := NormalizeLongitude(lon)
	return Point{
		X: mapRange(l, -180, 180, 0, size.Width),
		Y: mapRange(lat, 90, -90, 0, size.Height),
	}
}

// ProjectVolcano projects a record's coordinate.
func ProjectVolcano(v Volcano, size Size) Point {
	return Project(v.Lon, v.Lat, size)
}
