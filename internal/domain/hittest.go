package domain

import "math"

// HitTolerance is added to a marker's half-diameter when testing pointer hits.
const HitTolerance = 4.0

// Hits reports whether the pointer lies within the record's hit radius.
func Hits(pointer Point, v Volcano, size Size) bool {
	p := ProjectVolcano(v, size)
	return math.Hypot(pointer.X-p.X, pointer.Y-p.Y) <= v.DisplayRadius/2+HitTolerance
}

// FindHit returns the first record, in slice order, whose marker contains the
// pointer. It does not look for the nearest marker: when markers overlap the
// earlier row wins.
func FindHit(pointer Point, volcanoes []Volcano, size Size) (Volcano, bool) {
	for _, v := range volcanoes {
		if Hits(pointer, v, size) {
			return v, true
		}
	}
	return Volcano{}, false
}
