package store

import "math"

// PackedCount is the number of packed items in c.
func PackedCount(c Collection) int {
	n := 0
	for _, it := range c.items {
		if it.Packed {
			n++
		}
	}
	return n
}

// Total is the number of items in c.
func Total(c Collection) int { return len(c.items) }

// PercentPacked is the share of packed items in [0, 100], rounded to one
// decimal place. An empty collection is 0%.
func PercentPacked(c Collection) float64 {
	total := Total(c)
	if total == 0 {
		return 0
	}
	return math.Round(float64(PackedCount(c))/float64(total)*1000) / 10
}

// Fraction is PercentPacked scaled to [0, 1].
func Fraction(c Collection) float64 {
	return PercentPacked(c) / 100
}

// Status labels the overall progress of c.
func Status(c Collection) string {
	switch total := Total(c); {
	case total == 0:
		return "Nothing to pack"
	case PackedCount(c) == total:
		return "All packed"
	default:
		return "In progress"
	}
}

// DefaultRing is the progress ring drawn next to the list header.
var DefaultRing = Ring{Radius: 24}

// Ring is the geometry of a circular progress indicator whose stroke is
// dashed so that the drawn part covers the packed fraction.
type Ring struct {
	Radius float64
}

// Circumference is the full stroke length, 2πr.
func (r Ring) Circumference() float64 {
	return 2 * math.Pi * r.Radius
}

// Filled is the arc length covering fraction p of the ring.
func (r Ring) Filled(p float64) float64 {
	return r.Circumference() * clamp01(p)
}

// DashOffset is the unfilled arc length, used as the stroke dash offset.
func (r Ring) DashOffset(p float64) float64 {
	return r.Circumference() * (1 - clamp01(p))
}

func clamp01(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
