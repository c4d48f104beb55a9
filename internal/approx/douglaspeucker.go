// Package approx reduces a traced contour to a small polygon: an
// iterative Douglas-Peucker simplifier, an epsilon-sweep driver that
// tries several simplification strengths, and a curvature-based corner
// picker used when no sweep factor lands on a usable vertex count.
package approx

import (
	"math"

	"github.com/resoltico/boundary/internal/imaging"
)

// DouglasPeucker simplifies points (treated as an open polyline from
// first to last point) to within perpendicular distance epsilon,
// iteratively rather than recursively so arbitrarily long contours
// cannot exhaust the goroutine stack.
func DouglasPeucker(points imaging.Contour, epsilon float64) imaging.Contour {
	n := len(points)
	if n < 3 {
		return points
	}

	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true

	type span struct{ lo, hi int }
	stack := []span{{0, n - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist := -1.0
		maxIdx := -1
		a, b := points[s.lo], points[s.hi]
		for i := s.lo + 1; i < s.hi; i++ {
			d := pointLineDistance(points[i], a, b)
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxIdx != -1 && maxDist > epsilon {
			keep[maxIdx] = true
			stack = append(stack, span{s.lo, maxIdx}, span{maxIdx, s.hi})
		}
	}

	out := make(imaging.Contour, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// pointLineDistance is the perpendicular distance from p to the
// infinite line through a and b (not clamped to the segment, matching
// Douglas-Peucker's chord semantics), falling back to point distance
// when a and b coincide.
func pointLineDistance(p, a, b imaging.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	// |cross(b-a, p-a)| / |b-a|
	cross := dx*(a.Y-p.Y) - dy*(a.X-p.X)
	return math.Abs(cross) / math.Sqrt(lenSq)
}
