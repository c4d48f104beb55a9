// Package geometry implements the shoelace area, perimeter, bounding
// box, point-to-segment distance, convexity, and IoU primitives the
// candidate filter and polygon approximator build on.
package geometry

import (
	"math"

	"github.com/resoltico/boundary/internal/imaging"
)

// Area returns the absolute area of a (possibly open) polygon via the
// shoelace formula, treating the point sequence as implicitly closed.
func Area(points []imaging.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// Perimeter sums Euclidean distances between consecutive points,
// wrapping last to first.
func Perimeter(points []imaging.Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx := points[j].X - points[i].X
		dy := points[j].Y - points[i].Y
		total += math.Hypot(dx, dy)
	}
	return total
}

// BoundingBox returns the axis-aligned bounding box of points.
func BoundingBox(points []imaging.Point) imaging.BoundingBox {
	if len(points) == 0 {
		return imaging.BoundingBox{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return imaging.BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// PointSegmentDistance returns the Euclidean distance from p to the
// closest point on the segment [a, b], clamping the projection
// parameter t to [0, 1]. A degenerate (zero-length) segment returns the
// distance to either endpoint.
func PointSegmentDistance(p, a, b imaging.Point) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	lenSq := vx*vx + vy*vy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*vx + (p.Y-a.Y)*vy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX := a.X + t*vx
	projY := a.Y + t*vy
	return math.Hypot(p.X-projX, p.Y-projY)
}

// IsConvex reports whether the polygon's edge cross products all carry
// the same sign (zero cross products, from collinear edges, are
// ignored and do not break convexity).
func IsConvex(points []imaging.Point) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		c := points[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if sign != s {
			return false
		}
	}
	return true
}

// BoundingBoxIoU returns the intersection-over-union of two axis
// aligned bounding boxes, 0 when disjoint.
func BoundingBoxIoU(a, b imaging.BoundingBox) float64 {
	ix0 := math.Max(a.X, b.X)
	iy0 := math.Max(a.Y, b.Y)
	ix1 := math.Min(a.MaxX(), b.MaxX())
	iy1 := math.Min(a.MaxY(), b.MaxY())

	iw := ix1 - ix0
	ih := iy1 - iy0
	if iw <= 0 || ih <= 0 {
		return 0
	}
	intersection := iw * ih
	union := a.Width*a.Height + b.Width*b.Height - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}

// Centroid returns the arithmetic mean of the given points (used for
// angular ordering, not the polygon's area-weighted centroid).
func Centroid(points []imaging.Point) imaging.Point {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return imaging.Point{X: sx / n, Y: sy / n}
}
