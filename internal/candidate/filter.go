// Package candidate implements the pre-approximation area/aspect
// filter, the post-approximation quadrilateral corner ordering and
// overlap suppression, and the single-document/book-spread classifier.
package candidate

import (
	"math"
	"sort"

	"github.com/resoltico/boundary/internal/geometry"
	"github.com/resoltico/boundary/internal/imaging"
)

// Options bundles the area-ratio and aspect-ratio bounds applied
// before and after approximation.
type Options struct {
	MinAreaRatio float64
	MaxAreaRatio float64
	MinAspect    float64
	MaxAspect    float64
}

// DefaultOptions mirrors the specification's defaults for the fixed
// aspect-ratio bound (which, unlike area ratio, is not configurable by
// callers) and is merged with caller-supplied area ratios upstream.
var DefaultOptions = Options{MinAspect: 0.3, MaxAspect: 3.5}

// PreFilter reports whether contour survives the area/aspect gate
// applied before polygon approximation; the area bounds are the
// ratios in opts scaled by imageArea.
func PreFilter(contour imaging.Contour, imageArea float64, opts Options) bool {
	area := geometry.Area(contour)
	if area < opts.MinAreaRatio*imageArea || area > opts.MaxAreaRatio*imageArea {
		return false
	}

	bbox := geometry.BoundingBox(contour)
	if bbox.Height == 0 {
		return false
	}
	aspect := bbox.Width / bbox.Height
	return aspect >= opts.MinAspect && aspect <= opts.MaxAspect
}

// OrderQuad reorders a 4-vertex polygon starting from the vertex with
// minimum x+y, proceeding counterclockwise around the centroid.
// Polygons with any other vertex count are returned unchanged.
func OrderQuad(points imaging.Contour) imaging.Contour {
	if len(points) != 4 {
		return points
	}

	centroid := geometry.Centroid(points)
	ordered := make(imaging.Contour, len(points))
	copy(ordered, points)

	sort.Slice(ordered, func(i, j int) bool {
		ai := math.Atan2(ordered[i].Y-centroid.Y, ordered[i].X-centroid.X)
		aj := math.Atan2(ordered[j].Y-centroid.Y, ordered[j].X-centroid.X)
		return ai < aj
	})

	minIdx := 0
	minSum := ordered[0].X + ordered[0].Y
	for i, p := range ordered {
		if s := p.X + p.Y; s < minSum {
			minSum = s
			minIdx = i
		}
	}

	rotated := make(imaging.Contour, len(ordered))
	for i := range ordered {
		rotated[i] = ordered[(minIdx+i)%len(ordered)]
	}
	return rotated
}

// SuppressOverlaps sorts boundaries by area descending (ties keep
// original relative order) and drops any boundary whose bounding-box
// IoU against an earlier, larger-or-equal boundary exceeds 0.5.
func SuppressOverlaps(boxes []imaging.BoundingBox, areas []float64) []int {
	n := len(boxes)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return areas[order[i]] > areas[order[j]]
	})

	suppressed := make([]bool, n)
	var kept []int
	for _, i := range order {
		if suppressed[i] {
			continue
		}
		kept = append(kept, i)
		for _, j := range order {
			if j == i || suppressed[j] {
				continue
			}
			if geometry.BoundingBoxIoU(boxes[i], boxes[j]) > 0.5 {
				suppressed[j] = true
			}
		}
	}
	return kept
}
