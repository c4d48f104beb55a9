package approx

import (
	"github.com/resoltico/boundary/internal/geometry"
	"github.com/resoltico/boundary/internal/imaging"
)

// EpsilonFactors is the fixed sweep of relative simplification
// strengths tried in order before falling back to curvature search.
var EpsilonFactors = []float64{0.01, 0.02, 0.03, 0.04, 0.05}

// Simplify applies the adaptive epsilon sweep to contour: try each
// factor in EpsilonFactors (epsilon = factor * perimeter), prefer an
// exact 4-vertex result, otherwise the in-range [4,8] result closest to
// 4 vertices (ties go to the earliest-tried factor), otherwise fall
// back to curvature corner search for exactly 4 corners. Returns nil if
// nothing in the sweep nor the fallback produces a usable polygon.
// A traced contour ends beside its own start, so each simplified result
// drops its last point when that point lies within epsilon of the
// implicit closing edge back to the first point.
func Simplify(contour imaging.Contour, perimeter float64) imaging.Contour {
	var best imaging.Contour
	bestDist := -1

	for _, factor := range EpsilonFactors {
		epsilon := factor * perimeter
		result := DouglasPeucker(contour, epsilon)
		if n := len(result); n > 3 && geometry.PointSegmentDistance(result[n-1], result[n-2], result[0]) <= epsilon {
			result = result[:n-1]
		}

		if len(result) == 4 {
			return result
		}

		if len(result) >= 4 && len(result) <= 8 {
			dist := len(result) - 4
			if dist < 0 {
				dist = -dist
			}
			if bestDist == -1 || dist < bestDist {
				bestDist = dist
				best = result
			}
		}
	}

	if best != nil {
		return best
	}

	corners := CurvatureCorners(contour, 4)
	if len(corners) == 4 {
		return corners
	}
	return nil
}
