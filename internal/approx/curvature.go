package approx

import (
	"math"
	"sort"

	"github.com/resoltico/boundary/internal/geometry"
	"github.com/resoltico/boundary/internal/imaging"
)

type curvatureSample struct {
	point imaging.Point
	score float64
	index int // position in the subsampled sequence, for stable sort
}

// CurvatureCorners picks n corners from contour by curvature, used as
// the adaptive epsilon sweep's fallback when no tested factor lands on
// a usable vertex count. Requires at least 8 points in contour.
func CurvatureCorners(contour imaging.Contour, n int) imaging.Contour {
	if len(contour) < 8 {
		return nil
	}

	stride := len(contour) / 100
	if stride < 1 {
		stride = 1
	}
	var sampled imaging.Contour
	for i := 0; i < len(contour); i += stride {
		sampled = append(sampled, contour[i])
	}

	window := len(sampled) / 20
	if window < 3 {
		window = 3
	}

	samples := make([]curvatureSample, 0, len(sampled))
	for i, curr := range sampled {
		prev := sampled[mod(i-window, len(sampled))]
		next := sampled[mod(i+window, len(sampled))]

		v1x, v1y := curr.X-prev.X, curr.Y-prev.Y
		v2x, v2y := next.X-curr.X, next.Y-curr.Y
		len1 := math.Hypot(v1x, v1y)
		len2 := math.Hypot(v2x, v2y)
		if len1 == 0 || len2 == 0 {
			continue
		}

		cos := (v1x*v2x + v1y*v2y) / (len1 * len2)
		if cos < -1 {
			cos = -1
		} else if cos > 1 {
			cos = 1
		}
		// Turning angle between the incoming and outgoing edges: 0 on a
		// straight run, larger at sharper corners.
		score := math.Acos(cos)
		samples = append(samples, curvatureSample{point: curr, score: score, index: i})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].score != samples[j].score {
			return samples[i].score > samples[j].score
		}
		return samples[i].index < samples[j].index
	})

	bbox := geometry.BoundingBox(contour)
	minSide := math.Min(bbox.Width, bbox.Height)
	minDist := 0.2 * minSide

	var corners imaging.Contour
	for _, s := range samples {
		if len(corners) >= n {
			break
		}
		tooClose := false
		for _, c := range corners {
			if math.Hypot(s.point.X-c.X, s.point.Y-c.Y) < minDist {
				tooClose = true
				break
			}
		}
		if !tooClose {
			corners = append(corners, s.point)
		}
	}

	return corners
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
