// Package contour implements the Moore-neighbor boundary tracer that
// turns a binary Mask into ordered point sequences, grounded on the
// connected-component + boundary-follow shape used by the pogo OCR
// detector's region tracer, adapted here to the specification's exact
// 8-direction clockwise search order and left-edge start rule.
package contour

import "github.com/resoltico/boundary/internal/imaging"

// direction offsets, clockwise starting at east (+1, 0), index 0..7.
var dirOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// minContourPoints is the minimum trace length for a contour to survive.
const minContourPoints = 20

// Trace runs Moore-neighbor boundary tracing with 8-connectivity over
// mask and returns one contour per connected outer-left edge, in
// row-major scan order. It preserves the specification's left-edge-only
// start rule verbatim: shapes touching the image's left border are
// never traced, by design, not by oversight.
func Trace(mask *imaging.Mask) []imaging.Contour {
	w, h := mask.Width, mask.Height
	if w < 3 || h < 3 {
		return nil
	}

	visited := imaging.NewGrayBuffer(w, h)
	var contours []imaging.Contour

	for y := 1; y <= h-2; y++ {
		for x := 1; x <= w-2; x++ {
			if mask.Pix[y*w+x] != 255 {
				continue
			}
			if visited.Pix[y*w+x] != 0 {
				continue
			}
			if mask.Pix[y*w+x-1] != 0 {
				continue // not the left edge of the region
			}

			c := traceOne(mask, visited, x, y)
			if len(c) >= minContourPoints {
				contours = append(contours, c)
			}
		}
	}

	return contours
}

func traceOne(mask, visited *imaging.Mask, startX, startY int) imaging.Contour {
	w, h := mask.Width, mask.Height
	budget := w * h

	white := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && mask.Pix[y*w+x] == 255
	}
	markVisited := func(x, y int) {
		visited.Pix[y*w+x] = 255
	}

	contour := imaging.Contour{{X: float64(startX), Y: float64(startY)}}
	markVisited(startX, startY)

	cx, cy := startX, startY
	dir := 0
	terminated := false

	for step := 0; step < budget; step++ {
		found := false
		var nx, ny, ndir int

		for i := 0; i < 8; i++ {
			probe := (dir + 6 + i) % 8
			off := dirOffsets[probe]
			px, py := cx+off[0], cy+off[1]
			if white(px, py) {
				nx, ny, ndir = px, py, probe
				found = true
				break
			}
		}

		if !found {
			// Dead end: nothing left to trace. Not a budget failure.
			terminated = true
			break
		}

		cx, cy, dir = nx, ny, ndir
		markVisited(cx, cy)

		if cx == startX && cy == startY {
			terminated = true
			break
		}
		contour = append(contour, imaging.Point{X: float64(cx), Y: float64(cy)})
	}

	if !terminated {
		// The trace exhausted its W*H step budget without closing or
		// hitting a dead end; discard it rather than keep a partial
		// contour of unbounded shape.
		return nil
	}
	return contour
}
