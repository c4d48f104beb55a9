package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resoltico/boundary/internal/imaging"
)

func fillRect(mask *imaging.Mask, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			mask.Set(x, y, 255)
		}
	}
}

func TestTraceFindsInteriorRectangle(t *testing.T) {
	mask := imaging.NewGrayBuffer(40, 40)
	fillRect(mask, 10, 10, 30, 25)

	contours := Trace(mask)
	require.Len(t, contours, 1)
	assert.GreaterOrEqual(t, len(contours[0]), minContourPoints)

	for _, p := range contours[0] {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, float64(mask.Width))
	}
}

func TestTraceMissesRegionTouchingLeftBorder(t *testing.T) {
	mask := imaging.NewGrayBuffer(40, 40)
	fillRect(mask, 0, 10, 20, 25)

	contours := Trace(mask)
	assert.Empty(t, contours)
}

func TestTraceDropsShortContour(t *testing.T) {
	mask := imaging.NewGrayBuffer(10, 10)
	mask.Set(5, 5, 255)

	contours := Trace(mask)
	assert.Empty(t, contours)
}

func TestTraceSmallMaskReturnsNil(t *testing.T) {
	mask := imaging.NewGrayBuffer(2, 2)
	assert.Nil(t, Trace(mask))
}

func TestTraceTwoSeparateRectangles(t *testing.T) {
	mask := imaging.NewGrayBuffer(60, 30)
	fillRect(mask, 5, 5, 20, 20)
	fillRect(mask, 35, 5, 50, 20)

	contours := Trace(mask)
	assert.Len(t, contours, 2)
}
