package approx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resoltico/boundary/internal/imaging"
)

func TestCurvatureCornersRequiresMinimumLength(t *testing.T) {
	assert.Nil(t, CurvatureCorners(imaging.Contour{{X: 0, Y: 0}, {X: 1, Y: 1}}, 4))
}

func TestCurvatureCornersFindsRectangleCorners(t *testing.T) {
	contour := noisySquarePerimeter(120, 1)
	corners := CurvatureCorners(contour, 4)
	assert.Len(t, corners, 4)
}

func TestModHandlesNegativeValues(t *testing.T) {
	assert.Equal(t, 3, mod(-1, 4))
	assert.Equal(t, 0, mod(4, 4))
	assert.Equal(t, 2, mod(6, 4))
}
