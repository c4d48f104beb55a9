package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resoltico/boundary/internal/imaging"
)

func square(x0, y0, side float64) []imaging.Point {
	return []imaging.Point{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
	}
}

func TestAreaSquare(t *testing.T) {
	assert.Equal(t, 100.0, Area(square(0, 0, 10)))
}

func TestAreaDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Area(nil))
	assert.Equal(t, 0.0, Area([]imaging.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}))
}

func TestPerimeterSquare(t *testing.T) {
	assert.Equal(t, 40.0, Perimeter(square(0, 0, 10)))
}

func TestBoundingBox(t *testing.T) {
	bbox := BoundingBox(square(5, 5, 10))
	assert.Equal(t, imaging.BoundingBox{X: 5, Y: 5, Width: 10, Height: 10}, bbox)
}

func TestPointSegmentDistance(t *testing.T) {
	a := imaging.Point{X: 0, Y: 0}
	b := imaging.Point{X: 10, Y: 0}

	assert.InDelta(t, 5.0, PointSegmentDistance(imaging.Point{X: 5, Y: 5}, a, b), 1e-9)
	assert.InDelta(t, 5.0, PointSegmentDistance(imaging.Point{X: -5, Y: 0}, a, b), 1e-9)
	assert.InDelta(t, 5.0, PointSegmentDistance(imaging.Point{X: 5, Y: 0}, a, a), 1e-9)
}

func TestIsConvex(t *testing.T) {
	assert.True(t, IsConvex(square(0, 0, 10)))

	concave := []imaging.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 5},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
	assert.False(t, IsConvex(concave))
	assert.False(t, IsConvex(nil))
}

func TestBoundingBoxIoU(t *testing.T) {
	a := imaging.BoundingBox{X: 0, Y: 0, Width: 10, Height: 10}
	b := imaging.BoundingBox{X: 5, Y: 5, Width: 10, Height: 10}
	assert.InDelta(t, 25.0/175.0, BoundingBoxIoU(a, b), 1e-9)

	disjoint := imaging.BoundingBox{X: 100, Y: 100, Width: 10, Height: 10}
	assert.Equal(t, 0.0, BoundingBoxIoU(a, disjoint))

	assert.Equal(t, 1.0, BoundingBoxIoU(a, a))
}

func TestCentroid(t *testing.T) {
	c := Centroid(square(0, 0, 10))
	assert.InDelta(t, 5.0, c.X, 1e-9)
	assert.InDelta(t, 5.0, c.Y, 1e-9)
}
