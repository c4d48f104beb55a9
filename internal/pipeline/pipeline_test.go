package pipeline

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resoltico/boundary/internal/candidate"
	"github.com/resoltico/boundary/internal/imaging"
	"github.com/resoltico/boundary/internal/imaging/testraster"
	"github.com/resoltico/boundary/internal/logging"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func TestRunUniformImageFindsNothing(t *testing.T) {
	raster := testraster.Solid(200, 200, white)
	result, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	assert.Empty(t, result.Boundaries)
	assert.Equal(t, DefaultProcessingPipeline, result.Stats.ProcessingPipeline)
}

func TestRunSingleRectangleFindsOneBoundary(t *testing.T) {
	raster := testraster.Rectangle(300, 300, 40, 40, 260, 260, white, black)
	result, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	require.Len(t, result.Boundaries, 1)
	assert.Equal(t, "single-document", result.Boundaries[0].Type)
	assert.True(t, result.Boundaries[0].IsConvex)
}

func TestRunTwoSeparateRectanglesAreDocuments(t *testing.T) {
	raster := testraster.TwoRectangles(400, 200, 120, 150, 100, white, black)
	result, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	require.Len(t, result.Boundaries, 2)
	for _, b := range result.Boundaries {
		assert.Equal(t, "document", b.Type)
	}
}

func TestRunBookSpreadNarrowGap(t *testing.T) {
	raster := testraster.TwoRectangles(400, 200, 120, 150, 20, white, black)
	result, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	require.Len(t, result.Boundaries, 2)
	assert.Equal(t, "book-spread-left", result.Boundaries[0].Type)
	assert.Equal(t, "book-spread-right", result.Boundaries[1].Type)
}

func TestRunDeterministicAcrossRuns(t *testing.T) {
	raster := testraster.Rectangle(300, 300, 40, 40, 260, 260, white, black)
	first, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	second, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, first.Boundaries, second.Boundaries)
}

func TestRunExtremeAspectStripIsRejected(t *testing.T) {
	raster := testraster.Rectangle(400, 100, 10, 40, 390, 60, white, black)
	result, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	assert.Empty(t, result.Boundaries)
}

func TestRunRotatedRectangleFindsConvexQuad(t *testing.T) {
	cx, cy, halfW, halfH, angle := 150.0, 150.0, 80.0, 50.0, 15.0
	raster := testraster.RotatedRectangle(300, 300, cx, cy, halfW, halfH, angle, white, black)

	result, err := Run(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	require.Len(t, result.Boundaries, 1)

	b := result.Boundaries[0]
	assert.True(t, b.IsConvex)
	assert.Equal(t, 4, b.NumVertices)

	theta := angle * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	rotate := func(dx, dy float64) imaging.Point {
		return imaging.Point{X: cx + dx*cos - dy*sin, Y: cy + dx*sin + dy*cos}
	}
	expected := candidate.OrderQuad(imaging.Contour{
		rotate(-halfW, -halfH), rotate(halfW, -halfH), rotate(halfW, halfH), rotate(-halfW, halfH),
	})
	actual := candidate.OrderQuad(b.Points)

	require.Len(t, actual, 4)
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, 4.0)
		assert.InDelta(t, expected[i].Y, actual[i].Y, 4.0)
	}
}

func TestRunEnhancedFindsQuadWithOverriddenBaseOptions(t *testing.T) {
	raster := testraster.Rectangle(300, 300, 40, 40, 260, 260, white, black)
	result, err := RunEnhanced(raster, Options{}.WithEdgeThreshold(30).WithMinAreaRatio(0.03), logging.Nop())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countQuads(result.Boundaries), 1)
}

func TestRunEnhancedNeverFailsOnUniformImage(t *testing.T) {
	raster := testraster.Solid(150, 150, white)
	result, err := RunEnhanced(raster, Options{}, logging.Nop())
	require.NoError(t, err)
	assert.NotNil(t, result.Intermediate)
}

func TestOptionsResolveAppliesDefaultsForUnsetFields(t *testing.T) {
	resolved := Options{}.resolve()
	assert.Equal(t, DefaultOptions(), resolved)

	partial := Options{}.WithEdgeThreshold(99).resolve()
	assert.Equal(t, 99, partial.EdgeThreshold)
	assert.Equal(t, DefaultOptions().BlurRadius, partial.BlurRadius)
}
