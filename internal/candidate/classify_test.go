package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resoltico/boundary/internal/imaging"
)

func TestClassifySingleBoxIsSingleDocument(t *testing.T) {
	boxes := []imaging.BoundingBox{{X: 0, Y: 0, Width: 100, Height: 140}}
	types := Classify(boxes)
	assert.Equal(t, []BoundaryType{TypeSingleDocument}, types)
}

func TestClassifyAdjacentSimilarHeightIsBookSpread(t *testing.T) {
	boxes := []imaging.BoundingBox{
		{X: 0, Y: 0, Width: 100, Height: 140},
		{X: 105, Y: 0, Width: 100, Height: 140},
	}
	types := Classify(boxes)
	assert.Equal(t, TypeBookSpreadLeft, types[0])
	assert.Equal(t, TypeBookSpreadRight, types[1])
}

func TestClassifyFarApartBoxesAreDocuments(t *testing.T) {
	boxes := []imaging.BoundingBox{
		{X: 0, Y: 0, Width: 100, Height: 140},
		{X: 500, Y: 0, Width: 100, Height: 140},
	}
	types := Classify(boxes)
	assert.Equal(t, TypeDocument, types[0])
	assert.Equal(t, TypeDocument, types[1])
}

func TestClassifyEmptyInput(t *testing.T) {
	assert.Empty(t, Classify(nil))
}
