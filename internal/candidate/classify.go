package candidate

import (
	"sort"

	"github.com/resoltico/boundary/internal/imaging"
)

// BoundaryType enumerates the labels the classifier can assign.
type BoundaryType string

const (
	TypeSingleDocument BoundaryType = "single-document"
	TypeDocument        BoundaryType = "document"
	TypeBookSpreadLeft  BoundaryType = "book-spread-left"
	TypeBookSpreadRight BoundaryType = "book-spread-right"
)

// Classify assigns a BoundaryType to each of the given bounding boxes.
// A single surviving boundary is always single-document. Otherwise,
// adjacent pairs (sorted by bbox.X) with a small horizontal gap and
// similar height are labelled as a book spread; everything else is a
// plain document.
func Classify(boxes []imaging.BoundingBox) []BoundaryType {
	n := len(boxes)
	types := make([]BoundaryType, n)

	if n == 1 {
		types[0] = TypeSingleDocument
		return types
	}
	if n == 0 {
		return types
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return boxes[order[i]].X < boxes[order[j]].X
	})

	for i := range types {
		types[i] = TypeDocument
	}

	for k := 0; k < len(order)-1; k++ {
		li, ri := order[k], order[k+1]
		left, right := boxes[li], boxes[ri]

		gap := right.X - left.MaxX()
		avgWidth := (left.Width + right.Width) / 2
		heightDiff := right.Height - left.Height
		if heightDiff < 0 {
			heightDiff = -heightDiff
		}
		avgHeight := (left.Height + right.Height) / 2

		if gap < 0.3*avgWidth && heightDiff < 0.3*avgHeight {
			types[li] = TypeBookSpreadLeft
			types[ri] = TypeBookSpreadRight
		}
	}

	return types
}
