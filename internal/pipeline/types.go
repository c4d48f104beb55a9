// Package pipeline wires the imaging filters, contour tracer, polygon
// approximator, and candidate classifier into the detect/detectEnhanced
// operations, following the teacher application's
// loader -> processor -> saver staged coordinator shape
// (internal/pipeline/stages in the teacher) generalized from Mat
// processing to boundary detection.
package pipeline

import "github.com/resoltico/boundary/internal/imaging"

// Options configures a single detection run. Fields not set through
// the With* builders are replaced with their documented defaults by
// resolve, whatever value they hold.
type Options struct {
	MinAreaRatio  float64
	MaxAreaRatio  float64
	EdgeThreshold int
	BlurRadius    int

	// set records which fields were set through the With* builders, so
	// resolve can tell an explicit zero apart from an unset field.
	set fieldsSet
}

type fieldsSet struct {
	minAreaRatio  bool
	maxAreaRatio  bool
	edgeThreshold bool
	blurRadius    bool
}

// DefaultOptions returns the specification's documented defaults.
func DefaultOptions() Options {
	return Options{
		MinAreaRatio:  0.02,
		MaxAreaRatio:  0.95,
		EdgeThreshold: 50,
		BlurRadius:    2,
	}
}

// WithMinAreaRatio, WithMaxAreaRatio, WithEdgeThreshold and
// WithBlurRadius return a copy of o with the named field marked
// explicitly set, used by the strategy runner to override only the
// fields a given strategy names while leaving the rest at baseOptions.
func (o Options) WithMinAreaRatio(v float64) Options {
	o.MinAreaRatio, o.set.minAreaRatio = v, true
	return o
}

func (o Options) WithMaxAreaRatio(v float64) Options {
	o.MaxAreaRatio, o.set.maxAreaRatio = v, true
	return o
}

func (o Options) WithEdgeThreshold(v int) Options {
	o.EdgeThreshold, o.set.edgeThreshold = v, true
	return o
}

func (o Options) WithBlurRadius(v int) Options {
	o.BlurRadius, o.set.blurRadius = v, true
	return o
}

// resolve merges o over defaults, field by field, so that unknown or
// never-set fields fall back to the documented default rather than a
// Go zero value that would otherwise violate an invariant (e.g.
// BlurRadius 0).
func (o Options) resolve() Options {
	d := DefaultOptions()
	r := d
	if o.set.minAreaRatio {
		r.MinAreaRatio = o.MinAreaRatio
	}
	if o.set.maxAreaRatio {
		r.MaxAreaRatio = o.MaxAreaRatio
	}
	if o.set.edgeThreshold {
		r.EdgeThreshold = o.EdgeThreshold
	}
	if o.set.blurRadius {
		r.BlurRadius = o.BlurRadius
	}
	return r
}

// Boundary is one detected document-like quadrilateral (or near-quad).
type Boundary struct {
	Points       imaging.Contour
	Area         float64
	AspectRatio  float64
	NumVertices  int
	BoundingRect imaging.BoundingBox
	IsConvex     bool
	Type         string
}

// Stats summarizes a single detection run.
type Stats struct {
	TotalDetected     int
	ProcessingPipeline []string
}

// DefaultProcessingPipeline is the fixed stage list reported by every run.
var DefaultProcessingPipeline = []string{"grayscale", "blur", "edges", "threshold", "contours", "filter"}

// Result is the full output of a detect/detectEnhanced call.
type Result struct {
	Boundaries   []Boundary
	Intermediate map[string]*imaging.GrayBuffer
	Stats        Stats
}
