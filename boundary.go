// Package boundary locates convex quadrilateral document outlines in a
// raster image using a deterministic classical computer-vision
// pipeline: grayscale conversion, Gaussian blur, Sobel edges, adaptive
// mean thresholding, morphological closing, contour tracing, and
// polygon approximation. It does not rectify, crop, classify content,
// persist, or stream; see internal/pipeline for the stage sequence.
package boundary

import (
	"github.com/resoltico/boundary/internal/imaging"
	"github.com/resoltico/boundary/internal/logging"
	"github.com/resoltico/boundary/internal/pipeline"
)

// Options configures a detection run. A zero-value Options is valid:
// every field falls back to its documented default. Building from
// DefaultOptions and overriding only the fields that matter (or using
// the With* builders) makes every field, including an explicit zero,
// reach the underlying pipeline.
type Options struct {
	// MinAreaRatio is the minimum boundary area as a fraction of the
	// image area. Default 0.02.
	MinAreaRatio float64
	// MaxAreaRatio is the maximum boundary area as a fraction of the
	// image area. Default 0.95.
	MaxAreaRatio float64
	// EdgeThreshold is the Sobel magnitude above which a pixel counts
	// as an edge when combined with the adaptive threshold mask.
	// Default 50. Zero is a valid, explicit setting.
	EdgeThreshold int
	// BlurRadius is the Gaussian blur radius applied before edge and
	// threshold computation. Default 2.
	BlurRadius int
}

// WithMinAreaRatio, WithMaxAreaRatio, WithEdgeThreshold and
// WithBlurRadius return a copy of o with the named field set, the
// public counterpart of internal/pipeline's builder, so a caller can
// express an explicit zero for any field without it being mistaken
// for "left at the default."
func (o Options) WithMinAreaRatio(v float64) Options { o.MinAreaRatio = v; return o }
func (o Options) WithMaxAreaRatio(v float64) Options { o.MaxAreaRatio = v; return o }
func (o Options) WithEdgeThreshold(v int) Options    { o.EdgeThreshold = v; return o }
func (o Options) WithBlurRadius(v int) Options       { o.BlurRadius = v; return o }

func (o Options) toInternal() pipeline.Options {
	if o == (Options{}) {
		o = DefaultOptions()
	}
	return pipeline.Options{}.
		WithMinAreaRatio(o.MinAreaRatio).
		WithMaxAreaRatio(o.MaxAreaRatio).
		WithEdgeThreshold(o.EdgeThreshold).
		WithBlurRadius(o.BlurRadius)
}

// DefaultOptions returns the specification's documented defaults.
func DefaultOptions() Options {
	d := pipeline.DefaultOptions()
	return Options{
		MinAreaRatio:  d.MinAreaRatio,
		MaxAreaRatio:  d.MaxAreaRatio,
		EdgeThreshold: d.EdgeThreshold,
		BlurRadius:    d.BlurRadius,
	}
}

// Boundary is one detected document-like quadrilateral (or, for the
// 5-8 vertex case the approximator sometimes settles on, near-quad).
type Boundary struct {
	Points       imaging.Contour
	Area         float64
	AspectRatio  float64
	NumVertices  int
	BoundingRect imaging.BoundingBox
	IsConvex     bool
	Type         string
}

// Stats summarizes a detection run.
type Stats struct {
	TotalDetected      int
	ProcessingPipeline []string
}

// DetectionResult is the output of Detect or DetectEnhanced.
type DetectionResult struct {
	Boundaries   []Boundary
	Intermediate map[string]*imaging.GrayBuffer
	Stats        Stats
}

func fromInternal(r pipeline.Result) DetectionResult {
	boundaries := make([]Boundary, len(r.Boundaries))
	for i, b := range r.Boundaries {
		boundaries[i] = Boundary{
			Points:       b.Points,
			Area:         b.Area,
			AspectRatio:  b.AspectRatio,
			NumVertices:  b.NumVertices,
			BoundingRect: b.BoundingRect,
			IsConvex:     b.IsConvex,
			Type:         b.Type,
		}
	}
	return DetectionResult{
		Boundaries:   boundaries,
		Intermediate: r.Intermediate,
		Stats: Stats{
			TotalDetected:      r.Stats.TotalDetected,
			ProcessingPipeline: r.Stats.ProcessingPipeline,
		},
	}
}

func validate(raster imaging.Raster, opts Options) error {
	if raster.Width <= 0 || raster.Height <= 0 {
		return invalidInput("raster has non-positive dimensions")
	}
	if len(raster.Pix) != 4*raster.Width*raster.Height {
		return invalidInput("raster pixel buffer does not match its dimensions")
	}
	// A MinAreaRatio above MaxAreaRatio is not malformed input: the
	// candidate filter rejects every contour under that combination,
	// so the run simply reports no boundaries.
	return nil
}

// Detect runs the single fixed processing pipeline once and returns
// every surviving boundary.
func Detect(raster imaging.Raster, opts Options) (DetectionResult, error) {
	if err := validate(raster, opts); err != nil {
		return DetectionResult{}, err
	}
	result, err := pipeline.Run(raster, opts.toInternal(), logging.Nop())
	if err != nil {
		return DetectionResult{}, outOfMemory("detection failed", err)
	}
	return fromInternal(result), nil
}

// DetectEnhanced tries a fixed sequence of parameter variations,
// returning the first that yields at least one four-vertex boundary,
// or otherwise the variation that came closest.
func DetectEnhanced(raster imaging.Raster, opts Options) (DetectionResult, error) {
	if err := validate(raster, opts); err != nil {
		return DetectionResult{}, err
	}
	result, err := pipeline.RunEnhanced(raster, opts.toInternal(), logging.Nop())
	if err != nil {
		return DetectionResult{}, outOfMemory("detection failed", err)
	}
	return fromInternal(result), nil
}
