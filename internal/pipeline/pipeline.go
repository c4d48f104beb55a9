package pipeline

import (
	"github.com/resoltico/boundary/internal/approx"
	"github.com/resoltico/boundary/internal/candidate"
	"github.com/resoltico/boundary/internal/contour"
	"github.com/resoltico/boundary/internal/geometry"
	"github.com/resoltico/boundary/internal/imaging"
	"github.com/resoltico/boundary/internal/logging"
)

const component = "pipeline"

// Run executes the fixed grayscale -> blur -> edges -> threshold ->
// contours -> filter stage sequence once, against opts (merged with
// defaults), and returns every surviving boundary. It mirrors the
// teacher's chain.Processor stage sequencing but over this package's
// own filter set rather than Otsu thresholding.
func Run(raster imaging.Raster, opts Options, log logging.Logger) (Result, error) {
	opts = opts.resolve()

	gray := imaging.Grayscale(raster)
	blurred := imaging.GaussianBlur(gray, opts.BlurRadius)
	edges := imaging.Sobel(blurred)
	threshold := imaging.AdaptiveMeanThreshold(blurred, 15, 5)
	combined := imaging.Combine(edges, threshold, opts.EdgeThreshold)
	processed := imaging.Close(combined, 2, 1)

	contours := contour.Trace(processed)
	log.Debug(component, "traced contours", map[string]interface{}{"count": len(contours)})

	imageArea := float64(raster.Width * raster.Height)
	candOpts := candidate.Options{
		MinAreaRatio: opts.MinAreaRatio,
		MaxAreaRatio: opts.MaxAreaRatio,
		MinAspect:    candidate.DefaultOptions.MinAspect,
		MaxAspect:    candidate.DefaultOptions.MaxAspect,
	}

	var polygons []imaging.Contour
	for _, c := range contours {
		if !candidate.PreFilter(c, imageArea, candOpts) {
			continue
		}
		perimeter := geometry.Perimeter(c)
		simplified := approx.Simplify(c, perimeter)
		if simplified == nil {
			continue
		}
		polygons = append(polygons, candidate.OrderQuad(simplified))
	}

	boxes := make([]imaging.BoundingBox, len(polygons))
	areas := make([]float64, len(polygons))
	for i, p := range polygons {
		boxes[i] = geometry.BoundingBox(p)
		areas[i] = geometry.Area(p)
	}

	kept := candidate.SuppressOverlaps(boxes, areas)

	keptBoxes := make([]imaging.BoundingBox, len(kept))
	for i, idx := range kept {
		keptBoxes[i] = boxes[idx]
	}
	types := candidate.Classify(keptBoxes)

	boundaries := make([]Boundary, len(kept))
	for i, idx := range kept {
		p := polygons[idx]
		bbox := boxes[idx]
		aspect := 0.0
		if bbox.Height != 0 {
			aspect = bbox.Width / bbox.Height
		}
		boundaries[i] = Boundary{
			Points:       p,
			Area:         areas[idx],
			AspectRatio:  aspect,
			NumVertices:  len(p),
			BoundingRect: bbox,
			IsConvex:     geometry.IsConvex(p),
			Type:         string(types[i]),
		}
	}

	result := Result{
		Boundaries: boundaries,
		Intermediate: map[string]*imaging.GrayBuffer{
			"grayscale": gray,
			"edges":     edges,
			"threshold": threshold,
			"processed": processed,
		},
		Stats: Stats{
			TotalDetected:      len(boundaries),
			ProcessingPipeline: DefaultProcessingPipeline,
		},
	}
	return result, nil
}
