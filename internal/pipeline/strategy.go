package pipeline

import (
	"fmt"

	"github.com/resoltico/boundary/internal/imaging"
	"github.com/resoltico/boundary/internal/logging"
)

// strategyFailed wraps a single strategy's Run error so the loop below
// can log a typed, wrapped cause without ever returning it: the
// specification requires a strategy failure to be recoverable by
// trying the next variation, never surfaced past RunEnhanced.
type strategyFailed struct {
	strategy string
	err      error
}

func (s *strategyFailed) Error() string {
	return fmt.Sprintf("strategy %q failed: %v", s.strategy, s.err)
}

func (s *strategyFailed) Unwrap() error { return s.err }

// strategy names one of the four fixed parameter variations tried by
// RunEnhanced, grounded on the registry-of-named-variants shape the
// teacher's algorithm manager uses to try otsu / otsu2d / triclass in
// sequence and keep the first that satisfies its own acceptance rule.
type strategy struct {
	name  string
	apply func(base Options) Options
}

var strategies = []strategy{
	{name: "base", apply: func(base Options) Options { return base }},
	{name: "sensitive-edges", apply: func(base Options) Options {
		return base.WithEdgeThreshold(30).WithMinAreaRatio(0.03)
	}},
	{name: "coarse-edges", apply: func(base Options) Options {
		return base.WithEdgeThreshold(70).WithBlurRadius(3)
	}},
	{name: "wide-area", apply: func(base Options) Options {
		return base.WithMinAreaRatio(0.01).WithMaxAreaRatio(0.98)
	}},
}

// RunEnhanced tries each strategy in order against raster, returning
// the first run that finds at least one four-vertex boundary. If none
// does, it returns the run with the most four-vertex boundaries,
// breaking ties by total boundary count and then by strategy order.
// A strategy whose Run fails is logged and skipped, never surfaced to
// the caller; only a run that returns a result is considered.
func RunEnhanced(raster imaging.Raster, base Options, log logging.Logger) (Result, error) {
	var best Result
	haveBest := false
	bestQuadCount := -1

	for _, s := range strategies {
		opts := s.apply(base)
		result, err := Run(raster, opts, log)
		if err != nil {
			sf := &strategyFailed{strategy: s.name, err: err}
			log.Warning(component, "strategy run failed, continuing", map[string]interface{}{
				"strategy": s.name,
				"error":    sf.Error(),
			})
			continue
		}

		quadCount := countQuads(result.Boundaries)
		if quadCount >= 1 {
			log.Debug(component, "strategy accepted", map[string]interface{}{
				"strategy": s.name,
				"quads":    quadCount,
			})
			return result, nil
		}

		if !haveBest || quadCount > bestQuadCount ||
			(quadCount == bestQuadCount && len(result.Boundaries) > len(best.Boundaries)) {
			best = result
			bestQuadCount = quadCount
			haveBest = true
		}
	}

	if !haveBest {
		return Result{
			Intermediate: map[string]*imaging.GrayBuffer{},
			Stats:        Stats{ProcessingPipeline: DefaultProcessingPipeline},
		}, nil
	}
	return best, nil
}

func countQuads(boundaries []Boundary) int {
	count := 0
	for _, b := range boundaries {
		if b.NumVertices == 4 {
			count++
		}
	}
	return count
}
