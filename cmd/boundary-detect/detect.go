package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"github.com/resoltico/boundary"
	"github.com/resoltico/boundary/internal/cvio"
	"github.com/resoltico/boundary/internal/imaging"
)

var (
	outputPath    string
	minAreaRatio  float64
	maxAreaRatio  float64
	edgeThreshold int
	blurRadius    int
)

func init() {
	detectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the annotated image (default: print only)")
	detectCmd.Flags().Float64Var(&minAreaRatio, "min-area-ratio", 0, "minimum boundary area as a fraction of image area")
	detectCmd.Flags().Float64Var(&maxAreaRatio, "max-area-ratio", 0, "maximum boundary area as a fraction of image area")
	detectCmd.Flags().IntVar(&edgeThreshold, "edge-threshold", 0, "Sobel magnitude threshold")
	detectCmd.Flags().IntVar(&blurRadius, "blur-radius", 0, "Gaussian blur radius")

	enhancedCmd.Flags().AddFlagSet(detectCmd.Flags())

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(enhancedCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <image>",
	Short: "Run the single fixed detection pipeline against an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect(args[0], boundary.Detect)
	},
}

var enhancedCmd = &cobra.Command{
	Use:   "detect-enhanced <image>",
	Short: "Run the multi-strategy detection pipeline against an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect(args[0], boundary.DetectEnhanced)
	},
}

type detectFunc func(imaging.Raster, boundary.Options) (boundary.DetectionResult, error)

func runDetect(path string, detect detectFunc) error {
	mat := cvio.Wrap(gocv.IMRead(path, gocv.IMReadColor), path)
	defer mat.Close()
	if mat.Empty() {
		return fmt.Errorf("boundary-detect: could not read image %q", path)
	}

	raster, err := rasterFromMat(mat)
	if err != nil {
		return err
	}

	opts := optionsFromFlags()
	result, err := detect(raster, opts)
	if err != nil {
		return err
	}

	log.Info("cli", "detection complete", map[string]interface{}{
		"path":       path,
		"boundaries": result.Stats.TotalDetected,
	})
	for i, b := range result.Boundaries {
		fmt.Printf("boundary %d: type=%s vertices=%d area=%.1f convex=%v\n",
			i, b.Type, b.NumVertices, b.Area, b.IsConvex)
	}

	if outputPath != "" {
		return writeAnnotated(mat, result, outputPath)
	}
	return nil
}

func optionsFromFlags() boundary.Options {
	opts := boundary.DefaultOptions()
	if minAreaRatio > 0 {
		opts.MinAreaRatio = minAreaRatio
	}
	if maxAreaRatio > 0 {
		opts.MaxAreaRatio = maxAreaRatio
	}
	if edgeThreshold > 0 {
		opts.EdgeThreshold = edgeThreshold
	}
	if blurRadius > 0 {
		opts.BlurRadius = blurRadius
	}
	return opts
}

// rasterFromMat copies a 3-channel BGR gocv.Mat pixel by pixel into an
// RGBA imaging.Raster, the only point where a third-party decoder's
// pixel values cross into the detection library's own buffer type.
// Grounded on the teacher's copyMatBGRToRGBA conversion.
func rasterFromMat(mat *cvio.Mat) (imaging.Raster, error) {
	raw := mat.Raw()
	cols, rows := raw.Cols(), raw.Rows()
	if raw.Channels() != 3 {
		return imaging.Raster{}, fmt.Errorf("boundary-detect: expected a 3-channel BGR image, got %d channels", raw.Channels())
	}

	pix := make([]byte, 4*cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b := raw.GetUCharAt3(y, x, 0)
			g := raw.GetUCharAt3(y, x, 1)
			r := raw.GetUCharAt3(y, x, 2)
			i := 4 * (y*cols + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
		}
	}

	return imaging.NewRaster(cols, rows, pix)
}

func writeAnnotated(mat *cvio.Mat, result boundary.DetectionResult, path string) error {
	raw := mat.Raw()
	for _, b := range result.Boundaries {
		points := make([][]image.Point, 1)
		points[0] = make([]image.Point, len(b.Points))
		for i, p := range b.Points {
			points[0][i] = image.Pt(int(p.X), int(p.Y))
		}
		gocv.Polylines(&raw, points, true, color.RGBA{R: 0, G: 255, B: 0, A: 255}, 2)
	}
	if !gocv.IMWrite(path, raw) {
		return fmt.Errorf("boundary-detect: failed to write %q", path)
	}
	log.Info("cli", "wrote annotated image", map[string]interface{}{"path": path})
	return nil
}
