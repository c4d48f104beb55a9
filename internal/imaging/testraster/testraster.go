// Package testraster builds deterministic synthetic rasters for tests
// that exercise the detection pipeline end to end, without routing
// through the cmd/boundary-detect file-loading path. It draws with the
// standard image/draw primitives plus golang.org/x/image/vector for
// rotated shapes, keeping the core imaging package free of any image
// decoding or rasterization dependency.
package testraster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/resoltico/boundary/internal/imaging"
)

// Solid returns a width x height raster filled with a single RGBA color.
func Solid(width, height int, c color.RGBA) imaging.Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	r, err := imaging.NewRaster(width, height, img.Pix)
	if err != nil {
		panic(err) // fixture construction is a programming error, not a runtime one
	}
	return r
}

// Rectangle draws an axis-aligned filled rectangle [x0,y0)-[x1,y1) of
// fill over a bg background.
func Rectangle(width, height, x0, y0, x1, y1 int, bg, fill color.RGBA) imaging.Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: fill}, image.Point{}, draw.Src)
	r, err := imaging.NewRaster(width, height, img.Pix)
	if err != nil {
		panic(err)
	}
	return r
}

// RotatedRectangle draws a filled rectangle of the given half-width and
// half-height, centered at (cx, cy) and rotated by angleDegrees about
// its center, anti-aliased via golang.org/x/image/vector so the test
// fixture's edges resemble a camera-photographed page rather than a
// perfectly axis-aligned stencil.
func RotatedRectangle(width, height int, cx, cy, halfW, halfH, angleDegrees float64, bg, fill color.RGBA) imaging.Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	theta := angleDegrees * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	rotate := func(dx, dy float64) (float64, float64) {
		return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
	}

	corners := [4][2]float64{{-halfW, -halfH}, {halfW, -halfH}, {halfW, halfH}, {-halfW, halfH}}
	rast := vector.NewRasterizer(width, height)
	x0, y0 := rotate(corners[0][0], corners[0][1])
	rast.MoveTo(float32(x0), float32(y0))
	for _, corner := range corners[1:] {
		x, y := rotate(corner[0], corner[1])
		rast.LineTo(float32(x), float32(y))
	}
	rast.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Draw(mask, mask.Bounds(), image.NewUniform(color.Opaque), image.Point{})
	draw.DrawMask(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, mask, image.Point{}, draw.Over)

	r, err := imaging.NewRaster(width, height, img.Pix)
	if err != nil {
		panic(err)
	}
	return r
}

// TwoRectangles places two equal-size rectangles side by side with the
// given gap in pixels, simulating an open book spread or two separate
// sheets photographed together.
func TwoRectangles(width, height, rectW, rectH, gap int, bg, fill color.RGBA) imaging.Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	totalW := 2*rectW + gap
	x0 := (width - totalW) / 2
	y0 := (height - rectH) / 2

	draw.Draw(img, image.Rect(x0, y0, x0+rectW, y0+rectH), &image.Uniform{C: fill}, image.Point{}, draw.Src)
	secondX := x0 + rectW + gap
	draw.Draw(img, image.Rect(secondX, y0, secondX+rectW, y0+rectH), &image.Uniform{C: fill}, image.Point{}, draw.Src)

	r, err := imaging.NewRaster(width, height, img.Pix)
	if err != nil {
		panic(err)
	}
	return r
}
