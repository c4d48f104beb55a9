// Package imaging holds the pixel buffer primitives and filter kernels
// the detection pipeline chains together: grayscale conversion,
// Gaussian blur, Sobel magnitude, adaptive mean threshold, and
// morphological dilate/erode. Every filter here reads one GrayBuffer
// and produces a fresh one of identical dimensions, using clamp-to-edge
// sampling except where noted (Sobel zeroes its one-pixel border and the
// adaptive threshold shrinks its window at the edges), mirroring the teacher's per-algorithm Mat-in/Mat-out shape
// in internal/processing/filters without depending on OpenCV: the
// pipeline's border handling and sample-counting rules are part of the
// detector's observable contract, so they are hand-rolled instead of
// delegated to a CV library's built-in kernels.
package imaging

import "fmt"

// Raster is an immutable, caller-owned RGBA image: width W, height H,
// row-major, top-left origin, 4 bytes per pixel.
type Raster struct {
	Width, Height int
	Pix           []byte // len == 4*Width*Height
}

// NewRaster validates and wraps an existing RGBA pixel buffer.
func NewRaster(width, height int, pix []byte) (Raster, error) {
	if width <= 0 || height <= 0 {
		return Raster{}, fmt.Errorf("imaging: invalid dimensions %dx%d: %w", width, height, ErrInvalidInput)
	}
	if len(pix) != 4*width*height {
		return Raster{}, fmt.Errorf("imaging: pixel buffer length %d != %d: %w", len(pix), 4*width*height, ErrInvalidInput)
	}
	return Raster{Width: width, Height: height, Pix: pix}, nil
}

// ErrInvalidInput is wrapped by imaging validation failures so callers
// further up the stack can classify them with errors.Is.
var ErrInvalidInput = fmt.Errorf("invalid input")

// GrayBuffer is a single-channel 8-bit image of fixed W x H.
type GrayBuffer struct {
	Width, Height int
	Pix           []byte // len == Width*Height
}

// NewGrayBuffer allocates a zeroed buffer of the given dimensions.
func NewGrayBuffer(width, height int) *GrayBuffer {
	return &GrayBuffer{Width: width, Height: height, Pix: make([]byte, width*height)}
}

// At returns the pixel value at (x, y) using clamp-to-edge sampling for
// out-of-bounds coordinates, the border policy of the blur and
// morphology kernels in this package.
func (g *GrayBuffer) At(x, y int) byte {
	if x < 0 {
		x = 0
	} else if x >= g.Width {
		x = g.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.Height {
		y = g.Height - 1
	}
	return g.Pix[y*g.Width+x]
}

// InBounds reports whether (x, y) addresses an actual sample, as
// opposed to one reached only through clamp-to-edge extension.
func (g *GrayBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Set writes a pixel; callers must stay in bounds.
func (g *GrayBuffer) Set(x, y int, v byte) {
	g.Pix[y*g.Width+x] = v
}

// Clone returns an independent copy of the buffer.
func (g *GrayBuffer) Clone() *GrayBuffer {
	out := NewGrayBuffer(g.Width, g.Height)
	copy(out.Pix, g.Pix)
	return out
}

// Mask is a GrayBuffer whose pixels are restricted to {0, 255}.
type Mask = GrayBuffer

// Point is a coordinate in pixel space. Integer for raw contour points,
// real-valued once polygon approximation and geometry math act on it.
type Point struct {
	X, Y float64
}

// BoundingBox is an axis-aligned rectangle; Width and Height are
// non-negative.
type BoundingBox struct {
	X, Y, Width, Height float64
}

// MaxX and MaxY are convenience accessors used throughout geometry and
// candidate filtering.
func (b BoundingBox) MaxX() float64 { return b.X + b.Width }
func (b BoundingBox) MaxY() float64 { return b.Y + b.Height }

// Contour is a non-empty ordered sequence of integer pixel points
// describing a closed traversal of a connected white region's outer
// boundary in a Mask.
type Contour []Point
