package imaging

// integralImage builds a summed-area table with an extra leading
// row/column of zeros so that sum(x0..x1, y0..y1) is a constant-time
// four-lookup regardless of window size.
type integralImage struct {
	width, height int // dimensions of the underlying buffer
	sum           []float64
}

func newIntegralImage(g *GrayBuffer) *integralImage {
	w, h := g.Width, g.Height
	ii := &integralImage{width: w, height: h, sum: make([]float64, (w+1)*(h+1))}
	stride := w + 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ii.sum[(y+1)*stride+(x+1)] = float64(g.Pix[y*w+x]) +
				ii.sum[y*stride+(x+1)] +
				ii.sum[(y+1)*stride+x] -
				ii.sum[y*stride+x]
		}
	}
	return ii
}

// windowMean returns the mean of in-bounds samples in the inclusive
// window [x0,x1] x [y0,y1], which the caller has already clamped to
// the buffer bounds, along with the sample count.
func (ii *integralImage) windowMean(x0, y0, x1, y1 int) (mean float64, count int) {
	stride := ii.width + 1
	total := ii.sum[(y1+1)*stride+(x1+1)] - ii.sum[y0*stride+(x1+1)] - ii.sum[(y1+1)*stride+x0] + ii.sum[y0*stride+x0]
	count = (x1 - x0 + 1) * (y1 - y0 + 1)
	if count == 0 {
		return 0, 0
	}
	return total / float64(count), count
}

// AdaptiveMeanThreshold binarizes in using a local mean computed over a
// blockSize x blockSize window, using only the samples that actually
// lie in-bounds (no clamp-to-edge extension here — the window simply
// shrinks near the border). Output pixel is 255 where the source pixel
// is darker than the local mean by more than C.
func AdaptiveMeanThreshold(in *GrayBuffer, blockSize, c int) *Mask {
	if blockSize%2 == 0 {
		blockSize++
	}
	half := blockSize / 2
	ii := newIntegralImage(in)
	out := NewGrayBuffer(in.Width, in.Height)

	parallelRows(in.Height, func(y int) {
		y0 := y - half
		if y0 < 0 {
			y0 = 0
		}
		y1 := y + half
		if y1 >= in.Height {
			y1 = in.Height - 1
		}
		for x := 0; x < in.Width; x++ {
			x0 := x - half
			if x0 < 0 {
				x0 = 0
			}
			x1 := x + half
			if x1 >= in.Width {
				x1 = in.Width - 1
			}
			mean, _ := ii.windowMean(x0, y0, x1, y1)
			p := float64(in.At(x, y))
			if p < mean-float64(c) {
				out.Set(x, y, 255)
			} else {
				out.Set(x, y, 0)
			}
		}
	})

	return out
}

// Combine ORs the edge and threshold masks per-pixel: a pixel is white
// in the output if the Sobel magnitude exceeds edgeThreshold or the
// adaptive threshold mask marked it foreground.
func Combine(edges, threshold *GrayBuffer, edgeThreshold int) *Mask {
	out := NewGrayBuffer(edges.Width, edges.Height)
	for i := range out.Pix {
		if int(edges.Pix[i]) > edgeThreshold || int(threshold.Pix[i]) > 128 {
			out.Pix[i] = 255
		}
	}
	return out
}
