package imaging

import "math"

// Sobel computes the gradient magnitude using the standard 3x3 Sobel
// kernels. The outermost one-pixel frame is forced to 0 rather than
// sampled with clamp-to-edge, per the specification's border policy
// for this filter specifically (blur and morphology clamp; the adaptive
// threshold shrinks its window instead).
func Sobel(in *GrayBuffer) *GrayBuffer {
	out := NewGrayBuffer(in.Width, in.Height)
	w, h := in.Width, in.Height

	parallelRows(h, func(y int) {
		if y == 0 || y == h-1 {
			return // left zeroed by allocation
		}
		for x := 1; x < w-1; x++ {
			p00 := float64(in.At(x-1, y-1))
			p10 := float64(in.At(x, y-1))
			p20 := float64(in.At(x+1, y-1))
			p01 := float64(in.At(x-1, y))
			p21 := float64(in.At(x+1, y))
			p02 := float64(in.At(x-1, y+1))
			p12 := float64(in.At(x, y+1))
			p22 := float64(in.At(x+1, y+1))

			gx := -p00 + p20 - 2*p01 + 2*p21 - p02 + p22
			gy := -p00 - 2*p10 - p20 + p02 + 2*p12 + p22

			mag := math.Sqrt(gx*gx + gy*gy)
			if mag > 255 {
				mag = 255
			}
			out.Set(x, y, clampByte(math.Round(mag)))
		}
	})

	return out
}
