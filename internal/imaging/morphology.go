package imaging

// Dilate replaces each pixel with the maximum over a (2r+1)x(2r+1)
// clamp-to-edge neighborhood.
func Dilate(in *GrayBuffer, r int) *GrayBuffer {
	return morph(in, r, func(a, b byte) byte {
		if a > b {
			return a
		}
		return b
	}, 0)
}

// Erode replaces each pixel with the minimum over a (2r+1)x(2r+1)
// clamp-to-edge neighborhood.
func Erode(in *GrayBuffer, r int) *GrayBuffer {
	return morph(in, r, func(a, b byte) byte {
		if a < b {
			return a
		}
		return b
	}, 255)
}

func morph(in *GrayBuffer, r int, combine func(a, b byte) byte, identity byte) *GrayBuffer {
	out := NewGrayBuffer(in.Width, in.Height)
	parallelRows(in.Height, func(y int) {
		for x := 0; x < in.Width; x++ {
			acc := identity
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					acc = combine(acc, in.At(x+dx, y+dy))
				}
			}
			out.Set(x, y, acc)
		}
	})
	return out
}

// Close applies the specified dilate-then-erode sequence used to clean
// up the combined mask before contour tracing.
func Close(mask *Mask, dilateRadius, erodeRadius int) *Mask {
	dilated := Dilate(mask, dilateRadius)
	return Erode(dilated, erodeRadius)
}
