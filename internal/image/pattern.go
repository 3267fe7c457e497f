package image

// Gradient returns a synthetic test pattern of the given shape.
//
// Grayscale: (x+y)*255/(w+h).
// RGB: red ramps with x, green ramps with y, blue follows the diagonal.
// All divisions are integer divisions, so the pattern is exact and
// reproducible.
func Gradient(width, height int, format Format) (*Raster, error) {
	r, err := NewRaster(width, height, format)
	if err != nil {
		return nil, err
	}

	diag := width + height
	for y := range height {
		row := r.Row(y)
		for x := range width {
			switch format {
			case FormatGray:
				row[x] = uint8((x + y) * 255 / diag)
			case FormatRGB:
				off := x * 3
				row[off] = uint8(x * 255 / width)
				row[off+1] = uint8(y * 255 / height)
				row[off+2] = uint8((x + y) * 255 / diag)
			}
		}
	}
	return r, nil
}

// Checkerboard returns a pattern of alternating black and white cells of
// the given size in pixels. It is a worst case for interpolation since
// every cell edge is a full-range step.
func Checkerboard(width, height, cell int, format Format) (*Raster, error) {
	r, err := NewRaster(width, height, format)
	if err != nil {
		return nil, err
	}
	if cell <= 0 {
		cell = 1
	}

	bpp := format.BytesPerPixel()
	for y := range height {
		row := r.Row(y)
		for x := range width {
			if (x/cell+y/cell)%2 == 0 {
				continue
			}
			for c := range bpp {
				row[x*bpp+c] = 255
			}
		}
	}
	return r, nil
}
