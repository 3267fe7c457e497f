package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image: empty image")

// Load decodes the image file at path into a Raster.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Load(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// SavePNG saves the raster as a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the raster as PNG to the given writer.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := png.Encode(w, r.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage converts a standard library image into a Raster.
//
// Grayscale color models produce FormatGray; every other model produces
// FormatRGB. Alpha is discarded: channels are taken unpremultiplied, as a
// decoder hands them out, and the alpha sample is dropped.
func FromStdImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}

	// Fast path for 8-bit grayscale
	if gray, ok := img.(*image.Gray); ok {
		r, err := NewRaster(width, height, FormatGray)
		if err != nil {
			return nil, err
		}
		for y := range height {
			srcStart := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(r.Row(y), gray.Pix[srcStart:srcStart+width])
		}
		return r, nil
	}

	if img.ColorModel() == color.GrayModel || img.ColorModel() == color.Gray16Model {
		r, err := NewRaster(width, height, FormatGray)
		if err != nil {
			return nil, err
		}
		for y := range height {
			row := r.Row(y)
			for x := range width {
				g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				row[x] = g.Y
			}
		}
		return r, nil
	}

	r, err := NewRaster(width, height, FormatRGB)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images (PNG with alpha)
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			row := r.Row(y)
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := range width {
				copy(row[x*3:x*3+3], src[x*4:x*4+3])
			}
		}
		return r, nil
	}

	// Generic slow path for any image type
	for y := range height {
		row := r.Row(y)
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			row[x*3] = c.R
			row[x*3+1] = c.G
			row[x*3+2] = c.B
		}
	}
	return r, nil
}

// ToStdImage converts the raster to a standard library image.
// Returns *image.Gray for grayscale and an opaque *image.RGBA for RGB.
func (r *Raster) ToStdImage() image.Image {
	rect := image.Rect(0, 0, r.width, r.height)

	if r.format == FormatGray {
		gray := image.NewGray(rect)
		for y := range r.height {
			copy(gray.Pix[y*gray.Stride:], r.Row(y))
		}
		return gray
	}

	rgba := image.NewRGBA(rect)
	for y := range r.height {
		row := r.Row(y)
		dstStart := y * rgba.Stride
		for x := range r.width {
			srcOff := x * 3
			dstOff := dstStart + x*4
			rgba.Pix[dstOff] = row[srcOff]
			rgba.Pix[dstOff+1] = row[srcOff+1]
			rgba.Pix[dstOff+2] = row[srcOff+2]
			rgba.Pix[dstOff+3] = 255
		}
	}
	return rgba
}
