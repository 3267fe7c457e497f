// Package reference wraps third-party resamplers behind one interface so
// the engine's output can be checked against them.
//
// Every Resizer works on standard library images; Run converts to and from
// Raster. Only extents and, loosely, values are expected to agree: each
// library has its own edge handling and rounding.
package reference

import (
	"fmt"
	"image"

	"github.com/go-errors/errors"

	raster "github.com/gogpu/resample/internal/image"
	"github.com/gogpu/resample/internal/sample"
)

// Resizer scales an image to an exact size.
type Resizer interface {
	// Name identifies the library and filter, e.g. "nfnt/bilinear".
	Name() string

	// Resize returns img scaled to size.
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// All returns one Resizer per supported library for method m.
func All(m sample.Method) []Resizer {
	return []Resizer{
		XDraw(m),
		NFNT(m),
		Gift(m),
		Imaging(m),
		Bild(m),
		Rez(m),
	}
}

// ByName returns the Resizer of All(m) called name.
func ByName(name string, m sample.Method) (Resizer, error) {
	for _, r := range All(m) {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, errors.Errorf("reference: unknown resizer %q", name)
}

// Run resizes src to width x height with r and returns the result in
// src's format.
func Run(r Resizer, src *raster.Raster, width, height int) (*raster.Raster, error) {
	if err := src.Validate(); err != nil {
		return nil, errors.WrapPrefix(err, "reference: "+r.Name(), 0)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.WrapPrefix(raster.ErrInvalidDimensions,
			fmt.Sprintf("reference: %s: %dx%d", r.Name(), width, height), 0)
	}

	img, err := r.Resize(src.ToStdImage(), image.Point{X: width, Y: height})
	if err != nil {
		return nil, errors.WrapPrefix(err, "reference: "+r.Name(), 0)
	}
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		return nil, errors.Errorf("reference: %s returned %dx%d, want %dx%d",
			r.Name(), b.Dx(), b.Dy(), width, height)
	}

	out, err := raster.FromStdImage(img)
	if err != nil {
		return nil, errors.WrapPrefix(err, "reference: "+r.Name(), 0)
	}
	if out.Format() != src.Format() {
		converted, err := out.Convert(src.Format())
		if err != nil {
			return nil, errors.Wrap(err, 0)
		}
		out = converted
	}
	return out, nil
}

// methodName is the filter suffix of a Resizer name.
func methodName(m sample.Method) string {
	if m == sample.Nearest {
		return "nearest"
	}
	return "bilinear"
}
