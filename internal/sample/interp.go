// Package sample implements the per-pixel interpolation kernels.
//
// Kernels read a source raster at the neighborhood described by one Tap
// per axis and write a single output pixel. They never index outside the
// source: the taps are clamped by the mapping package before any kernel
// sees them.
package sample

import (
	"fmt"

	"github.com/gogpu/resample/internal/fixed"
	"github.com/gogpu/resample/internal/image"
	"github.com/gogpu/resample/internal/mapping"
)

// ErrMethod is returned for an unknown Method or Numeric value.
var ErrMethod = fmt.Errorf("sample: unknown method: %w", image.ErrInvalidParameter)

// Method defines how a source neighborhood is turned into a pixel.
type Method uint8

const (
	// Nearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	Nearest Method = iota

	// Bilinear performs linear interpolation between 4 neighboring pixels.
	Bilinear

	methodCount
)

// String returns a string representation of the method.
func (m Method) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	default:
		return "Unknown"
	}
}

// IsValid returns true if m is a known method.
func (m Method) IsValid() bool {
	return m < methodCount
}

// ParseMethod parses a method name as returned by String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "nearest":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	default:
		return methodCount, fmt.Errorf("%w: %q", ErrMethod, s)
	}
}

// Numeric selects the arithmetic a kernel is computed in.
type Numeric uint8

const (
	// Float computes weights and blends in float64.
	Float Numeric = iota

	// Fixed computes weights and blends in Q16.16 integers.
	Fixed

	numericCount
)

// String returns a string representation of the numeric backend.
func (n Numeric) String() string {
	switch n {
	case Float:
		return "float"
	case Fixed:
		return "fixed"
	default:
		return "Unknown"
	}
}

// IsValid returns true if n is a known numeric backend.
func (n Numeric) IsValid() bool {
	return n < numericCount
}

// ParseNumeric parses a backend name as returned by String.
func ParseNumeric(s string) (Numeric, error) {
	switch s {
	case "float":
		return Float, nil
	case "fixed":
		return Fixed, nil
	default:
		return numericCount, fmt.Errorf("%w: numeric %q", ErrMethod, s)
	}
}

// Kernel writes the output pixel for the source neighborhood (tx, ty)
// into px. len(px) is the channel count of src.
type Kernel func(src *image.Raster, tx, ty mapping.Tap, px []byte)

// Select returns the kernel specialized for the given method, numeric
// backend and format. Nearest ignores the numeric backend.
func Select(m Method, n Numeric, f image.Format) (Kernel, error) {
	if !m.IsValid() || !n.IsValid() {
		return nil, ErrMethod
	}
	if !f.IsValid() {
		return nil, image.ErrInvalidFormat
	}

	gray := f == image.FormatGray
	switch {
	case m == Nearest && gray:
		return NearestGray, nil
	case m == Nearest:
		return NearestRGB, nil
	case n == Float && gray:
		return BilinearGray, nil
	case n == Float:
		return BilinearRGB, nil
	case gray:
		return BilinearGrayQ, nil
	default:
		return BilinearRGBQ, nil
	}
}

// NearestGray copies the grayscale pixel at (tx.I0, ty.I0).
func NearestGray(src *image.Raster, tx, ty mapping.Tap, px []byte) {
	px[0] = src.Data()[ty.I0*src.Width()+tx.I0]
}

// NearestRGB copies the RGB pixel at (tx.I0, ty.I0).
func NearestRGB(src *image.Raster, tx, ty mapping.Tap, px []byte) {
	off := (ty.I0*src.Width() + tx.I0) * 3
	copy(px[:3], src.Data()[off:off+3])
}

// BilinearGray blends the four grayscale neighbors in float64.
func BilinearGray(src *image.Raster, tx, ty mapping.Tap, px []byte) {
	data, w := src.Data(), src.Width()
	row0, row1 := ty.I0*w, ty.I1*w

	p00 := float64(data[row0+tx.I0])
	p01 := float64(data[row0+tx.I1])
	p10 := float64(data[row1+tx.I0])
	p11 := float64(data[row1+tx.I1])

	px[0] = toByte(lerp2D(p00, p01, p10, p11, tx.Frac, ty.Frac))
}

// BilinearRGB blends the four RGB neighbors in float64, each channel
// independently with the same weights.
func BilinearRGB(src *image.Raster, tx, ty mapping.Tap, px []byte) {
	data, w := src.Data(), src.Width()
	o00 := (ty.I0*w + tx.I0) * 3
	o01 := (ty.I0*w + tx.I1) * 3
	o10 := (ty.I1*w + tx.I0) * 3
	o11 := (ty.I1*w + tx.I1) * 3

	for c := range 3 {
		px[c] = toByte(lerp2D(
			float64(data[o00+c]), float64(data[o01+c]),
			float64(data[o10+c]), float64(data[o11+c]),
			tx.Frac, ty.Frac))
	}
}

// BilinearGrayQ blends the four grayscale neighbors in Q16.16.
func BilinearGrayQ(src *image.Raster, tx, ty mapping.Tap, px []byte) {
	data, w := src.Data(), src.Width()
	row0, row1 := ty.I0*w, ty.I1*w

	px[0] = toByteQ(lerp2DQ(
		int(data[row0+tx.I0]), int(data[row0+tx.I1]),
		int(data[row1+tx.I0]), int(data[row1+tx.I1]),
		tx.FracQ, ty.FracQ))
}

// BilinearRGBQ blends the four RGB neighbors in Q16.16.
func BilinearRGBQ(src *image.Raster, tx, ty mapping.Tap, px []byte) {
	data, w := src.Data(), src.Width()
	o00 := (ty.I0*w + tx.I0) * 3
	o01 := (ty.I0*w + tx.I1) * 3
	o10 := (ty.I1*w + tx.I0) * 3
	o11 := (ty.I1*w + tx.I1) * 3

	for c := range 3 {
		px[c] = toByteQ(lerp2DQ(
			int(data[o00+c]), int(data[o01+c]),
			int(data[o10+c]), int(data[o11+c]),
			tx.FracQ, ty.FracQ))
	}
}

// Expanded evaluates the bilinear surface in its polynomial form:
// p00 + (p01-p00)*dx + (p10-p00)*dy + (p00-p01-p10+p11)*dx*dy.
// It equals lerp2D up to rounding.
func Expanded(p00, p01, p10, p11, dx, dy float64) float64 {
	return p00 + (p01-p00)*dx + (p10-p00)*dy + (p00-p01-p10+p11)*dx*dy
}

// clampFloat clamps a float64 value to [minVal, maxVal].
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// toByte clamps v to [0, 255] and truncates it.
func toByte(v float64) byte {
	return byte(clampFloat(v, 0, 255))
}

// toByteQ clamps q to [0, 255] and floors it.
func toByteQ(q fixed.Q16) byte {
	return byte(mapping.Clamp(q.Int(), 256))
}

// lerp performs linear interpolation between a and b.
// a + (b-a)*t returns a exactly when a == b and is monotonic in t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid: top row (v00, v01),
// bottom row (v10, v11).
func lerp2D(v00, v01, v10, v11, tx, ty float64) float64 {
	top := lerp(v00, v01, tx)
	bottom := lerp(v10, v11, tx)
	return lerp(top, bottom, ty)
}

// lerp2DQ is lerp2D on 8-bit samples with Q16.16 weights. The blends keep
// all 16 fractional bits; only the final result is floored.
func lerp2DQ(v00, v01, v10, v11 int, tx, ty fixed.Q16) fixed.Q16 {
	top := fixed.Lerp(fixed.FromInt(v00), fixed.FromInt(v01), tx)
	bottom := fixed.Lerp(fixed.FromInt(v10), fixed.FromInt(v11), tx)
	return fixed.Lerp(top, bottom, ty)
}
