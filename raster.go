package resample

import (
	"github.com/gogpu/resample/internal/image"
	"github.com/gogpu/resample/internal/mapping"
	"github.com/gogpu/resample/internal/sample"
)

// Raster is a packed 8-bit grayscale or RGB pixel buffer.
type Raster = image.Raster

// Format is the pixel layout of a Raster.
type Format = image.Format

// Pool reuses rasters of identical shape.
type Pool = image.Pool

// Method is the interpolation kernel.
type Method = sample.Method

// Numeric is the arithmetic the kernels and coordinate mapping run in.
type Numeric = sample.Numeric

// Policy is the coordinate mapping policy.
type Policy = mapping.Policy

// Pixel formats.
const (
	Gray = image.FormatGray
	RGB  = image.FormatRGB
)

// Interpolation methods.
const (
	Nearest  = sample.Nearest
	Bilinear = sample.Bilinear
)

// Numeric backends.
const (
	Float = sample.Float
	Fixed = sample.Fixed
)

// Mapping policies.
const (
	CenterAligned = mapping.CenterAligned
	OriginAligned = mapping.OriginAligned
)

// Error classes. Use errors.Is to test for them.
var (
	// ErrInvalidParameter reports input that can never succeed:
	// non-positive scale or dimensions, unsupported channel counts,
	// nil or released rasters.
	ErrInvalidParameter = image.ErrInvalidParameter

	// ErrAllocation reports a raster that could not be allocated.
	ErrAllocation = image.ErrAllocation
)

// NewRaster creates a zeroed raster.
func NewRaster(width, height int, format Format) (*Raster, error) {
	return image.NewRaster(width, height, format)
}

// FromBytes wraps a packed buffer of width*height*channels bytes without
// copying. channels must be 1 or 3.
func FromBytes(data []byte, width, height, channels int) (*Raster, error) {
	format, err := image.FormatForChannels(channels)
	if err != nil {
		return nil, err
	}
	return image.FromRaw(data, width, height, format)
}

// NewPool creates a raster pool retaining at most maxPerBucket rasters of
// each shape (0 means unlimited).
func NewPool(maxPerBucket int) *Pool {
	return image.NewPool(maxPerBucket)
}

// ParseMethod parses "nearest" or "bilinear".
func ParseMethod(s string) (Method, error) {
	return sample.ParseMethod(s)
}

// ParseNumeric parses "float" or "fixed".
func ParseNumeric(s string) (Numeric, error) {
	return sample.ParseNumeric(s)
}

// ParsePolicy parses "center" or "origin".
func ParsePolicy(s string) (Policy, error) {
	return mapping.ParsePolicy(s)
}
