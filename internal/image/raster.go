package image

import (
	"bytes"
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package wraps one of them.
var (
	// ErrInvalidParameter is returned for shapes, formats or data that can
	// never be valid. Retrying with the same input fails identically.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAllocation is returned when a buffer cannot be allocated.
	ErrAllocation = errors.New("allocation failure")
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = fmt.Errorf("image: invalid dimensions: %w", ErrInvalidParameter)

	// ErrInvalidFormat is returned when the format (or channel count) is not supported.
	ErrInvalidFormat = fmt.Errorf("image: invalid format: %w", ErrInvalidParameter)

	// ErrDataSize is returned when wrapped data does not match the shape exactly.
	ErrDataSize = fmt.Errorf("image: data size does not match shape: %w", ErrInvalidParameter)

	// ErrReleased is returned when a released raster is used.
	ErrReleased = fmt.Errorf("image: raster released: %w", ErrInvalidParameter)

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = fmt.Errorf("image: coordinates out of bounds: %w", ErrInvalidParameter)

	// ErrTooLarge is returned when a raster would exceed MaxBytes.
	ErrTooLarge = fmt.Errorf("image: raster too large: %w", ErrAllocation)
)

// MaxBytes is the largest pixel buffer NewRaster allocates.
const MaxBytes = 1 << 31

// Raster is a packed 8-bit pixel buffer.
//
// Pixels are stored row-major with no padding between rows; within a
// pixel the channels are interleaved (R,G,B for FormatRGB).
//
// Thread safety: Raster is safe for concurrent reads. Writes to distinct
// pixels may proceed concurrently; anything else requires external
// synchronization.
type Raster struct {
	data     []byte
	width    int
	height   int
	format   Format
	released bool
}

// NewRaster creates a zeroed raster with the given dimensions and format.
// The shape is validated before anything is allocated.
func NewRaster(width, height int, format Format) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	size, ok := format.ImageBytes(width, height)
	if !ok || size > MaxBytes {
		return nil, fmt.Errorf("%w: %dx%d %s", ErrTooLarge, width, height, format)
	}

	data, err := allocate(size)
	if err != nil {
		return nil, err
	}

	return &Raster{
		data:   data,
		width:  width,
		height: height,
		format: format,
	}, nil
}

// allocate turns a makeslice panic into ErrAllocation.
func allocate(size int) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("image: allocate %d bytes: %w: %v", size, ErrAllocation, r)
		}
	}()
	return make([]byte, size), nil
}

// FromRaw creates a Raster over existing data without copying.
// len(data) must equal width*height*channels. The caller must not resize
// data for the lifetime of the Raster.
func FromRaw(data []byte, width, height int, format Format) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	size, ok := format.ImageBytes(width, height)
	if !ok || len(data) != size {
		return nil, fmt.Errorf("%w: have %d bytes, want %dx%dx%d",
			ErrDataSize, len(data), width, height, format.Channels())
	}

	return &Raster{
		data:   data,
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Release drops the pixel buffer. It is safe to call more than once and
// on a nil Raster.
func (r *Raster) Release() {
	if r == nil {
		return
	}
	r.data = nil
	r.released = true
}

// Released reports whether Release has been called.
func (r *Raster) Released() bool {
	return r != nil && r.released
}

// Validate returns an error if r cannot be read as a resize source.
func (r *Raster) Validate() error {
	switch {
	case r == nil:
		return fmt.Errorf("image: nil raster: %w", ErrInvalidParameter)
	case r.released:
		return ErrReleased
	case r.width <= 0 || r.height <= 0:
		return ErrInvalidDimensions
	case !r.format.IsValid():
		return ErrInvalidFormat
	}
	if size, _ := r.format.ImageBytes(r.width, r.height); len(r.data) != size {
		return ErrDataSize
	}
	return nil
}

// Clone creates a deep copy of the raster. Clone of nil is nil.
func (r *Raster) Clone() *Raster {
	if r == nil {
		return nil
	}
	newData := make([]byte, len(r.data))
	copy(newData, r.data)

	return &Raster{
		data:     newData,
		width:    r.width,
		height:   r.height,
		format:   r.format,
		released: r.released,
	}
}

// Width returns the image width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the image height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Format returns the pixel format.
func (r *Raster) Format() Format {
	return r.format
}

// Channels returns the number of samples per pixel.
func (r *Raster) Channels() int {
	return r.format.Channels()
}

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int {
	return r.format.RowBytes(r.width)
}

// Bounds returns the image dimensions as (width, height).
func (r *Raster) Bounds() (int, int) {
	return r.width, r.height
}

// Data returns the raw pixel data slice.
func (r *Raster) Data() []byte {
	return r.data
}

// ByteSize returns the total size of the image data in bytes.
func (r *Raster) ByteSize() int {
	return len(r.data)
}

// Row returns the pixel data for row y.
// Returns nil if y is out of bounds.
func (r *Raster) Row(y int) []byte {
	if y < 0 || y >= r.height || r.released {
		return nil
	}
	stride := r.Stride()
	start := y * stride
	return r.data[start : start+stride : start+stride]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (r *Raster) PixelOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height || r.released {
		return -1
	}
	return (y*r.width + x) * r.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (r *Raster) PixelBytes(x, y int) []byte {
	offset := r.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	bpp := r.format.BytesPerPixel()
	return r.data[offset : offset+bpp : offset+bpp]
}

// SetPixelBytes sets the raw bytes for pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (r *Raster) SetPixelBytes(x, y int, pixel []byte) error {
	offset := r.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	if len(pixel) != r.format.BytesPerPixel() {
		return ErrDataSize
	}
	copy(r.data[offset:], pixel)
	return nil
}

// Gray returns the intensity at (x, y).
// For RGB rasters this is the Rec. 601 luma of the pixel.
// Returns 0 if coordinates are out of bounds.
func (r *Raster) Gray(x, y int) uint8 {
	pixel := r.PixelBytes(x, y)
	if pixel == nil {
		return 0
	}
	if r.format == FormatGray {
		return pixel[0]
	}
	return luma(pixel[0], pixel[1], pixel[2])
}

// SetGray sets the intensity at (x, y).
// For RGB rasters all three channels are set to v.
func (r *Raster) SetGray(x, y int, v uint8) error {
	pixel := r.PixelBytes(x, y)
	if pixel == nil {
		return ErrOutOfBounds
	}
	for i := range pixel {
		pixel[i] = v
	}
	return nil
}

// RGB returns the color at (x, y).
// For grayscale rasters r=g=b=gray.
// Returns (0,0,0) if coordinates are out of bounds.
func (r *Raster) RGB(x, y int) (red, green, blue uint8) {
	pixel := r.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0
	}
	if r.format == FormatGray {
		return pixel[0], pixel[0], pixel[0]
	}
	return pixel[0], pixel[1], pixel[2]
}

// SetRGB sets the color at (x, y).
// For grayscale rasters the Rec. 601 luma is stored.
func (r *Raster) SetRGB(x, y int, red, green, blue uint8) error {
	pixel := r.PixelBytes(x, y)
	if pixel == nil {
		return ErrOutOfBounds
	}
	if r.format == FormatGray {
		pixel[0] = luma(red, green, blue)
		return nil
	}
	pixel[0], pixel[1], pixel[2] = red, green, blue
	return nil
}

// Clear sets all samples to zero.
func (r *Raster) Clear() {
	clear(r.data)
}

// Convert returns a copy of r in format f. RGB to Gray stores the Rec. 601
// luma; Gray to RGB replicates the sample into all channels.
func (r *Raster) Convert(f Format) (*Raster, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if f == r.format {
		return r.Clone(), nil
	}
	out, err := NewRaster(r.width, r.height, f)
	if err != nil {
		return nil, err
	}
	n := r.width * r.height
	if f == FormatGray {
		for i := range n {
			out.data[i] = luma(r.data[3*i], r.data[3*i+1], r.data[3*i+2])
		}
		return out, nil
	}
	for i := range n {
		v := r.data[i]
		out.data[3*i], out.data[3*i+1], out.data[3*i+2] = v, v, v
	}
	return out, nil
}

// Equal reports whether a and b have the same shape and identical samples.
func Equal(a, b *Raster) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.width == b.width && a.height == b.height &&
		a.format == b.format && bytes.Equal(a.data, b.data)
}

// luma computes standard luminance: 0.299*R + 0.587*G + 0.114*B.
func luma(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
}
