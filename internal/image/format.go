// Package image provides the raster buffers the resampler reads and writes.
//
// A Raster is a tightly packed, row-major grid of 8-bit samples in one of
// two layouts: single-channel grayscale or three-channel interleaved RGB.
// The layout is carried by Format, so the element size of every buffer is
// known from its type.
package image

import "fmt"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray is 8-bit grayscale (1 byte per pixel).
	FormatGray Format = iota

	// FormatRGB is 24-bit RGB (3 bytes per pixel, R,G,B order, no alpha).
	FormatRGB

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of 8-bit samples per pixel.
	Channels int

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray: {Channels: 1, IsGrayscale: true},
	FormatRGB:  {Channels: 3, IsGrayscale: false},
}

// FormatForChannels returns the format holding n channels per pixel.
// Only 1 (grayscale) and 3 (RGB) are supported.
func FormatForChannels(n int) (Format, error) {
	switch n {
	case 1:
		return FormatGray, nil
	case 3:
		return FormatRGB, nil
	default:
		return formatCount, fmt.Errorf("%w: %d channels", ErrInvalidFormat, n)
	}
}

// ParseFormat parses a format name as returned by String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "Gray", "gray":
		return FormatGray, nil
	case "RGB", "rgb":
		return FormatRGB, nil
	default:
		return formatCount, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of samples per pixel.
// This is also the number of bytes per pixel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().Channels
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray:
		return "Gray"
	case FormatRGB:
		return "RGB"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
// ok is false when the shape is invalid or the size overflows int.
func (f Format) ImageBytes(width, height int) (n int, ok bool) {
	bpp := f.BytesPerPixel()
	if width <= 0 || height <= 0 || bpp == 0 {
		return 0, false
	}
	if width > maxInt/bpp {
		return 0, false
	}
	row := width * bpp
	if height > maxInt/row {
		return 0, false
	}
	return row * height, true
}

const maxInt = int(^uint(0) >> 1)
