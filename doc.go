// Package resample scales 8-bit grayscale and RGB rasters.
//
// # Overview
//
// resample is a small, pure Go image resampling engine. It maps every
// output pixel back onto the source, samples the source with a
// nearest-neighbor or bilinear kernel and clamps every neighbor lookup to
// the source edge. Two numeric backends compute the same result: float64,
// and Q16.16 fixed-point for targets without fast floating-point hardware.
//
// # Quick Start
//
//	import "github.com/gogpu/resample"
//
//	in, _ := resample.FromBytes(pixels, 640, 480, 3)
//
//	// Half size, bilinear, float64 backend
//	out, err := resample.Resize(in, resample.Factor(0.5), resample.Bilinear)
//
//	// Two thirds, bilinear, fixed-point backend
//	out, err = resample.Resize(in, resample.Ratio(2, 3), resample.Bilinear)
//
// # Extents
//
// The output is max(1, trunc(width*scale)) by max(1, trunc(height*scale))
// pixels with the input's format.
//
// # Coordinate mapping
//
// By default both backends map pixel centers onto pixel centers:
// src = (dst+0.5)*(in/out) - 0.5. WithPolicy(OriginAligned) selects the
// historical integer mapping src = dst*(in/out).
//
// # Architecture
//
// The library is organized into:
//   - Public API: Resize, Scale, Raster, options
//   - Internal: fixed (Q16.16), image (buffers, I/O), mapping (tap tables),
//     sample (kernels), parallel (row bands), reference (third-party resamplers)
//   - Command: cmd/resample
package resample
