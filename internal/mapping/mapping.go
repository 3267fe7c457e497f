// Package mapping computes, for every output pixel, which source pixels a
// kernel reads and with what weight.
//
// Resampling is separable, so the mapping is done once per axis: a table
// of Taps, one per output column (or row). Each Tap carries the two
// neighbor indices along that axis, already clamped to the source extent,
// and the fractional distance from the first neighbor.
package mapping

import (
	"fmt"
	"math"

	"github.com/gogpu/resample/internal/fixed"
	"github.com/gogpu/resample/internal/image"
)

// ErrRange is returned when a size cannot be represented in Q16.16.
var ErrRange = fmt.Errorf("mapping: size exceeds fixed-point range: %w", image.ErrInvalidParameter)

// ErrPolicy is returned for an unknown Policy.
var ErrPolicy = fmt.Errorf("mapping: unknown policy: %w", image.ErrInvalidParameter)

// Policy selects how output coordinates map onto source coordinates.
type Policy uint8

const (
	// CenterAligned maps pixel centers onto pixel centers:
	// src = (dst+0.5)*(in/out) - 0.5.
	CenterAligned Policy = iota

	// OriginAligned maps pixel origins onto pixel origins: src = dst*(in/out).
	// The result is shifted by up to half a source pixel toward the
	// top-left compared to CenterAligned.
	OriginAligned

	policyCount
)

// String returns a string representation of the policy.
func (p Policy) String() string {
	switch p {
	case CenterAligned:
		return "center"
	case OriginAligned:
		return "origin"
	default:
		return "Unknown"
	}
}

// IsValid returns true if p is a known policy.
func (p Policy) IsValid() bool {
	return p < policyCount
}

// ParsePolicy parses a policy name as returned by String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "center":
		return CenterAligned, nil
	case "origin":
		return OriginAligned, nil
	default:
		return policyCount, fmt.Errorf("%w: %q", ErrPolicy, s)
	}
}

// Tap describes the source neighborhood of one output coordinate.
type Tap struct {
	// I0 is the lower neighbor index, I1 = I0+1. Both are clamped to
	// [0, size-1].
	I0, I1 int

	// Frac is the distance from the unclamped lower neighbor, in [0, 1).
	// Set by Float.
	Frac float64

	// FracQ is Frac in Q16.16. Set by Fixed.
	FracQ fixed.Q16
}

// Clamp clamps i to [0, size-1] (clamp-to-edge).
func Clamp(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// newTap builds a Tap from the unclamped lower neighbor index.
func newTap(i0, size int) Tap {
	return Tap{I0: Clamp(i0, size), I1: Clamp(i0+1, size)}
}

// Float returns the tap table for out output coordinates over in source
// coordinates, computed in float64.
// in and out must be positive.
func Float(in, out int, policy Policy) ([]Tap, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("mapping: sizes %d -> %d: %w", in, out, image.ErrInvalidDimensions)
	}
	if !policy.IsValid() {
		return nil, ErrPolicy
	}

	ratio := float64(in) / float64(out)
	taps := make([]Tap, out)
	for o := range taps {
		var src float64
		if policy == CenterAligned {
			src = (float64(o)+0.5)*ratio - 0.5
		} else {
			src = float64(o) * ratio
		}
		i0 := math.Floor(src)
		t := newTap(int(i0), in)
		t.Frac = src - i0
		taps[o] = t
	}
	return taps, nil
}

// Fixed returns the tap table for out output coordinates over in source
// coordinates, computed in Q16.16.
//
// CenterAligned coordinates are computed one by one in 64-bit integers,
// floor(((2o+1)*in<<16) / (2*out)) - 0.5, so the error stays below one
// Q16 unit at any width. OriginAligned accumulates the truncated step
// in/out, matching the historical integer path bit for bit.
func Fixed(in, out int, policy Policy) ([]Tap, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("mapping: sizes %d -> %d: %w", in, out, image.ErrInvalidDimensions)
	}
	if in > fixed.MaxInt || out > fixed.MaxInt {
		return nil, fmt.Errorf("%w: %d -> %d", ErrRange, in, out)
	}
	if !policy.IsValid() {
		return nil, ErrPolicy
	}

	taps := make([]Tap, out)
	if policy == CenterAligned {
		num := int64(in) << fixed.Shift
		den := 2 * int64(out)
		for o := range taps {
			src := fixed.Q16((2*int64(o)+1)*num/den) - fixed.Half
			t := newTap(src.Int(), in)
			t.FracQ = src.Frac()
			taps[o] = t
		}
		return taps, nil
	}

	step := fixed.Div(fixed.FromInt(in), fixed.FromInt(out))
	var src fixed.Q16
	for o := range taps {
		t := newTap(src.Int(), in)
		t.FracQ = src.Frac()
		taps[o] = t
		src += step
	}
	return taps, nil
}

// Legacy returns the source index used by origin-aligned integer
// nearest-neighbor sampling: (o * ((in<<16)/out)) >> 16, clamped.
// It is kept to check OriginAligned against the historical integer path.
func Legacy(o, in, out int) int {
	ratio := int64(in<<fixed.Shift) / int64(out)
	return Clamp(int((int64(o)*ratio)>>fixed.Shift), in)
}
