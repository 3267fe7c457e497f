// Package fixed implements Q16.16 fixed-point arithmetic for the integer
// resampling path.
//
// A Q16 is a signed 32-bit integer holding a real number scaled by 2^16:
// 16 integer bits (including sign) and 16 fractional bits. Products and
// quotients are computed in 64-bit intermediates so the pixel deltas
// (±255) and weights ([0, 1)) used by the kernels never overflow before the
// final shift.
package fixed

import (
	"math"
	"strconv"
)

// Q16 is a signed Q16.16 fixed-point number.
type Q16 int32

const (
	// Shift is the number of fractional bits.
	Shift = 16

	// One is 1.0 in Q16.16.
	One Q16 = 1 << Shift

	// Half is 0.5 in Q16.16.
	Half Q16 = 1 << (Shift - 1)

	// FracMask selects the fractional bits.
	FracMask Q16 = One - 1

	// MaxInt is the largest integer representable without overflow.
	MaxInt = math.MaxInt32 >> Shift
)

// FromInt converts an integer to Q16.16.
// The caller keeps i within [-MaxInt-1, MaxInt].
func FromInt(i int) Q16 {
	return Q16(int32(i) << Shift)
}

// FromFloat converts a float to Q16.16, rounding toward negative infinity.
func FromFloat(f float64) Q16 {
	return Q16(int32(math.Floor(f * float64(One))))
}

// Float converts q to a float64. The conversion is exact.
func (q Q16) Float() float64 {
	return float64(q) / float64(One)
}

// Int returns the integer part of q (floor).
func (q Q16) Int() int {
	return int(q >> Shift)
}

// Frac returns the fractional part of q in [0, One).
// For negative q this is the distance to the next lower integer,
// so FromInt(q.Int()) + q.Frac() == q always holds.
func (q Q16) Frac() Q16 {
	return q & FracMask
}

// Mul returns a*b.
func Mul(a, b Q16) Q16 {
	return Q16((int64(a) * int64(b)) >> Shift)
}

// Div returns a/b, truncated toward zero.
// b must not be zero.
func Div(a, b Q16) Q16 {
	return Q16((int64(a) << Shift) / int64(b))
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t Q16) Q16 {
	return a + Mul(b-a, t)
}

// String returns q formatted as a decimal number.
func (q Q16) String() string {
	return strconv.FormatFloat(q.Float(), 'f', -1, 64)
}
