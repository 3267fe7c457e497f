package resample

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scale describes the ratio between output and input extents, either as a
// floating factor or as a rational num/den pair. The zero Scale is invalid.
type Scale struct {
	factor   float64
	num, den int64
	rational bool
}

// Factor returns a floating scale: output ≈ input*f.
func Factor(f float64) Scale {
	return Scale{factor: f}
}

// Ratio returns a rational scale: output ≈ input*num/den.
func Ratio(num, den int) Scale {
	return Scale{num: int64(num), den: int64(den), rational: true}
}

// ParseScale parses "0.5" as a Factor and "1/2" as a Ratio.
func ParseScale(s string) (Scale, error) {
	if n, d, ok := strings.Cut(s, "/"); ok {
		num, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return Scale{}, fmt.Errorf("resample: parse ratio %q: %w", s, ErrInvalidParameter)
		}
		den, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return Scale{}, fmt.Errorf("resample: parse ratio %q: %w", s, ErrInvalidParameter)
		}
		return Ratio(num, den), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Scale{}, fmt.Errorf("resample: parse factor %q: %w", s, ErrInvalidParameter)
	}
	return Factor(f), nil
}

// IsRational reports whether s was built by Ratio.
func (s Scale) IsRational() bool {
	return s.rational
}

// Validate returns ErrInvalidParameter unless s is a positive, finite scale.
func (s Scale) Validate() error {
	if s.rational {
		if s.num <= 0 || s.den <= 0 {
			return fmt.Errorf("resample: ratio %d/%d must be positive: %w", s.num, s.den, ErrInvalidParameter)
		}
		return nil
	}
	if !(s.factor > 0) || math.IsInf(s.factor, 0) {
		return fmt.Errorf("resample: scale factor %v must be positive and finite: %w", s.factor, ErrInvalidParameter)
	}
	return nil
}

// Apply returns the output extent for an input extent n:
// max(1, trunc(n*scale)). A factor product within float64 rounding of an
// integer counts as that integer, so Factor(0.29) and Ratio(29, 100) agree.
func (s Scale) Apply(n int) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("resample: extent %d: %w", n, ErrInvalidParameter)
	}

	var out float64
	if s.rational {
		// n*num/den in integers unless the product overflows.
		if s.num <= math.MaxInt64/int64(n) {
			return clampExtent(float64(int64(n) * s.num / s.den))
		}
		out = math.Floor(float64(n) * (float64(s.num) / float64(s.den)))
	} else {
		// Products like 100*0.29 land just below the integer they denote.
		v := float64(n) * s.factor
		out = math.Trunc(v + v*factorEpsilon)
	}
	return clampExtent(out)
}

// factorEpsilon is the relative slack added before truncating n*factor.
const factorEpsilon = 1e-9

// clampExtent enforces the lower bound of 1 and the int32 upper bound.
func clampExtent(v float64) (int, error) {
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("resample: output extent %.0f too large: %w", v, ErrInvalidParameter)
	}
	return max(1, int(v)), nil
}

// String returns "f" for a factor and "num/den" for a ratio.
func (s Scale) String() string {
	if s.rational {
		return strconv.FormatInt(s.num, 10) + "/" + strconv.FormatInt(s.den, 10)
	}
	return strconv.FormatFloat(s.factor, 'g', -1, 64)
}

// OutputSize returns the output extents for a width x height input.
func OutputSize(width, height int, s Scale) (outWidth, outHeight int, err error) {
	if outWidth, err = s.Apply(width); err != nil {
		return 0, 0, err
	}
	if outHeight, err = s.Apply(height); err != nil {
		return 0, 0, err
	}
	return outWidth, outHeight, nil
}
