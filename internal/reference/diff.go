package reference

import (
	"fmt"
	"math"

	"github.com/go-errors/errors"

	raster "github.com/gogpu/resample/internal/image"
)

// Diff summarizes the per-sample difference between two rasters.
type Diff struct {
	// MaxAbs is the largest absolute sample difference.
	MaxAbs int

	// MeanAbs is the mean absolute sample difference.
	MeanAbs float64

	// PSNR is the peak signal-to-noise ratio in dB, +Inf for identical
	// rasters.
	PSNR float64
}

// Compare returns the difference between a and b, which must have the
// same shape.
func Compare(a, b *raster.Raster) (Diff, error) {
	if err := a.Validate(); err != nil {
		return Diff{}, errors.Wrap(err, 0)
	}
	if err := b.Validate(); err != nil {
		return Diff{}, errors.Wrap(err, 0)
	}
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Format() != b.Format() {
		return Diff{}, errors.WrapPrefix(raster.ErrInvalidDimensions,
			fmt.Sprintf("reference: compare %dx%d %s with %dx%d %s",
				a.Width(), a.Height(), a.Format(), b.Width(), b.Height(), b.Format()), 0)
	}

	var d Diff
	var sumAbs, sumSq float64
	da, db := a.Data(), b.Data()
	for i := range da {
		v := int(da[i]) - int(db[i])
		if v < 0 {
			v = -v
		}
		d.MaxAbs = max(d.MaxAbs, v)
		sumAbs += float64(v)
		sumSq += float64(v * v)
	}

	n := float64(len(da))
	d.MeanAbs = sumAbs / n
	d.PSNR = psnr(sumSq / n)
	return d, nil
}

// psnr converts a mean squared error on 8-bit samples to dB.
func psnr(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}

// String formats d as "max=3 mean=0.41 psnr=44.1dB".
func (d Diff) String() string {
	return fmt.Sprintf("max=%d mean=%.2f psnr=%.1fdB", d.MaxAbs, d.MeanAbs, d.PSNR)
}
