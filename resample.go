package resample

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/resample/internal/image"
	"github.com/gogpu/resample/internal/mapping"
	"github.com/gogpu/resample/internal/parallel"
	"github.com/gogpu/resample/internal/sample"
)

// Resize returns a new raster of in's format whose extents are in's
// extents times scale, with pixels interpolated by method.
//
// Parameters are validated before anything is allocated; every parameter
// error wraps ErrInvalidParameter. in is only read. The returned raster is
// complete: no partially written output is ever returned.
func Resize(in *Raster, scale Scale, method Method, opts ...Option) (*Raster, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.numericSet {
		o.numeric = Float
		if scale.IsRational() {
			o.numeric = Fixed
		}
	}

	p, err := plan(in, scale, method, o)
	if err != nil {
		Logger().Warn("resample: rejected", "scale", scale.String(), "method", method.String(), "err", err)
		return nil, err
	}

	start := time.Now()

	var out *Raster
	if o.pool != nil {
		out, err = o.pool.Get(p.outWidth, p.outHeight, in.Format())
	} else {
		out, err = image.NewRaster(p.outWidth, p.outHeight, in.Format())
	}
	if err != nil {
		return nil, fmt.Errorf("resample: allocate %dx%d output: %w", p.outWidth, p.outHeight, err)
	}

	var pool *parallel.WorkerPool
	if o.workers != 1 && p.outHeight > 1 {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}
	pool.Run(p.outHeight, func(b parallel.Band) {
		p.run(in, out, b.Y0, b.Y1)
	})

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("resample: resized",
			"in", fmt.Sprintf("%dx%d", in.Width(), in.Height()),
			"out", fmt.Sprintf("%dx%d", p.outWidth, p.outHeight),
			"format", in.Format().String(),
			"method", method.String(),
			"numeric", o.numeric.String(),
			"policy", o.policy.String(),
			"workers", o.workers,
			"duration", time.Since(start))
	}
	return out, nil
}

// resizePlan is everything a band of output rows needs.
type resizePlan struct {
	outWidth  int
	outHeight int
	xs, ys    []mapping.Tap
	kernel    sample.Kernel
	channels  int
}

// plan validates the parameters and precomputes the per-axis tap tables.
// It allocates nothing that outlives a failed call.
func plan(in *Raster, scale Scale, method Method, o options) (*resizePlan, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("resample: input: %w", err)
	}
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("resample: method %d: %w", method, sample.ErrMethod)
	}
	if !o.numeric.IsValid() {
		return nil, fmt.Errorf("resample: numeric backend %d: %w", o.numeric, sample.ErrMethod)
	}
	if !o.policy.IsValid() {
		return nil, fmt.Errorf("resample: policy %d: %w", o.policy, mapping.ErrPolicy)
	}

	outWidth, outHeight, err := OutputSize(in.Width(), in.Height(), scale)
	if err != nil {
		return nil, err
	}
	if size, ok := in.Format().ImageBytes(outWidth, outHeight); !ok || size > image.MaxBytes {
		return nil, fmt.Errorf("resample: output %dx%d: %w", outWidth, outHeight, image.ErrTooLarge)
	}

	kernel, err := sample.Select(method, o.numeric, in.Format())
	if err != nil {
		return nil, err
	}

	axis := mapping.Float
	if o.numeric == Fixed {
		axis = mapping.Fixed
	}
	xs, err := axis(in.Width(), outWidth, o.policy)
	if err != nil {
		return nil, fmt.Errorf("resample: map columns: %w", err)
	}
	ys, err := axis(in.Height(), outHeight, o.policy)
	if err != nil {
		return nil, fmt.Errorf("resample: map rows: %w", err)
	}

	return &resizePlan{
		outWidth:  outWidth,
		outHeight: outHeight,
		xs:        xs,
		ys:        ys,
		kernel:    kernel,
		channels:  in.Channels(),
	}, nil
}

// run writes output rows [y0, y1) in row-major order.
func (p *resizePlan) run(in, out *Raster, y0, y1 int) {
	c := p.channels
	for y := y0; y < y1; y++ {
		ty := p.ys[y]
		row := out.Row(y)
		for x, tx := range p.xs {
			p.kernel(in, tx, ty, row[x*c:x*c+c:x*c+c])
		}
	}
}
