package resample

// Option configures a Resize call.
// Use functional options to customize numeric backend, mapping and
// scheduling.
//
// Example:
//
//	// Default: float backend for factors, fixed-point for ratios
//	out, err := resample.Resize(in, resample.Factor(0.5), resample.Bilinear)
//
//	// Fixed-point backend on 4 workers
//	out, err := resample.Resize(in, resample.Factor(0.5), resample.Bilinear,
//	    resample.WithNumeric(resample.Fixed), resample.WithWorkers(4))
type Option func(*options)

// options holds optional configuration for a Resize call.
type options struct {
	numeric    Numeric
	numericSet bool
	policy     Policy
	workers    int
	pool       *Pool
}

// defaultOptions returns the default resize options.
func defaultOptions() options {
	return options{
		policy:  CenterAligned,
		workers: 1,
	}
}

// WithNumeric selects the numeric backend.
// Without it, Factor scales use Float and Ratio scales use Fixed.
func WithNumeric(n Numeric) Option {
	return func(o *options) {
		o.numeric = n
		o.numericSet = true
	}
}

// WithPolicy selects the coordinate mapping policy.
// The default is CenterAligned on both backends. OriginAligned reproduces
// the historical integer path, which samples up to half a source pixel
// toward the top-left.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithWorkers sets the number of goroutines the output rows are split
// across. 1 (the default) runs in the calling goroutine; 0 or negative
// uses GOMAXPROCS. The result does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPool allocates the output raster from p instead of the heap.
// The caller hands the raster back with p.Put when done with it.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}
