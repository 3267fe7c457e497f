package image

import "sync"

// Pool is a thread-safe pool for reusing Raster instances.
//
// Pool groups rasters by their dimensions and format, so repeated resizes
// to the same output shape can reuse the same buffers.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Raster
	maxSize int // max rasters per bucket
}

// poolKey identifies a bucket of identical raster shapes.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new raster pool with the given maximum rasters per bucket.
// A maxPerBucket of 0 or less means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Raster),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a raster from the pool or creates a new one.
// The returned raster has the requested shape and all samples zeroed.
// Errors are those of NewRaster.
func (p *Pool) Get(width, height int, format Format) (*Raster, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		r := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return r, nil
	}
	p.mu.Unlock()

	return NewRaster(width, height, format)
}

// Put returns a raster to the pool for reuse.
// The raster is cleared before being stored. Nil and released rasters,
// and rasters arriving at a full bucket, are discarded.
func (p *Pool) Put(r *Raster) {
	if r == nil || r.released {
		return
	}

	r.Clear()

	key := poolKey{
		width:  r.width,
		height: r.height,
		format: r.format,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, r)
}

// Len returns the number of pooled rasters of the given shape.
func (p *Pool) Len(width, height int, format Format) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height, format: format}])
}
