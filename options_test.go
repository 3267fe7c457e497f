package resample

import (
	"bytes"
	"runtime"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.policy != CenterAligned {
		t.Errorf("policy = %v, want center", o.policy)
	}
	if o.workers != 1 {
		t.Errorf("workers = %d, want 1", o.workers)
	}
	if o.numericSet {
		t.Error("numericSet = true, want false")
	}
	if o.pool != nil {
		t.Error("pool != nil")
	}
}

func TestOptions(t *testing.T) {
	pool := NewPool(1)
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o options)
	}{
		{
			name: "WithNumeric",
			opts: []Option{WithNumeric(Fixed)},
			check: func(t *testing.T, o options) {
				if o.numeric != Fixed || !o.numericSet {
					t.Errorf("numeric = %v (set %v), want fixed", o.numeric, o.numericSet)
				}
			},
		},
		{
			name: "WithPolicy",
			opts: []Option{WithPolicy(OriginAligned)},
			check: func(t *testing.T, o options) {
				if o.policy != OriginAligned {
					t.Errorf("policy = %v, want origin", o.policy)
				}
			},
		},
		{
			name: "WithWorkers",
			opts: []Option{WithWorkers(6)},
			check: func(t *testing.T, o options) {
				if o.workers != 6 {
					t.Errorf("workers = %d, want 6", o.workers)
				}
			},
		},
		{
			name: "WithPool",
			opts: []Option{WithPool(pool)},
			check: func(t *testing.T, o options) {
				if o.pool != pool {
					t.Error("pool not set")
				}
			},
		},
		{
			name: "last option wins",
			opts: []Option{WithNumeric(Fixed), WithNumeric(Float), WithWorkers(2), WithWorkers(3)},
			check: func(t *testing.T, o options) {
				if o.numeric != Float {
					t.Errorf("numeric = %v, want float", o.numeric)
				}
				if o.workers != 3 {
					t.Errorf("workers = %d, want 3", o.workers)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}

func TestWithWorkersGOMAXPROCS(t *testing.T) {
	if runtime.GOMAXPROCS(0) < 2 {
		t.Skip("needs GOMAXPROCS >= 2")
	}
	in := randomRaster(t, 20, 40, Gray, 11)
	seq, err := Resize(in, Factor(0.8), Bilinear)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	for _, n := range []int{0, -3} {
		par, err := Resize(in, Factor(0.8), Bilinear, WithWorkers(n))
		if err != nil {
			t.Fatalf("Resize(workers=%d) failed: %v", n, err)
		}
		if !bytes.Equal(seq.Data(), par.Data()) {
			t.Errorf("workers=%d: output differs from sequential", n)
		}
	}
}
