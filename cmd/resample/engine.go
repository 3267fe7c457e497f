package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/resample"
)

// engineFlags are the Resize parameters shared by the subcommands.
type engineFlags struct {
	method  string
	numeric string
	policy  string
	workers int
}

func (f *engineFlags) register(cmd *cobra.Command, method string) {
	cmd.Flags().StringVarP(&f.method, `method`, `m`, method, `interpolation: nearest or bilinear`)
	cmd.Flags().StringVar(&f.numeric, `numeric`, ``, `numeric backend: float or fixed (default: float for factors, fixed for ratios)`)
	cmd.Flags().StringVar(&f.policy, `policy`, `center`, `coordinate mapping: center or origin`)
	cmd.Flags().IntVarP(&f.workers, `workers`, `w`, 1, `goroutines per resize (0: GOMAXPROCS)`)
}

// options returns the Resize options selected by the flags, without the method.
func (f *engineFlags) options() ([]resample.Option, error) {
	opts := []resample.Option{resample.WithWorkers(f.workers)}
	if f.numeric != `` {
		n, err := resample.ParseNumeric(f.numeric)
		if err != nil {
			return nil, errors.Wrap(err, 0)
		}
		opts = append(opts, resample.WithNumeric(n))
	}
	p, err := resample.ParsePolicy(f.policy)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return append(opts, resample.WithPolicy(p)), nil
}

// methods returns the methods named by the method flag; "all" selects both.
func (f *engineFlags) methods() ([]resample.Method, error) {
	if f.method == `all` {
		return []resample.Method{resample.Nearest, resample.Bilinear}, nil
	}
	m, err := resample.ParseMethod(f.method)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return []resample.Method{m}, nil
}

// parseScales parses a list of scale strings, "0.5" or "1/2" each.
func parseScales(list []string) ([]resample.Scale, error) {
	scales := make([]resample.Scale, 0, len(list))
	for _, s := range list {
		sc, err := resample.ParseScale(s)
		if err != nil {
			return nil, errors.Wrap(err, 0)
		}
		if err := sc.Validate(); err != nil {
			return nil, errors.Wrap(err, 0)
		}
		scales = append(scales, sc)
	}
	return scales, nil
}

// outputName returns the sweep file name for one method and scale,
// e.g. "bilinear_0.5.png" or "nearest_1-3.png".
func outputName(dir string, m resample.Method, s resample.Scale) string {
	name := m.String() + `_` + strings.ReplaceAll(s.String(), `/`, `-`) + `.png`
	return filepath.Join(dir, name)
}

// dims formats an extent pair as WxH, without digit grouping.
func dims(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
