package main

import (
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/internal/image"
	"github.com/gogpu/resample/internal/reference"
)

func init() {
	compareCmd.Flags().StringVarP(&compareScale, `scale`, `s`, `2`, `scale factor`)
	compareCmd.Flags().StringVarP(&compareMethod, `method`, `m`, `bilinear`, `interpolation: nearest or bilinear`)
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   `compare <in>`,
	Short: `compare the engine against other Go resamplers`,
	Long: `Resize one image with the float backend and print how far the fixed-point
backend and each third-party resampler deviate from it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(compareFunc(cmd, args))
	},
}

var (
	compareScale  string
	compareMethod string
)

func compareFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		scales, err := parseScales([]string{compareScale})
		if err != nil {
			return err
		}
		m, err := resample.ParseMethod(compareMethod)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		in, err := image.Load(args[0])
		if err != nil {
			return errors.Wrap(err, 0)
		}

		base, err := resample.Resize(in, scales[0], m, resample.WithNumeric(resample.Float))
		if err != nil {
			return errors.Wrap(err, 0)
		}

		p := message.NewPrinter(language.English)
		w := cmd.OutOrStdout()
		p.Fprintf(w, "%s %s -> %s (%d samples), baseline float/%s\n",
			args[0], dims(in.Width(), in.Height()), dims(base.Width(), base.Height()), base.ByteSize(), m)

		fx, err := resample.Resize(in, scales[0], m, resample.WithNumeric(resample.Fixed))
		if err != nil {
			return errors.Wrap(err, 0)
		}
		d, err := reference.Compare(base, fx)
		if err != nil {
			return err
		}
		p.Fprintf(w, "%-18s %v\n", "fixed/"+m.String(), d)

		resizers := reference.All(m)
		if m == resample.Bilinear {
			resizers = append(resizers, reference.XDrawCatmullRom())
		}
		for _, r := range resizers {
			got, err := reference.Run(r, in, base.Width(), base.Height())
			if err != nil {
				return err
			}
			d, err := reference.Compare(base, got)
			if err != nil {
				return err
			}
			p.Fprintf(w, "%-18s %v\n", r.Name(), d)
		}
		return nil
	}
}
