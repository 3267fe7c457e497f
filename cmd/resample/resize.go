package main

import (
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/internal/image"
)

func init() {
	resizeFlags.register(resizeCmd, `bilinear`)
	resizeCmd.Flags().StringVarP(&resizeScale, `scale`, `s`, `0.5`, `scale factor ("0.5") or ratio ("1/2")`)
	rootCmd.AddCommand(resizeCmd)
}

var resizeCmd = &cobra.Command{
	Use:   `resize <in> <out.png>`,
	Short: `resize one image`,
	Long: `Resize one image and save the result as PNG.

Images with an alpha channel are flattened to RGB by dropping alpha;
grayscale images stay grayscale.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(resizeFunc(cmd, args))
	},
}

var (
	resizeFlags engineFlags
	resizeScale string
)

func resizeFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		scales, err := parseScales([]string{resizeScale})
		if err != nil {
			return err
		}
		methods, err := resizeFlags.methods()
		if err != nil {
			return err
		}
		if len(methods) != 1 {
			return errors.Errorf(`resize takes a single method, got %q`, resizeFlags.method)
		}
		opts, err := resizeFlags.options()
		if err != nil {
			return err
		}

		in, err := image.Load(args[0])
		if err != nil {
			return errors.Wrap(err, 0)
		}
		out, err := resample.Resize(in, scales[0], methods[0], opts...)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		if err := out.SavePNG(args[1]); err != nil {
			return errors.Wrap(err, 0)
		}

		p := message.NewPrinter(language.English)
		p.Fprintf(cmd.OutOrStdout(), "%s: %s %s -> %s (%d pixels)\n",
			args[1], dims(in.Width(), in.Height()), in.Format(), dims(out.Width(), out.Height()), out.Width()*out.Height())
		return nil
	}
}
