package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/internal/image"
)

func init() {
	sweepFlags.register(sweepCmd, `all`)
	sweepCmd.Flags().StringVarP(&sweepInput, `input`, `i`, ``, `input image (default: synthetic gradient)`)
	sweepCmd.Flags().StringVar(&sweepPattern, `pattern`, `64x48`, `gradient size <w>x<h> when no --input is given`)
	sweepCmd.Flags().IntVarP(&sweepChannels, `channels`, `c`, 3, `gradient channels: 1 or 3`)
	sweepCmd.Flags().StringVarP(&sweepOutDir, `out-dir`, `o`, `.`, `output directory`)
	sweepCmd.Flags().StringSliceVar(&sweepScales, `scales`, []string{`0.25`, `0.5`, `0.75`, `1.5`, `2`}, `scale factors or ratios`)
	rootCmd.AddCommand(sweepCmd)
}

var sweepCmd = &cobra.Command{
	Use:   `sweep`,
	Short: `resize one image at several scales`,
	Long: `Resize one image at every listed scale with every selected method and
write one PNG per result, named <method>_<scale>.png. The source image is
saved next to them as original.png.

Without --input a synthetic gradient is used.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(sweepFunc(cmd))
	},
}

var (
	sweepFlags    engineFlags
	sweepInput    string
	sweepPattern  string
	sweepChannels int
	sweepOutDir   string
	sweepScales   []string
)

// originalName is the file the sweep source is saved to.
const originalName = `original.png`

var errPatternUsage = errors.New(`--pattern must be <w>x<h>, e.g. 64x48`)

func sweepFunc(cmd *cobra.Command) func() error {
	return func() error {
		scales, err := parseScales(sweepScales)
		if err != nil {
			return err
		}
		methods, err := sweepFlags.methods()
		if err != nil {
			return err
		}
		opts, err := sweepFlags.options()
		if err != nil {
			return err
		}
		in, err := sweepSource()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(sweepOutDir, 0o755); err != nil {
			return errors.Wrap(err, 0)
		}

		p := message.NewPrinter(language.English)
		w := cmd.OutOrStdout()
		original := filepath.Join(sweepOutDir, originalName)
		if err := in.SavePNG(original); err != nil {
			return errors.Wrap(err, 0)
		}
		p.Fprintf(w, "%-8s %-6s %s -> %s\n", `source`, `1`, dims(in.Width(), in.Height()), original)

		for _, s := range scales {
			for _, m := range methods {
				out, err := resample.Resize(in, s, m, opts...)
				if err != nil {
					return errors.WrapPrefix(err, `scale `+s.String(), 0)
				}
				name := outputName(sweepOutDir, m, s)
				if err := out.SavePNG(name); err != nil {
					return errors.Wrap(err, 0)
				}
				p.Fprintf(w, "%-8s %-6s %s -> %s\n", m, s, dims(out.Width(), out.Height()), name)
			}
		}
		return nil
	}
}

// sweepSource loads --input or builds the --pattern gradient.
func sweepSource() (*resample.Raster, error) {
	if sweepInput != `` {
		in, err := image.Load(sweepInput)
		if err != nil {
			return nil, errors.Wrap(err, 0)
		}
		return in, nil
	}

	ws, hs, ok := strings.Cut(sweepPattern, `x`)
	if !ok {
		return nil, errors.New(errPatternUsage)
	}
	width, err := strconv.Atoi(ws)
	if err != nil {
		return nil, errors.New(errPatternUsage)
	}
	height, err := strconv.Atoi(hs)
	if err != nil {
		return nil, errors.New(errPatternUsage)
	}
	format, err := image.FormatForChannels(sweepChannels)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	in, err := image.Gradient(width, height, format)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return in, nil
}
