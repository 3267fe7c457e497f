// Command resample scales images with the resample engine.
//
//	resample resize in.png out.png --scale 0.5
//	resample sweep --pattern 64x48 --channels 3 --out-dir out
//	resample compare in.png --scale 2
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/resample"
)

var rootCmd = &cobra.Command{
	Use:          "resample",
	Short:        "resample scales grayscale and RGB images",
	Long:         "resample scales grayscale and RGB images with nearest-neighbor or bilinear interpolation.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			resample.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `print error stack traces`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, `verbose`, `v`, false, `log every resize to stderr`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debug   bool
	verbose bool
)

func run(fn func() error) {
	var err error
	if fn == nil {
		err = errors.New(`nil command function`)
	} else {
		err = fn()
	}
	if err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
