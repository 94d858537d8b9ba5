// Command sininfo prints accuracy figures for the fixed-point sine table.
//
// Usage:
//
//	sininfo [flags]
//
// Examples:
//
//	sininfo
//	sininfo -table
//	sininfo -size 4096 -cycles 45 -harmonics 20
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-sensor/mathlib"
	"github.com/cwbudde/algo-sensor/measure/sinlut"
)

func main() {
	size := flag.Int("size", 1024, "oscillator capture length in samples")
	cycles := flag.Int("cycles", 16, "oscillator periods in the capture")
	harmonics := flag.Int("harmonics", 10, "highest harmonic included in THD")
	table := flag.Bool("table", false, "print the first-quadrant table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sininfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints accuracy and distortion of the fixed-point sine table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sininfo -table\n")
		fmt.Fprintf(os.Stderr, "  sininfo -size 4096 -cycles 45\n")
	}
	flag.Parse()

	cfg := sinlut.Config{FFTSize: *size, Cycles: *cycles, MaxHarmonics: *harmonics}
	res, err := sinlut.Analyze(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *table {
		if err := printTable(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write table: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}
	if err := printAnalysis(os.Stdout, cfg, res); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write analysis: %v\n", err)
		os.Exit(1)
	}
}

func printTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Deg\tsin*%d\tcos*%d\t\n", mathlib.SinScale, mathlib.SinScale); err != nil {
		return err
	}
	for d := int32(0); d < 360; d += 15 {
		s, err := mathlib.Sin(d)
		if err != nil {
			return err
		}
		c, err := mathlib.Cos(d)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t\n", d, s, c); err != nil {
			return err
		}
	}
	return tw.Flush()
}

type row struct {
	label string
	value string
}

func printAnalysis(w io.Writer, cfg sinlut.Config, res sinlut.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []row{
		{"Max abs error", fmt.Sprintf("%.6f (at %d deg)", res.MaxAbsError, res.MaxErrorDegree)},
		{"RMS error", fmt.Sprintf("%.6f", res.RMSError)},
		{"Monotonic quadrant", fmt.Sprintf("%t", res.Monotonic)},
		{"Oscillator", fmt.Sprintf("%d samples, %d cycles", cfg.FFTSize, cfg.Cycles)},
		{"THD", fmt.Sprintf("%.6f", res.THD)},
		{"THD [dB]", fmt.Sprintf("%.2f", res.THD_dB)},
	}
	for i, h := range res.Harmonics {
		rows = append(rows, row{fmt.Sprintf("H%d", i+2), fmt.Sprintf("%.2e", h)})
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
