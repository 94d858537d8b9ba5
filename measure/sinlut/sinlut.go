package sinlut

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-sensor/mathlib"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

const (
	period = 360

	defaultFFTSize      = 1024
	defaultCycles       = 16
	defaultMaxHarmonics = 10
)

var errNoFundamental = errors.New("oscillator spectrum has no energy at the fundamental")

// Config holds analysis parameters. Zero fields take defaults.
type Config struct {
	// FFTSize is the oscillator capture length in samples.
	FFTSize int
	// Cycles is the number of whole oscillator periods in the capture.
	Cycles int
	// MaxHarmonics is the highest harmonic included in THD.
	MaxHarmonics int
}

// Result holds the table accuracy and oscillator distortion figures.
// Errors are in unit-amplitude terms (table value / SinScale).
//
//nolint:revive
type Result struct {
	MaxAbsError    float64
	MaxErrorDegree int32
	RMSError       float64
	Monotonic      bool
	THD            float64
	THD_dB         float64
	Harmonics      []float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}
	if cfg.Cycles == 0 {
		cfg.Cycles = defaultCycles
	}
	if cfg.MaxHarmonics == 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}
	return cfg
}

func validateConfig(cfg Config) error {
	if cfg.FFTSize < 8 {
		return fmt.Errorf("fft size must be >= 8: %d", cfg.FFTSize)
	}
	if cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return fmt.Errorf("fft size must be a power of two: %d", cfg.FFTSize)
	}
	// The second harmonic must still fall at or below Nyquist.
	if cfg.Cycles < 1 || 2*cfg.Cycles > cfg.FFTSize/2 {
		return fmt.Errorf("cycles must be in [1, %d]: %d", cfg.FFTSize/4, cfg.Cycles)
	}
	if cfg.MaxHarmonics < 2 {
		return fmt.Errorf("max harmonics must be >= 2: %d", cfg.MaxHarmonics)
	}
	return nil
}

// Analyze runs the table and oscillator measurements.
func Analyze(cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	var res Result
	measureTable(&res)
	res.Monotonic = Monotonic(mathlib.SinTable())

	if err := measureOscillator(&res, cfg); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Monotonic reports whether a first-quadrant table never decreases.
func Monotonic(table [90]int16) bool {
	for i := 1; i < len(table); i++ {
		if table[i] < table[i-1] {
			return false
		}
	}
	return true
}

// Period returns one full period of mathlib.Sin, indexed by degree and
// scaled to unit amplitude.
func Period() []float64 {
	out := make([]float64, period)
	for d := range out {
		v, _ := mathlib.Sin(int32(d))
		out[d] = float64(v)
	}
	vecmath.ScaleBlockInPlace(out, 1.0/mathlib.SinScale)
	return out
}

func measureTable(res *Result) {
	got := Period()

	ref := make([]float64, period)
	for d := range ref {
		ref[d] = math.Sin(float64(d) * math.Pi / 180)
	}

	diff := make([]float64, period)
	vecmath.ScaleBlock(diff, ref, -1)
	vecmath.AddBlockInPlace(diff, got)
	res.MaxAbsError = vecmath.MaxAbs(diff)

	for i, v := range diff {
		diff[i] = math.Abs(v)
	}
	res.MaxErrorDegree = int32(floats.MaxIdx(diff))
	res.RMSError = floats.Distance(got, ref, 2) / mathSqrt(period)
}

// oscillator steps through the table in whole degrees so that exactly
// cycles periods fit in n samples.
func oscillator(n, cycles int) []float64 {
	out := make([]float64, n)
	for i := range out {
		deg := int64(i) * int64(cycles) * period / int64(n) % period
		v, _ := mathlib.Sin(int32(deg))
		out[i] = float64(v)
	}
	vecmath.ScaleBlockInPlace(out, 1.0/mathlib.SinScale)
	return out
}

func measureOscillator(res *Result, cfg Config) error {
	n := cfg.FFTSize
	sig := oscillator(n, cfg.Cycles)

	in := make([]complex128, n)
	for i, v := range sig {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("fft plan: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return fmt.Errorf("fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	pow := make([]float64, bins)
	vecmath.Power(pow, re, im)

	fund := pow[cfg.Cycles]
	if fund <= 0 {
		return errNoFundamental
	}

	var harmPower float64
	res.Harmonics = res.Harmonics[:0]
	for h := 2; h <= cfg.MaxHarmonics; h++ {
		bin := h * cfg.Cycles
		if bin >= bins {
			break
		}
		ratio := mathSqrt(pow[bin] / fund)
		res.Harmonics = append(res.Harmonics, ratio)
		harmPower += pow[bin]
	}

	res.THD = mathSqrt(harmPower / fund)
	if res.THD > 0 {
		res.THD_dB = 20 * mathLog10(res.THD)
	} else {
		res.THD_dB = math.Inf(-1)
	}
	return nil
}
