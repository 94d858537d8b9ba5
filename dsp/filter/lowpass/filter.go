package lowpass

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultAlpha is a moderate smoothing factor for accelerometer streams.
const DefaultAlpha float32 = 0.2

// Filter is a single-pole EMA low-pass filter over [Sample] values.
type Filter struct {
	alpha    float32
	state    Sample
	hasState bool
}

// New returns a filter with the given smoothing factor and no state.
//
// alpha is the weight of the new sample and is expected in [0, 1]. It is not
// validated: values outside that range give correspondingly extreme or
// inverted weighting.
func New(alpha float32) *Filter {
	return &Filter{alpha: alpha}
}

// Apply filters one sample and returns the output.
//
// The first call after [New] or [Filter.Reset] stores raw as the state and
// returns it unchanged. Later calls blend raw with the previous output. A nil
// filter returns raw unchanged.
func (f *Filter) Apply(raw Sample) Sample {
	if f == nil {
		return raw
	}

	if !f.hasState {
		f.state = raw
		f.hasState = true
		return raw
	}

	a := f.alpha
	b := 1 - a
	prev := f.state

	// Explicit float32 conversions keep the products rounded separately so
	// the result never depends on FMA fusion.
	filtered := Sample{
		X: float32(a*raw.X) + float32(b*prev.X),
		Y: float32(a*raw.Y) + float32(b*prev.Y),
		Z: float32(a*raw.Z) + float32(b*prev.Z),
	}

	f.state = filtered
	return filtered
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []Sample) {
	for i, s := range buf {
		buf[i] = f.Apply(s)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []Sample) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, s := range src {
		dst[i] = f.Apply(s)
	}
}

// Reset discards the state. The next [Filter.Apply] seeds it again.
func (f *Filter) Reset() {
	f.state = Sample{}
	f.hasState = false
}

// Alpha returns the smoothing factor.
func (f *Filter) Alpha() float32 {
	return f.alpha
}

// State returns the most recent output and whether the filter has seen a
// sample since construction or the last reset.
func (f *Filter) State() (Sample, bool) {
	return f.state, f.hasState
}

// Response computes the steady-state complex frequency response
//
//	H(e^{jw}) = alpha / (1 - (1-alpha)*e^{-jw})
//
// at the given frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	a := float64(f.alpha)
	w := 2 * math.Pi * freqHz / sampleRate
	den := 1 - complex(1-a, 0)*cmplx.Exp(complex(0, -w))
	return complex(a, 0) / den
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// AlphaForCutoff returns the smoothing factor whose pole sits at the
// equivalent one-pole RC cutoff:
//
//	alpha = 1 - exp(-2*pi*fc/fs)
func AlphaForCutoff(cutoffHz, sampleRate float64) (float32, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}
	if cutoffHz < 0 || cutoffHz >= sampleRate/2 {
		return 0, fmt.Errorf("cutoff must be in [0, %f): %f", sampleRate/2, cutoffHz)
	}
	return float32(1 - math.Exp(-2*math.Pi*cutoffHz/sampleRate)), nil
}
