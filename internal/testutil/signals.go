package testutil

import (
	"math"
	"math/rand"
)

// Sine32 generates a deterministic float32 sine wave with a DC offset.
func Sine32(freqHz, sampleRate, amplitude, offset float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(offset + amplitude*math.Sin(step*float64(i)))
	}
	return out
}

// Noise32 generates uniform noise in [-amplitude, amplitude) around offset
// with a fixed seed for reproducibility.
func Noise32(seed int64, amplitude, offset float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32(offset + (rng.Float64()*2-1)*amplitude)
	}
	return out
}

// Step32 generates a signal that is zero before pos and level from pos on.
func Step32(level float32, length, pos int) []float32 {
	out := make([]float32, length)
	for i := range out {
		if i >= pos {
			out[i] = level
		}
	}
	return out
}
