package lowpass

import "fmt"

// Sample is a single 3-axis measurement.
type Sample struct {
	X, Y, Z float32
}

// String formats the sample as "(x, y, z)".
func (s Sample) String() string {
	return fmt.Sprintf("(%g, %g, %g)", s.X, s.Y, s.Z)
}

// exceeds reports whether any axis of a and b differs by more than threshold.
func exceeds(a, b Sample, threshold float32) bool {
	return absDiff(a.X, b.X) > threshold ||
		absDiff(a.Y, b.Y) > threshold ||
		absDiff(a.Z, b.Z) > threshold
}

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}
