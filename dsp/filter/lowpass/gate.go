package lowpass

// DefaultMotionThreshold is the per-axis change, in g, below which a new
// accelerometer reading is treated as noise.
const DefaultMotionThreshold float32 = 0.01

// MotionGate passes a sample only once it has moved away from a baseline by
// more than a threshold on at least one axis.
type MotionGate struct {
	threshold   float32
	baseline    Sample
	hasBaseline bool
}

// NewMotionGate returns a gate with the given per-axis threshold.
func NewMotionGate(threshold float32) *MotionGate {
	return &MotionGate{threshold: threshold}
}

// Accept reports whether s should be forwarded.
//
// Without a baseline, s becomes the baseline and is rejected. With one, s is
// accepted when any axis differs by strictly more than the threshold, which
// also clears the baseline. A rejected s replaces the baseline.
func (g *MotionGate) Accept(s Sample) bool {
	if g.hasBaseline && exceeds(g.baseline, s, g.threshold) {
		g.hasBaseline = false
		return true
	}
	g.baseline = s
	g.hasBaseline = true
	return false
}

// Reset clears the baseline.
func (g *MotionGate) Reset() {
	g.baseline = Sample{}
	g.hasBaseline = false
}

// Threshold returns the per-axis threshold.
func (g *MotionGate) Threshold() float32 {
	return g.threshold
}
