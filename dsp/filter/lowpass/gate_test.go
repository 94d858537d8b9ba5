package lowpass

import "testing"

func TestMotionGate(t *testing.T) {
	g := NewMotionGate(0.5)

	steps := []struct {
		in   Sample
		want bool
	}{
		{Sample{X: 0, Y: 0, Z: 1}, false},    // baseline
		{Sample{X: 0.25, Y: 0, Z: 1}, false}, // within threshold, new baseline
		{Sample{X: 0.5, Y: 0, Z: 1}, false},  // 0.25 from baseline
		{Sample{X: 0.5, Y: 0, Z: 2}, true},   // Z moved by 1
		{Sample{X: 0.5, Y: 0, Z: 2}, false},  // baseline cleared, re-seeded
		{Sample{X: 0.5, Y: -1, Z: 2}, true},
	}

	for i, st := range steps {
		if got := g.Accept(st.in); got != st.want {
			t.Fatalf("step %d: Accept(%v) = %v, want %v", i, st.in, got, st.want)
		}
	}
}

func TestMotionGate_ThresholdIsStrict(t *testing.T) {
	g := NewMotionGate(0.5)
	g.Accept(Sample{X: 1})
	if g.Accept(Sample{X: 1.5}) {
		t.Fatal("change equal to threshold was accepted")
	}
	if !g.Accept(Sample{X: 2.25}) {
		t.Fatal("change above threshold was rejected")
	}
}

func TestMotionGate_Reset(t *testing.T) {
	g := NewMotionGate(DefaultMotionThreshold)
	if g.Threshold() != DefaultMotionThreshold {
		t.Fatalf("Threshold = %v, want %v", g.Threshold(), DefaultMotionThreshold)
	}
	g.Accept(Sample{Z: 1})
	g.Reset()
	if g.Accept(Sample{Z: 5}) {
		t.Fatal("first sample after Reset was accepted")
	}
}
