package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Float is the element type accepted by the tolerance helpers.
type Float interface {
	~float32 | ~float64
}

// worstDiff returns the index and size of the largest absolute difference.
func worstDiff[T Float](a, b []T) (int, float64) {
	idx, worst := -1, 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if idx < 0 || d > worst || math.IsNaN(d) {
			idx, worst = i, d
		}
		if math.IsNaN(d) {
			break
		}
	}
	return idx, worst
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// their worst element pair differs by more than eps. The failure names that
// pair.
func RequireSliceNearlyEqual[T Float](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	idx, worst := worstDiff(got, want)
	if idx >= 0 && !(worst <= eps) {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", idx, got[idx], want[idx], worst, eps)
	}
}

// RequireFinite32 fails t if any element is NaN or Inf.
func RequireFinite32(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff32 returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff32(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	_, worst := worstDiff(a, b)
	return worst, nil
}
