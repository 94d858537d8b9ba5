// Package sinlut measures the accuracy of the fixed-point sine table in
// package mathlib.
//
// [Analyze] compares every integer degree of one period against math.Sin and
// measures the harmonic distortion of an oscillator that steps through the
// table in whole degrees. Building with the fastmath tag swaps the square
// root and logarithm for algo-approx approximations.
package sinlut
