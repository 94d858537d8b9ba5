// Package lowpass provides a single-pole exponential-moving-average filter
// for 3-axis sensor samples.
//
// A [Filter] smooths a stream of [Sample] values (for example accelerometer
// readings) with
//
//	y[n] = alpha*x[n] + (1-alpha)*y[n-1]
//
// evaluated independently per axis in float32. The first sample after
// construction or [Filter.Reset] seeds the state and is returned unchanged,
// so the output starts without phase lag.
//
// A [MotionGate] suppresses samples that do not move by more than a
// threshold on any axis, mirroring the data-ready loop of common I²C
// accelerometer drivers.
//
// Neither type is safe for concurrent use. Each instance belongs to a single
// goroutine or must be guarded by the caller.
package lowpass
