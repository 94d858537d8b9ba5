package mathlib

import "errors"

var (
	// ErrInvalidLength is returned when a checksum is requested over no data.
	ErrInvalidLength = errors.New("mathlib: data length must be > 0")
	// ErrOutOfRange is returned for angles outside [0, 360).
	ErrOutOfRange = errors.New("mathlib: angle out of range")
)
