// Package mathlib provides small integer math routines for constrained
// targets: an 8-bit CRC and a fixed-point sine.
//
// [CRC8] uses polynomial 0x31 with initial value 0xFF, MSB first, no
// reflection and no final XOR (CRC-8/NRSC-5). [NewCRC8] returns a streaming
// [Digest] for data that arrives in chunks; the result does not depend on how
// the input is split.
//
// [Sin] returns sin(degrees)*[SinScale] for integer angles in [0, 360) from a
// 90-entry first-quadrant table using quadrant reflection. [Cos] uses the
// same table.
//
// Every function is pure and safe for concurrent use. A [Digest] is not.
package mathlib
