package mathlib

import (
	"hash"

	"github.com/sigurn/crc8"
)

// Size of a CRC8 checksum in bytes.
const Size = 1

// params describes the fixed CRC8 variant.
var params = crc8.Params{
	Poly:   0x31,
	Init:   0xFF,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x00,
	Check:  0xF7,
	Name:   "CRC-8/NRSC-5",
}

var table = crc8.MakeTable(params)

// CRC8 computes the checksum of data. It returns [ErrInvalidLength] for an
// empty slice.
func CRC8(data []byte) (uint8, error) {
	if len(data) == 0 {
		return 0, ErrInvalidLength
	}
	return crc8.Checksum(data, table), nil
}

// Digest is a streaming CRC8. The zero value is not usable; call [NewCRC8].
type Digest struct {
	crc uint8
}

var _ hash.Hash = (*Digest)(nil)

// NewCRC8 returns a digest holding the initial value.
func NewCRC8() *Digest {
	return &Digest{crc: crc8.Init(table)}
}

// Write adds p to the running checksum. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.crc = crc8.Update(d.crc, p, table)
	return len(p), nil
}

// Sum8 returns the checksum of everything written so far.
func (d *Digest) Sum8() uint8 {
	return crc8.Complete(d.crc, table)
}

// Sum appends the checksum to b.
func (d *Digest) Sum(b []byte) []byte {
	return append(b, d.Sum8())
}

// Reset returns the digest to the initial value.
func (d *Digest) Reset() {
	d.crc = crc8.Init(table)
}

// Size returns the checksum length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns 1; the CRC consumes input a byte at a time.
func (d *Digest) BlockSize() int { return 1 }
