package mathlib

import (
	"errors"
	"math/rand"
	"testing"
)

// crc8BitLoop is the reference MSB-first bit loop the table engine must match.
func crc8BitLoop(data []byte) uint8 {
	crc := uint8(0xFF)
	for _, b := range data {
		crc ^= b
		for range 8 {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func TestCRC8KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint8
	}{
		{name: "check", data: []byte("123456789"), want: 0xF7},
		{name: "zero byte", data: []byte{0x00}, want: 0xAC},
		{name: "ff byte", data: []byte{0xFF}, want: 0x00},
		{name: "ascending", data: []byte{1, 2, 3}, want: 0x87},
		{name: "descending", data: []byte{3, 2, 1}, want: 0x69},
		{name: "greeting", data: []byte("Hello, Embedded Rust!"), want: 0x69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CRC8(tt.data)
			if err != nil {
				t.Fatalf("CRC8() error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("CRC8() = %#02x, want %#02x", got, tt.want)
			}
			if ref := crc8BitLoop(tt.data); ref != tt.want {
				t.Fatalf("bit loop = %#02x, want %#02x", ref, tt.want)
			}
		})
	}
}

func TestCRC8CheckValue(t *testing.T) {
	got, err := CRC8([]byte("123456789"))
	if err != nil {
		t.Fatal(err)
	}
	if got != params.Check {
		t.Fatalf("CRC8(check) = %#02x, check value %#02x", got, params.Check)
	}
}

func TestCRC8MatchesBitLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 300; n++ {
		data := make([]byte, n)
		rng.Read(data)
		got, err := CRC8(data)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if want := crc8BitLoop(data); got != want {
			t.Fatalf("len %d: CRC8 = %#02x, bit loop = %#02x", n, got, want)
		}
	}

	// Every single-byte input.
	for b := range 256 {
		data := []byte{byte(b)}
		got, _ := CRC8(data)
		if want := crc8BitLoop(data); got != want {
			t.Fatalf("byte %#02x: CRC8 = %#02x, bit loop = %#02x", b, got, want)
		}
	}
}

func TestCRC8OrderSensitive(t *testing.T) {
	a, _ := CRC8([]byte{1, 2, 3})
	b, _ := CRC8([]byte{3, 2, 1})
	if a == b {
		t.Fatalf("CRC8 is order-insensitive: both %#02x", a)
	}
}

func TestCRC8Empty(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		if _, err := CRC8(data); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("CRC8(%v) error = %v, want ErrInvalidLength", data, err)
		}
	}
}

func TestDigestChunkInvariant(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	want, err := CRC8(data)
	if err != nil {
		t.Fatal(err)
	}

	for split := 0; split <= len(data); split++ {
		d := NewCRC8()
		_, _ = d.Write(data[:split])
		_, _ = d.Write(nil)
		_, _ = d.Write(data[split:])
		if got := d.Sum8(); got != want {
			t.Fatalf("split at %d: Sum8 = %#02x, want %#02x", split, got, want)
		}
	}

	d := NewCRC8()
	for _, b := range data {
		_, _ = d.Write([]byte{b})
	}
	if got := d.Sum8(); got != want {
		t.Fatalf("byte-wise Sum8 = %#02x, want %#02x", got, want)
	}
}

func TestDigestHash(t *testing.T) {
	d := NewCRC8()
	if d.Size() != 1 || d.BlockSize() != 1 {
		t.Fatalf("Size/BlockSize = %d/%d, want 1/1", d.Size(), d.BlockSize())
	}
	if got := d.Sum8(); got != params.Init {
		t.Fatalf("empty digest = %#02x, want init %#02x", got, params.Init)
	}

	n, err := d.Write([]byte("123456789"))
	if err != nil || n != 9 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	sum := d.Sum([]byte{0xAA})
	if len(sum) != 2 || sum[0] != 0xAA || sum[1] != 0xF7 {
		t.Fatalf("Sum = %x, want aaf7", sum)
	}

	d.Reset()
	_, _ = d.Write([]byte{0x00})
	if got := d.Sum8(); got != 0xAC {
		t.Fatalf("after Reset Sum8 = %#02x, want 0xac", got)
	}
}
