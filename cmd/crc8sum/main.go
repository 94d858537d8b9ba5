// Command crc8sum prints CRC-8/NRSC-5 checksums (poly 0x31, init 0xFF).
//
// Usage:
//
//	crc8sum [file ...]
//
// With no files, or when a file is "-", it reads standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-sensor/mathlib"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		args = []string{"-"}
	}

	status := 0
	for _, name := range args {
		crc, err := sumFile(name, stdin)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "crc8sum: %s: %v\n", name, err)
			status = 1
			continue
		}
		if _, err := fmt.Fprintf(stdout, "%02x  %s\n", crc, name); err != nil {
			_, _ = fmt.Fprintf(stderr, "crc8sum: failed to write output: %v\n", err)
			return 1
		}
	}
	return status
}

func sumFile(name string, stdin io.Reader) (uint8, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	d := mathlib.NewCRC8()
	n, err := io.Copy(d, r)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("empty input: %w", mathlib.ErrInvalidLength)
	}
	return d.Sum8(), nil
}
