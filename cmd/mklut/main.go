//go:build !tinygo

// Command mklut writes the sine table used by the fixed-point trig functions.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math"
	"os"
)

func main() {
	var (
		outPath = flag.String("out", "sinlut.go", "Output Go file.")
		pkg     = flag.String("pkg", "fx", "Package name of the generated file.")
		size    = flag.Int("n", 512, "Table entries per turn (power of two).")
		shift   = flag.Int("shift", 12, "Fractional bits of each entry.")
	)
	flag.Parse()

	src, err := generate(*pkg, *size, *shift)
	if err != nil {
		fatalf("mklut: %v", err)
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fatalf("mklut: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// sinTable returns round(sin(2*pi*i/n) * 2^shift) for i in [0, n).
func sinTable(n, shift int) []int16 {
	one := float64(int(1) << shift)
	t := make([]int16, n)
	for i := range t {
		t[i] = int16(math.Round(math.Sin(2*math.Pi*float64(i)/float64(n)) * one))
	}
	return t
}

func generate(pkg string, n, shift int) ([]byte, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("table size %d is not a power of two", n)
	}
	if shift < 1 || shift > 14 {
		return nil, fmt.Errorf("shift %d does not fit int16", shift)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mklut; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// sinLUT holds sin(2*pi*i/%d) in .%d fixed point.\n", n, shift)
	fmt.Fprintf(&b, "var sinLUT = [%d]int16{\n", n)
	for i, v := range sinTable(n, shift) {
		if i%8 == 0 {
			b.WriteByte('\t')
		}
		fmt.Fprintf(&b, "%d,", v)
		if i%8 == 7 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("}\n")
	return format.Source(b.Bytes())
}
