package fft

import (
	"github.com/consensys/gnark-gl/field"
	"github.com/consensys/gnark-gl/internal/utils"
)

// CosetShiftPowers returns [g^0, g^1, ..., g^(n-1)] where g is the coset
// generator (domain constant 7), used to shift a subgroup into its coset
// before the forward NTT of a low-degree extension (§3, §4.D).
func CosetShiftPowers(n int) []uint64 {
	powers := make([]uint64, n)
	acc := uint64(1)
	for i := 0; i < n; i++ {
		powers[i] = acc
		acc = field.Mul(acc, field.CosetGenerator)
	}
	return powers
}

// Batch applies fn independently to each of the P rows of length N inside
// buf (a flat, row-major buffer of P*N elements), in parallel. It mirrors
// the CUDA convention of assigning one thread-block per polynomial (§5).
// maxCpus, if given, caps the number of goroutines used (see
// internal/utils.Parallelize); omitted, it defaults to runtime.NumCPU().
func Batch(buf []uint64, p, n int, fn func(row []uint64), maxCpus ...int) {
	utils.Parallelize(p, func(start, end int) {
		for i := start; i < end; i++ {
			fn(buf[i*n : (i+1)*n])
		}
	}, maxCpus...)
}
