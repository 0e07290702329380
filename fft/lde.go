package fft

import (
	"fmt"

	"github.com/consensys/gnark-gl/field"
)

// IFFT runs an in-place batched inverse NTT over P rows of length N inside
// batch (§4.H `ifft`). small must be the Domain of size N. maxCpus, if
// given, caps the goroutine count used to fan the rows out (see Batch).
func IFFT(batch []uint64, p, n int, small *Domain, maxCpus ...int) {
	if p <= 0 || n <= 0 {
		panic("fft: P and N must be positive")
	}
	if len(batch) != p*n {
		panic(fmt.Sprintf("fft: batch length %d does not match P*N=%d", len(batch), p*n))
	}
	if int(small.N) != n {
		panic("fft: domain size does not match N")
	}
	Batch(batch, p, n, func(row []uint64) {
		small.INTT(row)
	}, maxCpus...)
}

// FFTCosetLDE produces the low-degree extension of a coefficient batch onto
// a coset of the extended domain of size N*2^r (§4.D):
//
//  1. copy coefficients into the low N positions of each output row,
//  2. zero-fill positions [N, N*2^r),
//  3. multiply the low-N region by the coset shift powers,
//  4. forward-NTT the extended row (producing natural-order evaluations:
//     output[i] = f(g * omega^i)).
//
// ext must be sized for P rows of N*2^r elements, preceded by a padLen
// prefix reserved for the eventual transpose (§3, §6); padLen is only used
// to compute the output row offsets, the prefix bytes themselves are left
// untouched here.
func FFTCosetLDE(coeffBatch []uint64, extBatch []uint64, p, n, r int, ext *Domain, shiftPowers []uint64, padLen int) {
	if p <= 0 || n <= 0 || r < 0 {
		panic("fft: invalid shape for FFTCosetLDE")
	}
	extN := n << uint(r)
	if len(coeffBatch) != p*n {
		panic(fmt.Sprintf("fft: coeff batch length %d does not match P*N=%d", len(coeffBatch), p*n))
	}
	if len(extBatch) != padLen+p*extN {
		panic(fmt.Sprintf("fft: ext batch length %d does not match padLen+P*N*2^r=%d", len(extBatch), padLen+p*extN))
	}
	if int(ext.N) != extN {
		panic("fft: extended domain size does not match N*2^r")
	}
	if len(shiftPowers) != n {
		panic("fft: coset shift table must have N entries")
	}

	for row := 0; row < p; row++ {
		src := coeffBatch[row*n : (row+1)*n]
		dst := extBatch[padLen+row*extN : padLen+(row+1)*extN]

		copy(dst[:n], src)
		for i := n; i < extN; i++ {
			dst[i] = 0
		}
		for i := 0; i < n; i++ {
			dst[i] = field.Mul(dst[i], shiftPowers[i])
		}

		// The reference kernel can start butterflies at level r since
		// positions >= N are zero; this port always runs the full
		// transform (skip=0) -- see DESIGN.md.
		ext.NTT(dst, 0)
	}
}
