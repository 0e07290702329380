package fft

import (
	"math/rand"
	"testing"

	"github.com/consensys/gnark-gl/field"
	"github.com/consensys/gnark-gl/internal/testutil"
	"github.com/stretchr/testify/require"
)

// S2: P=1, N=4, input coefficients [1,2,3,4]; forward NTT then inverse NTT
// returns [1,2,3,4].
func TestS2TinyRoundTrip(t *testing.T) {
	d := NewDomain(2)
	buf := []uint64{1, 2, 3, 4}
	orig := append([]uint64(nil), buf...)

	d.NTT(buf, 0)
	d.INTT(buf)

	for i := range orig {
		require.True(t, field.Equal(orig[i], buf[i]), "index %d", i)
	}
}

func TestNTTRoundTripVariousSizes(t *testing.T) {
	r := testutil.NewRandFromSeed("fft-roundtrip-various-sizes")
	for logN := 0; logN <= 10; logN++ {
		n := 1 << uint(logN)
		d := NewDomain(logN)

		buf := make([]uint64, n)
		for i := range buf {
			buf[i] = r.Uint64() % field.Modulus
		}
		orig := append([]uint64(nil), buf...)

		d.NTT(buf, 0)
		d.INTT(buf)
		for i := range orig {
			require.True(t, field.Equal(orig[i], buf[i]), "NTT/INTT round trip at logN=%d idx=%d", logN, i)
		}

		// INTT(NTT(X)) == X and NTT(INTT(X)) == X
		buf2 := append([]uint64(nil), orig...)
		d.INTT(buf2)
		d.NTT(buf2, 0)
		for i := range orig {
			require.True(t, field.Equal(orig[i], buf2[i]), "INTT/NTT round trip at logN=%d idx=%d", logN, i)
		}
	}
}

// S3: P=2, N=8, r=1; output extended batch has 32 elements and positions
// [N, 2N) are written by the forward NTT (not left as zero).
func TestS3LDEShape(t *testing.T) {
	const p, n, r = 2, 8, 1
	extN := n << r

	coeffs := make([]uint64, p*n)
	rnd := rand.New(rand.NewSource(7))
	for i := range coeffs {
		coeffs[i] = rnd.Uint64() % field.Modulus
	}

	ext := make([]uint64, p*extN)
	domainExt := NewDomain(logTwoOf(extN))
	shiftPowers := CosetShiftPowers(n)

	FFTCosetLDE(coeffs, ext, p, n, r, domainExt, shiftPowers, 0)

	require.Len(t, ext, 32)

	for row := 0; row < p; row++ {
		upper := ext[row*extN+n : row*extN+extN]
		allZero := true
		for _, v := range upper {
			if v != 0 {
				allZero = false
				break
			}
		}
		require.False(t, allZero, "row %d: upper half of extended buffer was left zero", row)
	}
}

func TestCosetLDEEvaluatesPolynomial(t *testing.T) {
	const n, r = 8, 1
	extN := n << r

	coeffs := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	ext := make([]uint64, extN)
	domainExt := NewDomain(logTwoOf(extN))
	shiftPowers := CosetShiftPowers(n)

	FFTCosetLDE(coeffs, ext, 1, n, r, domainExt, shiftPowers, 0)

	omega := field.PrimitiveRootOfUnity(uint(logTwoOf(extN)))
	g := field.CosetGenerator

	for i := 0; i < extN; i++ {
		// evaluate f(g * omega^i) directly via Horner
		x := field.Mul(g, field.ExpU64(omega, uint64(i)))
		var acc uint64
		for j := len(coeffs) - 1; j >= 0; j-- {
			acc = field.Add(field.Mul(acc, x), coeffs[j])
		}
		require.True(t, field.Equal(acc, ext[i]), "coset LDE mismatch at i=%d", i)
	}
}

func TestBitReverseInvolution(t *testing.T) {
	n := 32
	buf := make([]uint64, n)
	for i := range buf {
		buf[i] = uint64(i)
	}
	orig := append([]uint64(nil), buf...)
	BitReverse(buf)
	BitReverse(buf)
	require.Equal(t, orig, buf)
}

func logTwoOf(n int) int {
	l := 0
	for (1 << uint(l)) < n {
		l++
	}
	return l
}
