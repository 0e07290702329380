// Package fft implements the batched radix-2 decimation-in-time NTT/INTT
// kernel, the coset low-degree extension, and the supporting twiddle and
// bit-reversal machinery (§4.C, §4.D). It is modeled on gnark-crypto's
// ecc/<curve>/fr/fft.Domain: a precomputed, reusable table of roots of unity
// for one fixed transform size, with NTT/INTT as methods on it.
package fft

import (
	"fmt"

	"github.com/consensys/gnark-gl/field"
)

// Domain holds the precomputed twiddle table for in-place NTTs of a fixed
// size N = 2^LogN over the Goldilocks field.
type Domain struct {
	LogN     int
	N        uint64
	NInv     uint64
	Twiddles []uint64 // flat, level-concatenated table; see Level().
}

// NewDomain precomputes the twiddle table for transforms of size 2^logN.
func NewDomain(logN int) *Domain {
	if logN < 0 {
		panic("fft: negative logN")
	}
	n := uint64(1) << uint(logN)
	d := &Domain{
		LogN: logN,
		N:    n,
		NInv: field.InverseTwoExp(uint(logN)),
	}
	d.Twiddles = buildTwiddleTable(logN)
	return d
}

// buildTwiddleTable lays out, for each level lvl in [0, logN), the
// half=2^lvl powers of the (2^(lvl+1))-th primitive root of unity,
// concatenated level by level (§3's twiddle table layout, up to the level
// indexing convention noted in DESIGN.md).
func buildTwiddleTable(logN int) []uint64 {
	if logN == 0 {
		return nil
	}
	n := 1 << uint(logN)
	table := make([]uint64, n-1)
	offset := 0
	for lvl := 0; lvl < logN; lvl++ {
		half := 1 << uint(lvl)
		w := field.PrimitiveRootOfUnity(uint(lvl + 1))
		acc := uint64(1)
		for j := 0; j < half; j++ {
			table[offset+j] = acc
			acc = field.Mul(acc, w)
		}
		offset += half
	}
	return table
}

// Level returns the twiddle sub-table for butterfly level lvl (subarray size
// m = 2^(lvl+1), half-offset 2^lvl): half = 2^lvl consecutive powers of the
// m-th root of unity.
func (d *Domain) Level(lvl int) []uint64 {
	half := 1 << uint(lvl)
	start := half - 1
	return d.Twiddles[start : start+half]
}

// checkSize panics if buf's length doesn't match the domain -- a mismatched
// twiddle-table size is a programmer error (§4.C "Failure modes").
func (d *Domain) checkSize(buf []uint64) {
	if uint64(len(buf)) != d.N {
		panic(fmt.Sprintf("fft: buffer length %d does not match domain size %d", len(buf), d.N))
	}
	if len(buf)&(len(buf)-1) != 0 {
		panic("fft: buffer length must be a power of two")
	}
}

// NTT runs the forward radix-2 DIT transform on buf in place: bit-reversal
// permutation, then the butterfly network from level skip up to LogN-1.
// skip > 0 elides the lowest skip levels; see DESIGN.md for why this port
// always calls it with skip=0 rather than replicating the reference's
// early-level elision optimization.
func (d *Domain) NTT(buf []uint64, skip int) {
	d.checkSize(buf)
	BitReverse(buf)
	for lvl := skip; lvl < d.LogN; lvl++ {
		half := 1 << uint(lvl)
		m := half << 1
		tw := d.Level(lvl)
		for k := 0; k < int(d.N); k += m {
			for j := 0; j < half; j++ {
				w := tw[j]
				u := buf[k+j]
				t := field.Mul(w, buf[k+j+half])
				buf[k+j] = field.Add(u, t)
				buf[k+j+half] = field.Sub(u, t)
			}
		}
	}
}

// INTT runs the same transform as NTT (skip=0), then scales by N^-1 and
// reverse-pairs the outputs to produce the standard inverse-NTT result
// (§4.C).
func (d *Domain) INTT(buf []uint64) {
	d.checkSize(buf)
	d.NTT(buf, 0)

	n := len(buf)
	buf[0] = field.Mul(buf[0], d.NInv)
	if n > 1 {
		buf[n/2] = field.Mul(buf[n/2], d.NInv)
	}
	for i := 1; i < n/2; i++ {
		bi := buf[i]
		bni := buf[n-i]
		buf[i] = field.Mul(bni, d.NInv)
		buf[n-i] = field.Mul(bi, d.NInv)
	}
}
