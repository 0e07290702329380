package merkle

import (
	"fmt"

	"github.com/consensys/gnark-gl/internal/utils"
	"github.com/consensys/gnark-gl/poseidon"
)

// BuildMerkleTree hashes the m leaves formed by the columns of rows (each
// row a polynomial's m evaluations) and reduces them bottom-up to a cap of
// 2^capHeight digests (§4.E, §4.F). It returns the flat intermediate-digest
// buffer (useful for Merkle-path construction, not otherwise consumed here)
// alongside the cap itself.
//
// m must be a power of two no smaller than 2^capHeight; every row must have
// length m. maxCpus, if given, caps the goroutine count used to fan the
// per-cap reductions out (see internal/utils.Parallelize).
func BuildMerkleTree(rows [][]uint64, capHeight int, maxCpus ...int) (digestBuf []poseidon.Digest, cap []poseidon.Digest) {
	if len(rows) == 0 {
		panic("merkle: no rows to hash")
	}
	m := len(rows[0])
	if m&(m-1) != 0 {
		panic("merkle: row length must be a power of two")
	}
	for _, row := range rows {
		if len(row) != m {
			panic("merkle: rows have inconsistent lengths")
		}
	}
	capCount := 1 << uint(capHeight)
	if capCount > m {
		panic(fmt.Sprintf("merkle: cap height %d exceeds log2(M)=%d", capHeight, bitLen(m)-1))
	}
	capLen := m / capCount

	numDigests := 2 * (m - capCount)
	digestLen := 0
	if capCount > 0 {
		digestLen = numDigests / capCount
	}

	digestBuf = make([]poseidon.Digest, numDigests)
	cap = make([]poseidon.Digest, capCount)

	HashLeaves(rows, m, capLen, digestLen, digestBuf, cap)

	if capLen == 1 {
		return digestBuf, cap
	}

	utils.Parallelize(capCount, func(start, end int) {
		for j := start; j < end; j++ {
			reduceSubtree(digestBuf, cap, j, capLen, digestLen)
		}
	}, maxCpus...)

	return digestBuf, cap
}

// reduceSubtree runs the pairwise two-to-one compression for cap slot j,
// walking up from leaf digests to the subtree root (§4.F).
func reduceSubtree(digestBuf, cap []poseidon.Digest, j, capLen, digestLen int) {
	base := j * digestLen
	layer := 0
	curLen := capLen

	for curLen > 1 {
		pairs := curLen / 2
		for ii := 0; ii < pairs; ii++ {
			leftSlot := FindDigestIndex(layer, 2*ii, capLen, digestLen)
			rightSlot := FindDigestIndex(layer, 2*ii+1, capLen, digestLen)
			left := digestBuf[base+leftSlot]
			right := digestBuf[base+rightSlot]
			compressed := poseidon.TwoToOne(left, right)

			if curLen == 2 {
				cap[j] = compressed
			} else {
				parentSlot := FindDigestIndex(layer+1, ii, capLen, digestLen)
				digestBuf[base+parentSlot] = compressed
			}
		}
		layer++
		curLen /= 2
	}
}

func bitLen(n int) int {
	l := 0
	for n > 0 {
		n >>= 1
		l++
	}
	return l
}
