package merkle

import "github.com/consensys/gnark-gl/poseidon"

// HashLeaves hashes each of the m columns of rows (a column-major matrix:
// len(rows) "polynomials", each of length m) into a Poseidon digest and
// writes it into digestBuf at the slot FindDigestIndex assigns it within its
// capped subtree (§4.E). capLen is the number of leaves per subtree
// (m / 2^capHeight); digestLen is the number of non-cap slots reserved per
// subtree in digestBuf (see BuildMerkleTree).
//
// When capLen == 1 the tree degenerates: every leaf is its own cap entry, so
// leaves are written directly into cap instead of digestBuf (§9 Open
// Question: cap_height == log2(M)).
func HashLeaves(rows [][]uint64, m, capLen, digestLen int, digestBuf, cap []poseidon.Digest) {
	leaf := make([]uint64, len(rows))
	for i := 0; i < m; i++ {
		for r, row := range rows {
			leaf[r] = row[i]
		}
		d := poseidon.HashNToMNoPad(leaf)

		if capLen == 1 {
			cap[i] = d
			continue
		}

		capIdx := i / capLen
		local := i % capLen
		slot := FindDigestIndex(0, local, capLen, digestLen)
		digestBuf[capIdx*digestLen+slot] = d
	}
}
