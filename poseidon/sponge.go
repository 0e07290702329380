package poseidon

import "github.com/consensys/gnark-gl/field"

// Digest is a four-field-element hash output (§3).
type Digest [4]uint64

// HashNToMNoPad absorbs inputs in Rate-sized chunks through the permutation
// (no padding is applied -- the caller's input length is assumed to encode
// its own domain separation, as with the fixed-size Merkle leaves and
// two-to-one compressions used throughout this pipeline) and squeezes a
// single Digest from the first 4 lanes of the final state.
func HashNToMNoPad(input []uint64) Digest {
	var state State

	for len(input) > 0 {
		n := Rate
		if n > len(input) {
			n = len(input)
		}
		for i := 0; i < n; i++ {
			state[i] = field.Add(state[i], input[i])
		}
		// any lanes beyond n in this chunk keep their prior value (nothing
		// is added to them), matching an implicit zero-pad of the last
		// partial chunk.
		Permute(&state)
		input = input[n:]
	}

	var out Digest
	copy(out[:], state[:4])
	return out
}

// TwoToOne compresses two sibling digests into one by absorbing both into
// the first 8 lanes (rate) of a fresh state, zeroing the capacity lanes,
// permuting once, and reading the first 4 lanes (§4.B).
func TwoToOne(left, right Digest) Digest {
	var state State
	copy(state[0:4], left[:])
	copy(state[4:8], right[:])
	// state[8:12] already zero.
	Permute(&state)

	var out Digest
	copy(out[:], state[:4])
	return out
}
