// Package poseidon implements the width-12 Poseidon permutation over the
// Goldilocks field and the sponge construction built on top of it (§4.B).
package poseidon

import "github.com/consensys/gnark-gl/field"

// State is the 12-lane Poseidon state.
type State [Width]uint64

// Permute applies the full 30-round Poseidon permutation to state in place:
// HalfRounds full rounds, PartialRounds partial rounds, HalfRounds full
// rounds.
func Permute(state *State) {
	roundCtr := 0

	for r := 0; r < HalfRounds; r++ {
		fullRound(state, roundCtr)
		roundCtr++
	}
	for r := 0; r < PartialRounds; r++ {
		partialRound(state, roundCtr)
		roundCtr++
	}
	for r := 0; r < HalfRounds; r++ {
		fullRound(state, roundCtr)
		roundCtr++
	}
}

func fullRound(state *State, roundCtr int) {
	addRoundConstants(state, roundCtr)
	for i := range state {
		state[i] = sbox(state[i])
	}
	mdsLayer(state)
}

// partialRound applies the S-box only to lane 0. The reference GPU kernel
// folds the other 11 round constants and the first MDS multiplication of the
// sequence into precomputed FAST_PARTIAL_* tables so each round touches only
// one constant and one widened dot product; this direct form adds the full
// round constant vector and applies the ordinary MDS layer every round,
// which computes the same permutation (see constants.go).
func partialRound(state *State, roundCtr int) {
	addRoundConstants(state, roundCtr)
	state[0] = sbox(state[0])
	mdsLayer(state)
}

func addRoundConstants(state *State, roundCtr int) {
	base := roundCtr * Width
	for i := range state {
		state[i] = field.Add(state[i], ALLRoundConstants[base+i])
	}
}

// sbox computes x^7 as x2*x2*x*x2's rearrangement: x2=x*x, x4=x2*x2,
// x3=x*x2, return x3*x4 (§4.B).
func sbox(x uint64) uint64 {
	x2 := field.Mul(x, x)
	x4 := field.Mul(x2, x2)
	x3 := field.Mul(x, x2)
	return field.Mul(x3, x4)
}

// mdsLayer computes, for each output row r:
//
//	out[r] = sum_i state[(i+r) mod Width] * MDSCirc[i]  +  state[r] * MDSDiag[r]
//
// Each term is reduced as it is folded in (rather than accumulated in a wide
// 128-bit accumulator and reduced once, as the reference kernel does): with
// up to Width+1 full 64x64 products summed per row, a single 128-bit
// accumulator can itself overflow, so reducing incrementally is the
// correctness-preserving choice here.
func mdsLayer(state *State) {
	var out State
	for r := 0; r < Width; r++ {
		acc := uint64(0)
		for i := 0; i < Width; i++ {
			v := state[(i+r)%Width]
			acc = field.Add(acc, field.Mul(v, MDSCirc[i]))
		}
		acc = field.Add(acc, field.Mul(state[r], MDSDiag[r]))
		out[r] = acc
	}
	*state = out
}
