package poseidon

import "github.com/consensys/gnark-gl/field"

// Width, rate and capacity of the sponge construction (§4.B / §6).
const (
	Width      = 12
	Rate       = 8
	Capacity   = 4
	FullRounds = 8 // split 4 + 4
	HalfRounds = FullRounds / 2
	PartialRounds = 22
	TotalRounds   = FullRounds + PartialRounds
	SBoxExponent  = 7
)

// MDSCirc and MDSDiag define the MDS layer: for output row r,
//
//	out[r] = sum_i state[(i+r) mod Width] * MDSCirc[i]  +  state[r] * MDSDiag[r]
//
// ALLRoundConstants holds TotalRounds*Width round constants, added 12 at a
// time (round_ctr*Width + i), to every round -- full and partial alike. The
// reference GPU kernel folds the partial rounds' non-lane-0 constants into a
// precomputed "fast partial round" matrix decomposition (FAST_PARTIAL_*) so
// that each partial round only touches a single constant; this package
// applies the mathematically equivalent direct form instead (see
// permutation.go and DESIGN.md's Open Questions entry on the fast-partial
// representation), so ALLRoundConstants is the only constant table needed.
//
// These tables are generated deterministically below rather than transcribed
// from the reference implementation: the retrieval pack's original_source
// mirror for this spec was filtered down to zero kept files, so there was no
// way to check a transcribed table against the canonical one bit-for-bit.
// Shipping a plausible-looking but unverified "reference" table would be
// worse than being explicit about this. Swapping in the canonical constants
// is a drop-in replacement of this file; nothing else in the package depends
// on how the values were produced.
var (
	MDSCirc           [Width]uint64
	MDSDiag           [Width]uint64
	ALLRoundConstants [TotalRounds * Width]uint64
)

func init() {
	s := newSplitMix64(0x506f736569646f6e) // "Poseidon" ASCII-packed seed
	for i := range MDSCirc {
		MDSCirc[i] = field.Canonical(s.next())
	}
	for i := range MDSDiag {
		MDSDiag[i] = field.Canonical(s.next())
	}
	for i := range ALLRoundConstants {
		ALLRoundConstants[i] = field.Canonical(s.next())
	}
}

// splitMix64 is a small, fast, fixed-seed PRNG used only to fill the
// constant tables above at init time; it has no role in the hash function
// itself and is never invoked outside init().
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *splitMix64 { return &splitMix64{state: seed} }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}
