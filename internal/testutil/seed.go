// Package testutil provides deterministic randomness for tests across the
// module: a named seed string expands through blake2b into a math/rand
// source, so every test run is reproducible from the seed alone without
// hand-picked integer seeds scattered across the test suite.
package testutil

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/blake2b"
)

// NewRandFromSeed expands seed through blake2b-256 into a *rand.Rand.
func NewRandFromSeed(seed string) *rand.Rand {
	sum := blake2b.Sum256([]byte(seed))
	s := int64(binary.LittleEndian.Uint64(sum[:8]))
	return rand.New(rand.NewSource(s))
}
