package commit

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/consensys/gnark-gl/field"
)

// sampleFieldElement draws a uniform canonical Goldilocks element via
// rejection sampling, the same approach gnark-crypto's fr.Element.SetRandom
// uses for its own prime field.
func sampleFieldElement() uint64 {
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			panic(err)
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v < field.Modulus {
			return v
		}
	}
}

// saltRows allocates n rows of m uniform field elements each, used to blind
// the leaves (§9 supplemented feature).
func saltRows(n, m int) [][]uint64 {
	rows := make([][]uint64, n)
	for i := range rows {
		row := make([]uint64, m)
		for j := range row {
			row[j] = sampleFieldElement()
		}
		rows[i] = row
	}
	return rows
}
