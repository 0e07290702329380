package transpose

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomRows(r *rand.Rand, rCount, m int) [][]uint64 {
	rows := make([][]uint64, rCount)
	for i := range rows {
		row := make([]uint64, m)
		for j := range row {
			row[j] = r.Uint64()
		}
		rows[i] = row
	}
	return rows
}

// Invariant 7: ToColumnMajor(ToRowMajor(rows)) == rows.
func TestTransposeIsInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	rows := randomRows(r, 5, 16)

	flat := ToRowMajor(rows)
	require.Len(t, flat, 5*16)

	back := ToColumnMajor(flat, 5, 16)
	require.Equal(t, rows, back)
}

func TestToRowMajorLayout(t *testing.T) {
	rows := [][]uint64{
		{1, 2, 3},
		{10, 20, 30},
	}
	flat := ToRowMajor(rows)
	require.Equal(t, []uint64{1, 10, 2, 20, 3, 30}, flat)
}

func TestToRowMajorEmpty(t *testing.T) {
	require.Nil(t, ToRowMajor(nil))
}

func TestToRowMajorPanicsOnRaggedRows(t *testing.T) {
	require.Panics(t, func() {
		ToRowMajor([][]uint64{{1, 2}, {1, 2, 3}})
	})
}

func TestToColumnMajorPanicsOnLengthMismatch(t *testing.T) {
	require.Panics(t, func() {
		ToColumnMajor([]uint64{1, 2, 3}, 2, 2)
	})
}

func TestSaltColumnsSurviveRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	poly := randomRows(r, 3, 8)
	salts := randomRows(r, 2, 8)
	rows := append(append([][]uint64{}, poly...), salts...)

	flat := ToRowMajor(rows)
	back := ToColumnMajor(flat, 5, 8)
	require.Equal(t, rows, back)
}
