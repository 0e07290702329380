// Package transpose converts between the column-major layout the NTT/LDE
// kernels operate on (one contiguous row per polynomial) and the row-major
// layout leaf hashing and downstream serialization want (one contiguous
// row per evaluation point, polynomial values interleaved with any salt
// columns) (§4.G).
package transpose

import "fmt"

// ToRowMajor packs rows (r rows, each of length m, column-major by
// polynomial/salt) into a flat row-major buffer of length r*m where leaf i's
// r values are contiguous: out[i*r+j] = rows[j][i].
func ToRowMajor(rows [][]uint64) []uint64 {
	r := len(rows)
	if r == 0 {
		return nil
	}
	m := len(rows[0])
	for _, row := range rows {
		if len(row) != m {
			panic("transpose: rows have inconsistent lengths")
		}
	}

	out := make([]uint64, r*m)
	for j, row := range rows {
		for i, v := range row {
			out[i*r+j] = v
		}
	}
	return out
}

// ToColumnMajor is the inverse of ToRowMajor: given a flat row-major buffer
// of m leaves with r values each, it reconstructs the r column-major rows.
func ToColumnMajor(buf []uint64, r, m int) [][]uint64 {
	if r <= 0 || m <= 0 {
		panic("transpose: R and M must be positive")
	}
	if len(buf) != r*m {
		panic(fmt.Sprintf("transpose: buffer length %d does not match R*M=%d", len(buf), r*m))
	}

	rows := make([][]uint64, r)
	for j := range rows {
		rows[j] = make([]uint64, m)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			rows[j][i] = buf[i*r+j]
		}
	}
	return rows
}
