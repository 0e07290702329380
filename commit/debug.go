package commit

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/s2"

	"github.com/consensys/gnark-gl/poseidon"
)

// DumpCapSnapshot serializes a Result's cap and intermediate digest buffer
// into a compressed diagnostic blob, for attaching to a bug report or
// caching a run's output to disk. It is never on the commitment hot path.
func DumpCapSnapshot(res Result) []byte {
	var buf bytes.Buffer
	writeDigests(&buf, res.Cap)
	writeDigests(&buf, res.DigestBuf)
	return s2.Encode(nil, buf.Bytes())
}

func writeDigests(buf *bytes.Buffer, digests []poseidon.Digest) {
	var lenPrefix [8]byte
	binary.LittleEndian.PutUint64(lenPrefix[:], uint64(len(digests)))
	buf.Write(lenPrefix[:])

	var word [8]byte
	for _, d := range digests {
		for _, limb := range d {
			binary.LittleEndian.PutUint64(word[:], limb)
			buf.Write(word[:])
		}
	}
}
