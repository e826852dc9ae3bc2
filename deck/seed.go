package deck

import (
	"encoding/binary"

	"go.dedis.ch/kyber/v4/util/random"
)

// NewSeed draws a shuffle seed from the crypto stream. It is library
// surface for embedders of this package: the shipped CLI seeds from
// the wall clock (or its seed argument) by design, so callers that
// want stronger entropy pass NewSeed to Shuffle's source themselves.
func NewSeed() int64 {
	var buf [8]byte
	random.Bytes(buf[:], random.New())
	return int64(binary.BigEndian.Uint64(buf[:]))
}
