package generators

import (
	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

const GENERATORS_CHAIN_DOMAIN_TAG = "GeneratorsChain"

// ShakeStream is a deterministic byte stream squeezed from SHAKE256,
// seeded with the chain domain tag followed by a caller label.
type ShakeStream struct {
	xof sha3.ShakeHash
}

func NewShakeStream(label []byte) *ShakeStream {
	h := sha3.NewShake256()
	h.Write([]byte(GENERATORS_CHAIN_DOMAIN_TAG))
	h.Write(label)
	return &ShakeStream{xof: h}
}

// Read fills p and advances the stream cursor irreversibly. SHAKE
// output is unbounded so there is no error to report.
func (s *ShakeStream) Read(p []byte) {
	s.xof.Read(p)
}

// GeneratorsChain emits an unbounded sequence of group elements
// determined entirely by its label: element k is the same for every
// chain built from the same label.
type GeneratorsChain struct {
	stream *ShakeStream
}

func NewGeneratorsChain(label []byte) *GeneratorsChain {
	return &GeneratorsChain{stream: NewShakeStream(label)}
}

// Next squeezes 64 bytes and maps them onto the group. The map is
// total, so derivation can neither fail nor skip an ordinal.
func (c *GeneratorsChain) Next() *ristretto.Point {
	var data [64]byte
	c.stream.Read(data[:])
	return pointFromUniformBytes(data[:])
}

// FastForward squeezes and discards the next n elements. Rebuilding a
// chain from its label and fast-forwarding is the only way to resume
// derivation at a later ordinal.
func (c *GeneratorsChain) FastForward(n int) *GeneratorsChain {
	var data [64]byte
	for i := 0; i < n; i++ {
		c.stream.Read(data[:])
	}
	return c
}

func pointFromUniformBytes(key []byte) *ristretto.Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}
