package generators

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"golang.org/x/crypto/sha3"
)

const PEDERSEN_HASH_TO_POINT_DOMAIN_TAG = "pedersen_gens_hash_to_point"

// PedersenGens is the base pair for single-value Pedersen commitments:
// B binds the value, BBlinding the blinding factor. One base is
// hash-derived from the other, so no discrete-log relation between
// them is known.
type PedersenGens struct {
	B         *ristretto.Point
	BBlinding *ristretto.Point
}

// NewPedersenGens derives the value base from a domain-tagged blake2b
// hash of the canonical ristretto base point.
func NewPedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	return &PedersenGens{
		B:         hashToPoint(&base),
		BBlinding: &base,
	}
}

// DefaultPedersenGens uses the canonical base point for values and
// SHA3-512 of its encoding, mapped through the uniform map, for
// blindings.
func DefaultPedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	h := sha3.New512()
	h.Write(base.Bytes())

	return &PedersenGens{
		B:         &base,
		BBlinding: pointFromUniformBytes(h.Sum(nil)),
	}
}

func hashToPoint(public *ristretto.Point) *ristretto.Point {
	hash := blake2b.New512()
	hash.Write([]byte(PEDERSEN_HASH_TO_POINT_DOMAIN_TAG))
	hash.Write(public.Bytes())
	return pointFromUniformBytes(hash.Sum(nil))
}
