package generators

import (
	"encoding/binary"

	"github.com/bwesterb/go-ristretto"
)

// AggregatedGens holds per-party generator slices for aggregated range
// proofs. Party i derives its families from the labels 'G'||LE32(i)
// and 'H'||LE32(i), so parties never share generators.
type AggregatedGens struct {
	GensCapacity  int
	PartyCapacity int
	GVec          [][]*ristretto.Point
	HVec          [][]*ristretto.Point
}

func NewAggregatedGens(gensCapacity, partyCapacity int) *AggregatedGens {
	a := &AggregatedGens{
		PartyCapacity: partyCapacity,
		GVec:          make([][]*ristretto.Point, partyCapacity),
		HVec:          make([][]*ristretto.Point, partyCapacity),
	}
	a.IncreaseCapacity(gensCapacity)
	return a
}

func partyLabel(family byte, party int) []byte {
	label := make([]byte, 5)
	label[0] = family
	binary.LittleEndian.PutUint32(label[1:], uint32(party))
	return label
}

// IncreaseCapacity applies the store's fast-forward growth rule to
// every party slice: existing generators are kept, new ones appended.
func (a *AggregatedGens) IncreaseCapacity(target int) {
	if a.GensCapacity >= target {
		return
	}

	for i := 0; i < a.PartyCapacity; i++ {
		chainG := NewGeneratorsChain(partyLabel('G', i)).FastForward(a.GensCapacity)
		for j := a.GensCapacity; j < target; j++ {
			a.GVec[i] = append(a.GVec[i], chainG.Next())
		}

		chainH := NewGeneratorsChain(partyLabel('H', i)).FastForward(a.GensCapacity)
		for j := a.GensCapacity; j < target; j++ {
			a.HVec[i] = append(a.HVec[i], chainH.Next())
		}
	}
	a.GensCapacity = target
}

// G iterates over the first min(n, GensCapacity) G generators of each
// of the first min(m, PartyCapacity) parties, party-major.
func (a *AggregatedGens) G(n, m int) *AggregatedGensIter {
	return newAggregatedGensIter(a.GVec, n, m, a.GensCapacity, a.PartyCapacity)
}

// H is the H-family counterpart of G.
func (a *AggregatedGens) H(n, m int) *AggregatedGensIter {
	return newAggregatedGensIter(a.HVec, n, m, a.GensCapacity, a.PartyCapacity)
}

type AggregatedGensIter struct {
	array    [][]*ristretto.Point
	n, m     int
	partyIdx int
	genIdx   int
}

func newAggregatedGensIter(array [][]*ristretto.Point, n, m, gensCap, partyCap int) *AggregatedGensIter {
	if n > gensCap {
		n = gensCap
	}
	if m > partyCap {
		m = partyCap
	}
	if n == 0 {
		m = 0
	}
	return &AggregatedGensIter{array: array, n: n, m: m}
}

// Next returns the next generator in party-major order, or nil once
// all m party prefixes are exhausted.
func (it *AggregatedGensIter) Next() *ristretto.Point {
	if it.genIdx >= it.n {
		it.genIdx = 0
		it.partyIdx += 1
	}
	if it.partyIdx >= it.m {
		return nil
	}
	cur := it.genIdx
	it.genIdx += 1
	return it.array[it.partyIdx][cur]
}

// GensShare is one party's bounded view of an aggregated table.
type GensShare struct {
	gens  *AggregatedGens
	share int
}

func (a *AggregatedGens) Share(j int) *GensShare {
	return &GensShare{gens: a, share: j}
}

func (s *GensShare) G(n int) []*ristretto.Point {
	return boundedPrefix(s.gens.GVec[s.share], n)
}

func (s *GensShare) H(n int) []*ristretto.Point {
	return boundedPrefix(s.gens.HVec[s.share], n)
}

func boundedPrefix(array []*ristretto.Point, n int) []*ristretto.Point {
	if n > len(array) {
		n = len(array)
	}
	return array[:n]
}
