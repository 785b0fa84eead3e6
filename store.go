package generators

import (
	"github.com/bwesterb/go-ristretto"
)

// GeneratorStore caches the G and H generator families for Pedersen
// vector commitments. Capacity only grows and generators never change
// once written, so commitments made against an earlier capacity stay
// valid after growth.
//
// The store is not synchronized internally: callers sharing one store
// across goroutines must serialize IncreaseCapacity themselves. Views
// snapshot the stored sequences, so reads concurrent with growth never
// observe a partial append.
type GeneratorStore struct {
	Capacity int
	label    []byte
	gVec     []*ristretto.Point
	hVec     []*ristretto.Point
}

// NewGeneratorStore derives both families from label, one chain per
// family seeded with the family byte ('G' or 'H') prepended to label.
func NewGeneratorStore(label []byte, n int) *GeneratorStore {
	s := &GeneratorStore{label: label}
	s.IncreaseCapacity(n)
	return s
}

// IncreaseCapacity materializes generators up to target. Requests at or
// below the current capacity do nothing, so callers can always ask for
// "at least n".
func (s *GeneratorStore) IncreaseCapacity(target int) {
	if s.Capacity >= target {
		return
	}

	chainG := NewGeneratorsChain(familyLabel('G', s.label)).FastForward(s.Capacity)
	chainH := NewGeneratorsChain(familyLabel('H', s.label)).FastForward(s.Capacity)
	for i := s.Capacity; i < target; i++ {
		s.gVec = append(s.gVec, chainG.Next())
		s.hVec = append(s.hVec, chainH.Next())
	}
	s.Capacity = target
}

// G returns a read-only view of the first min(n, Capacity) G-family
// generators. Views never trigger growth; request capacity first if n
// may exceed it. Requests past the capacity truncate silently.
func (s *GeneratorStore) G(n int) *GensIter {
	return newGensIter(s.gVec, n)
}

// H is the H-family counterpart of G.
func (s *GeneratorStore) H(n int) *GensIter {
	return newGensIter(s.hVec, n)
}

func familyLabel(family byte, label []byte) []byte {
	out := make([]byte, 0, 1+len(label))
	out = append(out, family)
	return append(out, label...)
}

// GensIter walks a bounded prefix of one generator sequence. It
// captures the sequence at creation, so store growth that happens
// afterwards is not observed.
type GensIter struct {
	array  []*ristretto.Point
	n      int
	genIdx int
}

func newGensIter(array []*ristretto.Point, n int) *GensIter {
	if n > len(array) {
		n = len(array)
	}
	return &GensIter{array: array, n: n}
}

// Next returns the next generator, or nil once the view is exhausted.
func (g *GensIter) Next() *ristretto.Point {
	if g.genIdx >= g.n {
		return nil
	}
	cur := g.genIdx
	g.genIdx += 1
	return g.array[cur]
}

// Len reports how many generators remain in the view.
func (g *GensIter) Len() int {
	return g.n - g.genIdx
}

// Points drains the view into a slice.
func (g *GensIter) Points() []*ristretto.Point {
	points := make([]*ristretto.Point, 0, g.Len())
	for p := g.Next(); p != nil; p = g.Next() {
		points = append(points, p)
	}
	return points
}
