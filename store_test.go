package generators

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorStoreScenario(t *testing.T) {
	assert := assert.New(t)

	s := NewGeneratorStore(nil, 0)
	assert.Equal(0, s.Capacity)
	assert.Equal(0, s.G(4).Len())

	s.IncreaseCapacity(4)
	g4 := s.G(4).Points()
	h4 := s.H(4).Points()
	assert.Len(g4, 4)
	assert.Len(h4, 4)

	seen := make(map[string]bool)
	for _, p := range append(g4, h4...) {
		seen[hex.EncodeToString(p.Bytes())] = true
	}
	assert.Len(seen, 8)

	s.IncreaseCapacity(8)
	again := s.G(4).Points()
	assert.Len(again, 4)
	for i := range g4 {
		assert.Equal(g4[i].Bytes(), again[i].Bytes())
	}

	g8 := s.G(8).Points()
	assert.Len(g8, 8)
	for i := range g4 {
		assert.Equal(g4[i].Bytes(), g8[i].Bytes())
	}
}

func TestGeneratorStorePrefixStability(t *testing.T) {
	assert := assert.New(t)

	grown := NewGeneratorStore([]byte("prefix"), 3)
	grown.IncreaseCapacity(9)

	oneShot := NewGeneratorStore([]byte("prefix"), 9)
	a, b := grown.G(9).Points(), oneShot.G(9).Points()
	for i := range a {
		assert.Equal(b[i].Bytes(), a[i].Bytes())
	}
	a, b = grown.H(9).Points(), oneShot.H(9).Points()
	for i := range a {
		assert.Equal(b[i].Bytes(), a[i].Bytes())
	}
}

func TestGeneratorStoreMonotonic(t *testing.T) {
	assert := assert.New(t)

	s := NewGeneratorStore([]byte("monotone"), 8)
	before := s.G(8).Points()

	s.IncreaseCapacity(4)
	s.IncreaseCapacity(8)
	s.IncreaseCapacity(0)
	assert.Equal(8, s.Capacity)

	after := s.G(8).Points()
	assert.Len(after, 8)
	for i := range before {
		assert.Equal(before[i].Bytes(), after[i].Bytes())
	}
}

func TestGeneratorStoreFamilyIndependence(t *testing.T) {
	assert := assert.New(t)

	s := NewGeneratorStore([]byte("families"), 32)
	g := s.G(32).Points()
	h := s.H(32).Points()
	for i := range g {
		assert.NotEqual(hex.EncodeToString(g[i].Bytes()), hex.EncodeToString(h[i].Bytes()))
	}
}

func TestGeneratorStoreTruncatedView(t *testing.T) {
	assert := assert.New(t)

	s := NewGeneratorStore(nil, 4)
	view := s.G(16)
	assert.Equal(4, view.Len())
	assert.Len(view.Points(), 4)
	assert.Nil(view.Next())
}

func TestGensIterSnapshot(t *testing.T) {
	assert := assert.New(t)

	s := NewGeneratorStore(nil, 2)
	view := s.G(8)
	s.IncreaseCapacity(8)
	assert.Equal(2, view.Len())
	assert.Len(view.Points(), 2)
}

func TestGensIterDrain(t *testing.T) {
	assert := assert.New(t)

	s := NewGeneratorStore(nil, 4)
	view := s.G(3)
	assert.Equal(3, view.Len())
	assert.NotNil(view.Next())
	assert.Equal(2, view.Len())
	assert.Len(view.Points(), 2)
	assert.Equal(0, view.Len())
	assert.Nil(view.Next())
}
