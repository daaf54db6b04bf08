package ecs_test

import (
	"testing"

	"github.com/plus3/strata/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSignaturePermutationsEqual(t *testing.T) {
	c1 := ecs.TypeIdFor[Position]()
	c2 := ecs.TypeIdFor[Velocity]()
	tag := ecs.TypeIdFor[PlayerTag]()

	a := ecs.SignatureFromUnordered([]ecs.TypeId{c2, c1, tag})
	b := ecs.SignatureFromUnordered([]ecs.TypeId{tag, c1, c2})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Types, b.Types)
}

func TestSignatureDeduplicates(t *testing.T) {
	c1 := ecs.TypeIdFor[Position]()
	c2 := ecs.TypeIdFor[Velocity]()

	sig := ecs.SignatureFromUnordered([]ecs.TypeId{c1, c2, c1, c1})
	assert.Len(t, sig.Types, 2)
	assert.True(t, sig.Equal(ecs.SignatureFromUnordered([]ecs.TypeId{c2, c1})))
}

func TestSignatureSortedAscending(t *testing.T) {
	sig := ecs.SignatureFromUnordered([]ecs.TypeId{
		ecs.TypeIdFor[Transform](),
		ecs.TypeIdFor[Position](),
		ecs.TypeIdFor[Velocity](),
	})

	for i := 1; i < len(sig.Types); i++ {
		assert.Less(t, sig.Types[i-1], sig.Types[i])
	}
}

func TestSignatureContains(t *testing.T) {
	sig := ecs.SignatureFromUnordered([]ecs.TypeId{
		ecs.TypeIdFor[Position](),
		ecs.TypeIdFor[Velocity](),
	})

	assert.True(t, sig.Contains(ecs.TypeIdFor[Position]()))
	assert.False(t, sig.Contains(ecs.TypeIdFor[PlayerTag]()))
}

func TestSignatureInequality(t *testing.T) {
	a := ecs.SignatureFromUnordered([]ecs.TypeId{ecs.TypeIdFor[Position]()})
	b := ecs.SignatureFromUnordered([]ecs.TypeId{ecs.TypeIdFor[Velocity]()})
	assert.False(t, a.Equal(b))
}

func TestSignatureHashCollisionTolerance(t *testing.T) {
	// Forged colliding signatures with different type lists must still be
	// told apart by the elementwise comparison.
	a := ecs.Signature{Types: []ecs.TypeId{1, 2}, Hash: 0xdead}
	b := ecs.Signature{Types: []ecs.TypeId{1, 3}, Hash: 0xdead}
	assert.False(t, a.Equal(b))
}

func TestSignatureEmpty(t *testing.T) {
	sig := ecs.SignatureFromUnordered(nil)
	assert.Empty(t, sig.Types)
	assert.Equal(t, sig.Hash, ecs.SignatureFromUnordered([]ecs.TypeId{}).Hash)
}
