package ecs_test

import (
	"testing"
	"unsafe"

	"github.com/plus3/strata/ecs"
	"github.com/stretchr/testify/assert"
)

func TestTypeIdStability(t *testing.T) {
	a := ecs.TypeIdFor[Position]()
	b := ecs.TypeIdFor[Position]()
	assert.Equal(t, a, b)
}

func TestTypeIdDistinct(t *testing.T) {
	ids := map[ecs.TypeId]bool{
		ecs.TypeIdFor[Position]():  true,
		ecs.TypeIdFor[Velocity]():  true,
		ecs.TypeIdFor[Transform](): true,
		ecs.TypeIdFor[PlayerTag](): true,
		ecs.TypeIdFor[EnemyTag]():  true,
	}
	assert.Len(t, ids, 5)
}

func TestDescribeComponent(t *testing.T) {
	info := ecs.Describe[Position]()
	assert.Equal(t, ecs.TypeIdFor[Position](), info.ID)
	assert.Equal(t, unsafe.Sizeof(Position{}), info.Size)
	assert.True(t, info.BitCopyable)
	assert.False(t, info.Empty)
}

func TestDescribeTag(t *testing.T) {
	info := ecs.Describe[PlayerTag]()
	assert.Equal(t, uintptr(0), info.Size)
	assert.True(t, info.Empty)
}

func TestDescribeNonBitCopyable(t *testing.T) {
	info := ecs.Describe[Holder]()
	assert.False(t, info.BitCopyable)
}

func TestPayloadOfValueAndPointer(t *testing.T) {
	byValue := ecs.PayloadOf(Position{X: 1, Y: 2})
	byPointer := ecs.PayloadOf(&Position{X: 1, Y: 2})

	assert.Equal(t, ecs.TypeIdFor[Position](), byValue.ID)
	assert.Equal(t, byValue.ID, byPointer.ID)
	assert.Equal(t, byValue.Info, byPointer.Info)
}

func TestPayloadOfRejectsNonBitCopyable(t *testing.T) {
	assert.Panics(t, func() {
		ecs.PayloadOf(Holder{})
	})
}
