package ecs

// EntityId encodes a generation (upper 16 bits) and a slot index (lower 48 bits).
type EntityId uint64

const (
	entityIndexBits = 48
	entityIndexMask = (uint64(1) << entityIndexBits) - 1
	entityGenMask   = (uint64(1) << 16) - 1
)

// NullEntityId is the reserved null identity: index 0, generation 0.
const NullEntityId EntityId = 0

// NewEntityId creates an EntityId from a slot index and a generation.
func NewEntityId(index uint64, generation uint16) EntityId {
	return EntityId(uint64(generation)<<entityIndexBits | index&entityIndexMask)
}

// Index extracts the slot index from the entity ID.
func (e EntityId) Index() uint64 {
	return uint64(e) & entityIndexMask
}

// Generation extracts the generation from the entity ID.
func (e EntityId) Generation() uint16 {
	return uint16(uint64(e) >> entityIndexBits & entityGenMask)
}

// IsNull reports whether this is the reserved null identity.
func (e EntityId) IsNull() bool {
	return e == NullEntityId
}

// EntityAllocator issues generational entity IDs from a LIFO free list.
// Destroy bumps the slot's generation so stale IDs answer false to IsAlive
// even after the slot has been recycled.
type EntityAllocator struct {
	generations []uint16
	freeList    []uint64
	aliveCount  uint64
}

// Create returns a fresh entity ID, recycling a freed slot when one exists.
// The returned ID is never the null identity: generations start at 1.
func (a *EntityAllocator) Create() EntityId {
	if n := len(a.freeList); n > 0 {
		index := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.aliveCount++
		return NewEntityId(index, a.generations[index])
	}

	index := uint64(len(a.generations))
	a.generations = append(a.generations, 1)
	a.aliveCount++
	return NewEntityId(index, 1)
}

// Destroy retires an entity ID. Null, out-of-range and stale IDs are ignored,
// making double-destroy idempotent.
func (a *EntityAllocator) Destroy(id EntityId) {
	if id.IsNull() {
		return
	}
	index := id.Index()
	if index >= uint64(len(a.generations)) {
		return
	}
	if a.generations[index] != id.Generation() {
		return
	}

	a.generations[index]++ // wraps mod 2^16
	a.freeList = append(a.freeList, index)
	if a.aliveCount > 0 {
		a.aliveCount--
	}
}

// IsAlive reports whether the ID refers to a currently live entity.
func (a *EntityAllocator) IsAlive(id EntityId) bool {
	if id.IsNull() {
		return false
	}
	index := id.Index()
	if index >= uint64(len(a.generations)) {
		return false
	}
	return a.generations[index] == id.Generation()
}

// AliveCount returns the number of live entities.
func (a *EntityAllocator) AliveCount() uint64 {
	return a.aliveCount
}

// GenerationAt returns the current generation stored for a slot index,
// or 0 for out-of-range indices.
func (a *EntityAllocator) GenerationAt(index uint64) uint16 {
	if index >= uint64(len(a.generations)) {
		return 0
	}
	return a.generations[index]
}

// Clear forgets all issued IDs and recycled slots.
func (a *EntityAllocator) Clear() {
	a.generations = a.generations[:0]
	a.freeList = a.freeList[:0]
	a.aliveCount = 0
}
