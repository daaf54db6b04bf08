package ecs

import (
	"slices"
	"unsafe"
)

type termKind uint8

const (
	termRead termKind = iota
	termWrite
	termOpt
	termWith
	termWithout
	termChanged
	termAdded
)

// Term is one element of a query's access declaration.
type Term struct {
	kind termKind
	id   TypeId
}

// Read declares read access to component T. The archetype must contain T.
func Read[T any]() Term { return Term{termRead, TypeIdFor[T]()} }

// Write declares write access to component T. Iterating a chunk under a
// Write term stamps that chunk's write clock whether or not the callback
// mutates the column; the declaration is the contract.
func Write[T any]() Term { return Term{termWrite, TypeIdFor[T]()} }

// Opt declares optional access to T: no matching constraint, and the view
// may be absent. Check HasColumn before reading.
func Opt[T any]() Term { return Term{termOpt, TypeIdFor[T]()} }

// With requires the archetype to contain T without providing a view.
func With[T any]() Term { return Term{termWith, TypeIdFor[T]()} }

// Without excludes archetypes containing T.
func Without[T any]() Term { return Term{termWithout, TypeIdFor[T]()} }

// Changed requires T and filters to chunks whose write clock for T equals
// the current epoch.
func Changed[T any]() Term { return Term{termChanged, TypeIdFor[T]()} }

// Added requires T and filters to chunks that received a row insertion
// during the current epoch.
func Added[T any]() Term { return Term{termAdded, TypeIdFor[T]()} }

// Query matches archetypes by signature containment and iterates their
// chunks under the declared access terms.
type Query struct {
	world    *World
	required []TypeId
	with     []TypeId
	without  []TypeId
	writes   []TypeId
	changed  []TypeId
	added    []TypeId
}

// NewQuery partitions the term list into the query's six sets. The sets
// are fixed before any chunk iteration.
func NewQuery(world *World, terms ...Term) *Query {
	q := &Query{world: world}
	for _, t := range terms {
		switch t.kind {
		case termRead:
			q.required = append(q.required, t.id)
		case termWrite:
			q.required = append(q.required, t.id)
			q.writes = append(q.writes, t.id)
		case termChanged:
			q.required = append(q.required, t.id)
			q.changed = append(q.changed, t.id)
		case termAdded:
			q.required = append(q.required, t.id)
			q.added = append(q.added, t.id)
		case termWith:
			q.with = append(q.with, t.id)
		case termWithout:
			q.without = append(q.without, t.id)
		case termOpt:
			// Optional terms do not constrain matching.
		}
	}
	sortUnique(&q.required)
	sortUnique(&q.with)
	sortUnique(&q.without)
	sortUnique(&q.writes)
	sortUnique(&q.changed)
	sortUnique(&q.added)
	return q
}

func sortUnique(ids *[]TypeId) {
	slices.Sort(*ids)
	*ids = slices.Compact(*ids)
}

// Matches reports whether the archetype satisfies required∪with ⊆ types and
// without ∩ types = ∅.
func (q *Query) Matches(arch *Archetype) bool {
	sig := arch.Signature()
	for _, id := range q.required {
		if !sig.Contains(id) {
			return false
		}
	}
	for _, id := range q.with {
		if !sig.Contains(id) {
			return false
		}
	}
	for _, id := range q.without {
		if sig.Contains(id) {
			return false
		}
	}
	return true
}

// ForChunks iterates every matched, filter-passing chunk in a single pass:
// archetypes in world creation order, chunks in creation order, empty
// chunks skipped. Write clocks for all Write terms are stamped before the
// callback runs. The callback must not mutate archetype structure; route
// structural changes through a Commands buffer.
func (q *Query) ForChunks(fn func(ChunkView)) {
	epoch := q.world.CurrentEpoch()
	for _, arch := range q.world.Archetypes() {
		if !q.Matches(arch) {
			continue
		}
		for i := 0; i < arch.ChunkCount(); i++ {
			chunk := arch.ChunkAt(i)
			if chunk.Count() == 0 {
				continue
			}
			if !q.passesChangeFilters(arch, chunk, epoch) {
				continue
			}
			for _, id := range q.writes {
				chunk.bumpWriteVersion(arch.mustColumnIndex(id), epoch)
			}
			fn(ChunkView{archetype: arch, chunk: chunk, begin: 0, end: chunk.Count()})
		}
	}
}

// Count returns the total number of rows in matched, filter-passing chunks.
// Unlike ForChunks it never stamps write clocks.
func (q *Query) Count() int {
	epoch := q.world.CurrentEpoch()
	total := 0
	for _, arch := range q.world.Archetypes() {
		if !q.Matches(arch) {
			continue
		}
		for i := 0; i < arch.ChunkCount(); i++ {
			chunk := arch.ChunkAt(i)
			if chunk.Count() == 0 || !q.passesChangeFilters(arch, chunk, epoch) {
				continue
			}
			total += chunk.Count()
		}
	}
	return total
}

func (q *Query) passesChangeFilters(arch *Archetype, chunk *Chunk, epoch uint64) bool {
	for _, id := range q.changed {
		if chunk.WriteVersion(arch.mustColumnIndex(id)) != epoch {
			return false
		}
	}
	for _, id := range q.added {
		if chunk.AddedVersion(arch.mustColumnIndex(id)) != epoch {
			return false
		}
	}
	return true
}

// ChunkView is a transient, non-owning view over one chunk, valid only for
// the duration of a single callback invocation. Indices [Begin, End) are
// valid for every column of the archetype.
type ChunkView struct {
	archetype *Archetype
	chunk     *Chunk
	begin     int
	end       int
}

// Begin returns the first valid row index (always 0 in this core).
func (v ChunkView) Begin() int { return v.begin }

// End returns one past the last valid row index.
func (v ChunkView) End() int { return v.end }

// Len returns the number of rows in the view.
func (v ChunkView) Len() int { return v.end - v.begin }

// Entities returns the per-row entity IDs. Rows of despawned entities stay
// in place; cross-check World.IsAlive when that matters.
func (v ChunkView) Entities() []EntityId {
	return v.chunk.Entities()
}

// Archetype returns the archetype this view iterates.
func (v ChunkView) Archetype() *Archetype {
	return v.archetype
}

// HasColumn reports whether the view's archetype stores component T. Use it
// to guard column access for Opt terms.
func HasColumn[T any](v ChunkView) bool {
	_, ok := v.archetype.ColumnIndexOf(TypeIdFor[T]())
	return ok
}

// ReadColumn returns the chunk's column for T as a typed slice of length
// End(). Returns nil for empty tag components, which hold no storage.
// Panics if the archetype does not contain T.
func ReadColumn[T any](v ChunkView) []T {
	return column[T](v)
}

// WriteColumn returns the mutable column for T. The caller must not hold a
// ReadColumn and a WriteColumn over the same column at once; both are thin
// projections over the same buffer.
func WriteColumn[T any](v ChunkView) []T {
	return column[T](v)
}

func column[T any](v ChunkView) []T {
	col := v.archetype.mustColumnIndex(TypeIdFor[T]())
	ptr := v.chunk.columnPointer(col)
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*T)(ptr), v.end)
}
