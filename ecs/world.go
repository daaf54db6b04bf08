package ecs

import (
	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"
)

// World owns the entity allocator, the archetype vector, the signature index
// and the epoch counter. A world is owned by one logical actor at a time;
// none of its operations are safe for concurrent use.
type World struct {
	entities   EntityAllocator
	archetypes []*Archetype

	// Signature hash to archetype indices. Buckets hold more than one entry
	// only when two distinct signatures collide on their 64-bit hash.
	archIndex *intmap.Map[uint64, []uint32]

	epoch      uint64
	chunkBytes int
	log        zerolog.Logger
}

// NewWorld creates a world with the default chunk byte budget.
func NewWorld() *World {
	return NewWorldWithConfig(DefaultWorldConfig())
}

// NewWorldWithConfig creates a world with an explicit configuration.
func NewWorldWithConfig(cfg WorldConfig) *World {
	chunkBytes := cfg.ChunkBytes
	if chunkBytes <= 0 {
		chunkBytes = DefaultChunkBytes
	}
	return &World{
		archIndex:  intmap.New[uint64, []uint32](64),
		epoch:      1,
		chunkBytes: chunkBytes,
		log:        zerolog.Nop(),
	}
}

// SetLogger installs a structured logger. The default logger discards
// everything.
func (w *World) SetLogger(log zerolog.Logger) {
	w.log = log
}

// CurrentEpoch returns the world epoch. Epoch 0 is the sentinel "never";
// the counter starts at 1.
func (w *World) CurrentEpoch() uint64 {
	return w.epoch
}

// NextEpoch advances the epoch counter. No other state changes.
func (w *World) NextEpoch() {
	w.epoch++
}

// Spawn creates an entity. With no components only the allocator is
// touched; otherwise the component set is canonicalized, the archetype is
// resolved or created, and a row is inserted at the current epoch.
//
// Components may be passed by value or as pointers. Spawning with a value
// missing for a required column, or with a type the storage cannot hold,
// panics: both are programmer errors at the call site.
func (w *World) Spawn(components ...any) EntityId {
	id := w.entities.Create()
	if len(components) == 0 {
		return id
	}

	payloads := make([]ComponentPayload, len(components))
	types := make([]TypeId, len(components))
	for i, comp := range components {
		payloads[i] = PayloadOf(comp)
		types[i] = payloads[i].ID
	}

	arch := w.getOrCreateArchetype(SignatureFromUnordered(types), payloads)
	if err := arch.Insert(id, w.epoch, payloads); err != nil {
		panic(err)
	}
	return id
}

// Despawn retires the entity ID. The row is intentionally left in its chunk:
// queries keep iterating it, and consumers that care must cross-check
// IsAlive against the per-row entity IDs.
func (w *World) Despawn(id EntityId) {
	w.entities.Destroy(id)
}

// IsAlive reports whether the ID refers to a live entity.
func (w *World) IsAlive(id EntityId) bool {
	return w.entities.IsAlive(id)
}

// AliveCount returns the number of live entities.
func (w *World) AliveCount() uint64 {
	return w.entities.AliveCount()
}

// Clear resets the entity allocator. Archetype storage is not freed.
func (w *World) Clear() {
	w.entities.Clear()
}

// Archetypes exposes the archetype list, in creation order, to the query
// engine. Callers must not mutate it.
func (w *World) Archetypes() []*Archetype {
	return w.archetypes
}

// ArchetypeFor returns the archetype holding exactly the given component
// set, or nil if no entity with that signature has been spawned.
func (w *World) ArchetypeFor(types ...TypeId) *Archetype {
	return w.lookupArchetype(SignatureFromUnordered(types))
}

// ChunkCountFor returns how many chunks the archetype for the given
// component set has allocated. Debug helper.
func (w *World) ChunkCountFor(types ...TypeId) int {
	if arch := w.ArchetypeFor(types...); arch != nil {
		return arch.ChunkCount()
	}
	return 0
}

// ChunkCapacityFor returns the per-chunk row capacity for the given
// component set under the world's chunk byte budget. Debug helper.
func (w *World) ChunkCapacityFor(types ...TypeId) int {
	if arch := w.ArchetypeFor(types...); arch != nil {
		return arch.CapacityForChunkBytes(w.chunkBytes)
	}
	return 0
}

func (w *World) lookupArchetype(sig Signature) *Archetype {
	bucket, ok := w.archIndex.Get(sig.Hash)
	if !ok {
		return nil
	}
	for _, idx := range bucket {
		if w.archetypes[idx].Signature().Equal(sig) {
			return w.archetypes[idx]
		}
	}
	return nil
}

func (w *World) getOrCreateArchetype(sig Signature, payloads []ComponentPayload) *Archetype {
	if arch := w.lookupArchetype(sig); arch != nil {
		return arch
	}

	// Build the ComponentInfo list in canonical (signature) order from the
	// payload pack. Duplicated components resolve to their first payload.
	infos := make([]ComponentInfo, len(sig.Types))
	for i, id := range sig.Types {
		for _, p := range payloads {
			if p.ID == id {
				infos[i] = p.Info
				break
			}
		}
	}

	arch := NewArchetype(sig, infos, w.chunkBytes)
	index := uint32(len(w.archetypes))
	w.archetypes = append(w.archetypes, arch)

	bucket, _ := w.archIndex.Get(sig.Hash)
	w.archIndex.Put(sig.Hash, append(bucket, index))

	w.log.Debug().
		Uint64("signature", sig.Hash).
		Int("components", len(sig.Types)).
		Uint32("index", index).
		Msg("archetype created")
	return arch
}
