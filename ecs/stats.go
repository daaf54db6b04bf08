package ecs

// ArchetypeStats summarizes one archetype's storage.
type ArchetypeStats struct {
	Signature     uint64
	Types         []TypeId
	ChunkCount    int
	ChunkCapacity int
	RowCount      int
	RowStride     int
}

// WorldStats is a point-in-time snapshot of a world's storage shape.
type WorldStats struct {
	AliveEntities  uint64
	Epoch          uint64
	ArchetypeCount int
	TotalChunks    int
	TotalRows      int
	Archetypes     []ArchetypeStats
}

// CollectStats walks the archetype list and aggregates storage statistics.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		AliveEntities:  w.AliveCount(),
		Epoch:          w.CurrentEpoch(),
		ArchetypeCount: len(w.Archetypes()),
		Archetypes:     make([]ArchetypeStats, 0, len(w.Archetypes())),
	}

	for _, arch := range w.Archetypes() {
		as := ArchetypeStats{
			Signature:     arch.Signature().Hash,
			Types:         arch.Signature().Types,
			ChunkCount:    arch.ChunkCount(),
			ChunkCapacity: arch.CapacityForChunkBytes(w.chunkBytes),
			RowCount:      arch.EntityCount(),
			RowStride:     arch.RowStride(),
		}
		stats.TotalChunks += as.ChunkCount
		stats.TotalRows += as.RowCount
		stats.Archetypes = append(stats.Archetypes, as)
	}
	return stats
}
