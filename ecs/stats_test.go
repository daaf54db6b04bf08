package ecs_test

import (
	"testing"

	"github.com/plus3/strata/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStatsEmptyWorld(t *testing.T) {
	world := ecs.NewWorld()

	stats := world.CollectStats()
	assert.Equal(t, uint64(0), stats.AliveEntities)
	assert.Equal(t, 0, stats.ArchetypeCount)
	assert.Equal(t, 0, stats.TotalRows)
}

func TestCollectStats(t *testing.T) {
	world := ecs.NewWorldWithConfig(ecs.WorldConfig{ChunkBytes: 40})

	for i := 0; i < 5; i++ {
		world.Spawn(Transform{})
	}
	world.Spawn(Transform{}, Velocity{})
	world.Spawn() // componentless entities count as alive but hold no row

	stats := world.CollectStats()
	assert.Equal(t, uint64(7), stats.AliveEntities)
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 6, stats.TotalRows)
	assert.Equal(t, 4, stats.TotalChunks)

	require.Len(t, stats.Archetypes, 2)
	first := stats.Archetypes[0]
	assert.Equal(t, 5, first.RowCount)
	assert.Equal(t, 3, first.ChunkCount)
	assert.Equal(t, 2, first.ChunkCapacity)
	assert.Equal(t, 12, first.RowStride)
}
