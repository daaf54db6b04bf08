package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/strata/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSystemInfersAccess(t *testing.T) {
	desc := ecs.MakeSystem("Move", func(*ecs.World, *ecs.Commands) {},
		ecs.Write[Transform](),
		ecs.Read[Velocity](),
		ecs.With[PlayerTag](),
		ecs.Changed[Health](),
	)

	assert.Equal(t, "Move", desc.Name)
	assert.Equal(t, []ecs.TypeId{ecs.TypeIdFor[Transform]()}, desc.Writes)
	assert.Equal(t, []ecs.TypeId{ecs.TypeIdFor[Velocity]()}, desc.Reads)
}

func TestSchedulerWriterBeforeReader(t *testing.T) {
	sched := ecs.NewScheduler()

	writer := sched.Register(ecs.MakeSystem("S1", func(*ecs.World, *ecs.Commands) {},
		ecs.Write[Transform]()))
	reader := sched.Register(ecs.MakeSystem("S2", func(*ecs.World, *ecs.Commands) {},
		ecs.Read[Transform]()))
	sched.Build()

	require.Equal(t, 2, sched.StageCount())
	assert.Equal(t, []uint32{writer}, sched.StageAt(0))
	assert.Equal(t, []uint32{reader}, sched.StageAt(1))
}

func TestSchedulerRunOrder(t *testing.T) {
	world := ecs.NewWorld()
	sched := ecs.NewScheduler()

	var order []string
	sched.Register(ecs.MakeSystem("Reader", func(*ecs.World, *ecs.Commands) {
		order = append(order, "reader")
	}, ecs.Read[Transform]()))
	sched.Register(ecs.MakeSystem("Writer", func(*ecs.World, *ecs.Commands) {
		order = append(order, "writer")
	}, ecs.Write[Transform]()))
	sched.Build()
	sched.Run(world)

	// The writer precedes the reader regardless of registration order.
	assert.Equal(t, []string{"writer", "reader"}, order)
}

func TestSchedulerIndependentSystemsShareStage(t *testing.T) {
	sched := ecs.NewScheduler()

	a := sched.Register(ecs.MakeSystem("A", func(*ecs.World, *ecs.Commands) {},
		ecs.Write[Transform]()))
	b := sched.Register(ecs.MakeSystem("B", func(*ecs.World, *ecs.Commands) {},
		ecs.Write[Velocity]()))
	sched.Build()

	require.Equal(t, 1, sched.StageCount())
	assert.Equal(t, []uint32{a, b}, sched.StageAt(0))
}

func TestSchedulerCycleCollapsesToSerialStage(t *testing.T) {
	sched := ecs.NewScheduler()

	a := sched.Register(ecs.MakeSystem("A", func(*ecs.World, *ecs.Commands) {},
		ecs.Write[Transform]()))
	b := sched.Register(ecs.MakeSystem("B", func(*ecs.World, *ecs.Commands) {},
		ecs.Write[Transform]()))
	sched.Build()

	// Mutual write-write conflict has no topological order; both land in a
	// final serial stage in registration order.
	require.Equal(t, 1, sched.StageCount())
	assert.Equal(t, []uint32{a, b}, sched.StageAt(0))
}

func TestSchedulerCommandBarrier(t *testing.T) {
	world := ecs.NewWorld()
	sched := ecs.NewScheduler()

	sched.Register(ecs.MakeSystem("Spawner", func(w *ecs.World, commands *ecs.Commands) {
		for i := 0; i < 10; i++ {
			commands.Spawn(PlayerTag{})
		}
	}, ecs.Write[PlayerTag]()))

	var observed int
	sched.Register(ecs.MakeSystem("Counter", func(w *ecs.World, _ *ecs.Commands) {
		observed = ecs.NewQuery(w, ecs.Read[PlayerTag]()).Count()
	}, ecs.Read[PlayerTag]()))

	sched.Build()
	require.Equal(t, 2, sched.StageCount())
	sched.Run(world)

	assert.Equal(t, 10, observed)
	assert.Equal(t, uint64(10), world.AliveCount())
}

func TestSchedulerStats(t *testing.T) {
	world := ecs.NewWorld()
	sched := ecs.NewScheduler()

	sched.Register(ecs.MakeSystem("Noop", func(*ecs.World, *ecs.Commands) {}))
	sched.Build()

	sched.Run(world)
	sched.Run(world)
	sched.Run(world)

	stats := sched.Stats()
	require.Len(t, stats.Systems, 1)
	assert.Equal(t, "Noop", stats.Systems[0].Name)
	assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	assert.Equal(t, int64(3), stats.TotalExecutions)
	assert.GreaterOrEqual(t, stats.Systems[0].MaxDuration, stats.Systems[0].MinDuration)
}

func TestSchedulerRunLoop(t *testing.T) {
	world := ecs.NewWorld()
	sched := ecs.NewScheduler()

	ctx, cancel := context.WithCancel(context.Background())
	executions := 0
	sched.Register(ecs.MakeSystem("Ticker", func(*ecs.World, *ecs.Commands) {
		executions++
		if executions >= 3 {
			cancel()
		}
	}))
	sched.Build()

	done := make(chan struct{})
	go func() {
		sched.RunLoop(ctx, world, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunLoop did not stop after context cancellation")
	}
	assert.GreaterOrEqual(t, executions, 3)
}

func TestSchedulerSystemNames(t *testing.T) {
	sched := ecs.NewScheduler()
	sched.Register(ecs.MakeSystem("First", func(*ecs.World, *ecs.Commands) {}))
	sched.Register(ecs.MakeSystem("Second", func(*ecs.World, *ecs.Commands) {}))

	assert.Equal(t, []string{"First", "Second"}, sched.SystemNames())
}
