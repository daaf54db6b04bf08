package ecs_test

import (
	"testing"

	"github.com/plus3/strata/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	world := ecs.NewWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{VX: 0.5})
	}
}

func BenchmarkSpawnWithMultipleComponents(b *testing.B) {
	world := ecs.NewWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Spawn(
			Position{X: 1.0, Y: 2.0},
			Velocity{VX: 0.5},
			Health{Current: 100, Max: 100},
			PlayerTag{},
		)
	}
}

func BenchmarkDespawn(b *testing.B) {
	world := ecs.NewWorld()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = world.Spawn(Position{X: 1.0, Y: 2.0})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Despawn(ids[i])
	}
}

func BenchmarkQueryIteration(b *testing.B) {
	world := ecs.NewWorld()
	for i := 0; i < 10000; i++ {
		world.Spawn(Transform{X: float32(i)}, Velocity{VX: 1})
	}

	query := ecs.NewQuery(world, ecs.Write[Transform](), ecs.Read[Velocity]())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		query.ForChunks(func(view ecs.ChunkView) {
			transforms := ecs.WriteColumn[Transform](view)
			velocities := ecs.ReadColumn[Velocity](view)
			for j := view.Begin(); j < view.End(); j++ {
				transforms[j].X += velocities[j].VX
			}
		})
	}
}

func BenchmarkQueryMatchingManyArchetypes(b *testing.B) {
	world := ecs.NewWorld()
	world.Spawn(Transform{})
	world.Spawn(Transform{}, Velocity{})
	world.Spawn(Transform{}, Velocity{}, Health{})
	world.Spawn(Transform{}, PlayerTag{})
	world.Spawn(Transform{}, EnemyTag{})

	query := ecs.NewQuery(world, ecs.Read[Transform](), ecs.Without[EnemyTag]())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = query.Count()
	}
}

func BenchmarkSchedulerRun(b *testing.B) {
	world := ecs.NewWorld()
	for i := 0; i < 1000; i++ {
		world.Spawn(Transform{}, Velocity{VX: 1})
	}

	sched := ecs.NewScheduler()
	move := ecs.NewQuery(world, ecs.Write[Transform](), ecs.Read[Velocity]())
	sched.Register(ecs.MakeSystem("Move", func(w *ecs.World, _ *ecs.Commands) {
		move.ForChunks(func(view ecs.ChunkView) {
			transforms := ecs.WriteColumn[Transform](view)
			velocities := ecs.ReadColumn[Velocity](view)
			for j := view.Begin(); j < view.End(); j++ {
				transforms[j].X += velocities[j].VX
			}
		})
	}, ecs.Write[Transform](), ecs.Read[Velocity]()))
	sched.Build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sched.Run(world)
	}
}
