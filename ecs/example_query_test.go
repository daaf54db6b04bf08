package ecs_test

import (
	"fmt"

	"github.com/plus3/strata/ecs"
)

func ExampleQuery_ForChunks() {
	world := ecs.NewWorld()
	for i := 0; i < 4; i++ {
		world.Spawn(Transform{X: float32(i)}, Velocity{VX: 1})
	}

	dt := float32(1.0)
	move := ecs.NewQuery(world, ecs.Write[Transform](), ecs.Read[Velocity]())
	move.ForChunks(func(view ecs.ChunkView) {
		transforms := ecs.WriteColumn[Transform](view)
		velocities := ecs.ReadColumn[Velocity](view)
		for i := view.Begin(); i < view.End(); i++ {
			transforms[i].X += velocities[i].VX * dt
		}
	})

	read := ecs.NewQuery(world, ecs.Read[Transform]())
	read.ForChunks(func(view ecs.ChunkView) {
		for _, tr := range ecs.ReadColumn[Transform](view) {
			fmt.Println(tr.X)
		}
	})
	// Output:
	// 1
	// 2
	// 3
	// 4
}

func ExampleQuery_Count() {
	world := ecs.NewWorld()
	world.Spawn(PlayerTag{})
	world.Spawn(PlayerTag{})

	added := ecs.NewQuery(world, ecs.Added[PlayerTag]())
	fmt.Println(added.Count())

	world.NextEpoch()
	fmt.Println(added.Count())
	// Output:
	// 2
	// 0
}
