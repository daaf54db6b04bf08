package ecs_test

import (
	"fmt"

	"github.com/plus3/strata/ecs"
)

func ExampleScheduler_Run() {
	world := ecs.NewWorld()
	sched := ecs.NewScheduler()

	sched.Register(ecs.MakeSystem("Spawner", func(_ *ecs.World, commands *ecs.Commands) {
		for i := 0; i < 10; i++ {
			commands.Spawn(PlayerTag{})
		}
	}, ecs.Write[PlayerTag]()))

	sched.Register(ecs.MakeSystem("Counter", func(w *ecs.World, _ *ecs.Commands) {
		count := ecs.NewQuery(w, ecs.Read[PlayerTag]()).Count()
		fmt.Println("PlayerTag count:", count)
	}, ecs.Read[PlayerTag]()))

	sched.Build()
	sched.Run(world)
	// Output:
	// PlayerTag count: 10
}
