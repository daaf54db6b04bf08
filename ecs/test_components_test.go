package ecs_test

// Shared component types for the package tests.

type Position struct {
	X, Y float32
}

type Velocity struct {
	VX, VY, VZ float32
}

type Transform struct {
	X, Y, Z float32
}

type Health struct {
	Current, Max float32
}

type PlayerTag struct{}

type EnemyTag struct{}

type Holder struct {
	Ref *int
}
