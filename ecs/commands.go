package ecs

import "slices"

// Commands buffers structural operations during system execution and
// replays them against a world at a flush barrier. Replay preserves enqueue
// order across all operation kinds.
type Commands struct {
	ops []func(*World)
}

// NewCommands returns an empty command buffer. The zero value is also ready
// to use.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn enqueues a deferred spawn. Component values are captured at enqueue
// time; components passed as pointers alias the caller's memory until the
// flush.
func (c *Commands) Spawn(components ...any) {
	captured := slices.Clone(components)
	c.ops = append(c.ops, func(w *World) {
		w.Spawn(captured...)
	})
}

// Despawn enqueues a deferred despawn.
func (c *Commands) Despawn(id EntityId) {
	c.ops = append(c.ops, func(w *World) {
		w.Despawn(id)
	})
}

// Defer enqueues an arbitrary function, sequenced with the structural ops.
func (c *Commands) Defer(fn func()) {
	c.ops = append(c.ops, func(*World) {
		fn()
	})
}

// Flush replays all enqueued operations in FIFO order and clears the buffer.
func (c *Commands) Flush(w *World) {
	for _, op := range c.ops {
		op(w)
	}
	c.ops = c.ops[:0]
}

// Size returns the number of pending operations.
func (c *Commands) Size() int {
	return len(c.ops)
}

// Clear discards all pending operations without replaying them.
func (c *Commands) Clear() {
	c.ops = c.ops[:0]
}
