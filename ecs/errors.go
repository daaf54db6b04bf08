package ecs

import "github.com/rotisserie/eris"

var (
	// ErrChunkFull signals an insertion past a chunk's capacity. This is an
	// internal invariant violation, never a recoverable condition.
	ErrChunkFull = eris.New("chunk full")

	// ErrMissingComponent signals a row insertion that supplied no value for
	// a non-empty column.
	ErrMissingComponent = eris.New("missing component value for column")

	// ErrUnknownComponent signals a column lookup for a type the archetype
	// does not contain.
	ErrUnknownComponent = eris.New("component not in archetype")

	// ErrNotBitCopyable signals a component type whose memory cannot be
	// duplicated with a plain copy (pointers, maps, slices, strings, ...).
	ErrNotBitCopyable = eris.New("component type is not bit-copyable")
)
