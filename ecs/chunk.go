package ecs

import (
	"unsafe"

	"github.com/rotisserie/eris"
)

// DefaultChunkBytes is the default byte budget for a single chunk.
const DefaultChunkBytes = 64 * 1024

// ColumnLayout describes one column slot of an archetype. Stride is the
// per-row byte count, 0 for empty tag components.
type ColumnLayout struct {
	Info   ComponentInfo
	Stride int
}

// Chunk is a fixed-capacity page of rows stored column-major. Each non-empty
// column owns a contiguous byte buffer of capacity*stride; tag columns hold
// no buffer but still occupy a column slot so version stamping covers them.
type Chunk struct {
	columns      [][]byte
	entities     []EntityId
	writeVersion []uint64
	addedVersion []uint64
	count        int
	capacity     int
}

func newChunk(columns []ColumnLayout, capacity int) *Chunk {
	c := &Chunk{
		columns:      make([][]byte, len(columns)),
		entities:     make([]EntityId, 0, capacity),
		writeVersion: make([]uint64, len(columns)),
		addedVersion: make([]uint64, len(columns)),
		capacity:     capacity,
	}
	for i, col := range columns {
		if col.Stride == 0 {
			continue
		}
		c.columns[i] = make([]byte, col.Stride*capacity)
	}
	return c
}

// addRow copies one value per non-empty column into row `count` and stamps
// the added clock of every column, tags included: added-ness is a property
// of the row projected onto each column.
func (c *Chunk) addRow(id EntityId, columns []ColumnLayout, values []unsafe.Pointer, epoch uint64) {
	row := c.count
	if row >= c.capacity {
		panic(eris.Wrap(ErrChunkFull, "insert past chunk capacity"))
	}

	c.entities = append(c.entities, id)
	for ci := range columns {
		if stride := columns[ci].Stride; stride != 0 {
			src := unsafe.Slice((*byte)(values[ci]), stride)
			copy(c.columns[ci][row*stride:(row+1)*stride], src)
		}
		c.addedVersion[ci] = epoch
	}
	c.count++
}

// Count returns the number of rows currently stored.
func (c *Chunk) Count() int {
	return c.count
}

// Capacity returns the maximum number of rows this chunk can hold.
func (c *Chunk) Capacity() int {
	return c.capacity
}

// HasRoom reports whether another row fits.
func (c *Chunk) HasRoom() bool {
	return c.count < c.capacity
}

// Entities returns the per-row entity IDs, parallel to the column arrays.
func (c *Chunk) Entities() []EntityId {
	return c.entities[:c.count]
}

// WriteVersion returns the last epoch at which a declared writer iterated
// this chunk for the given column. 0 means never.
func (c *Chunk) WriteVersion(col int) uint64 {
	return c.writeVersion[col]
}

// AddedVersion returns the last epoch at which a row was inserted into this
// chunk, as stamped on the given column. 0 means never.
func (c *Chunk) AddedVersion(col int) uint64 {
	return c.addedVersion[col]
}

func (c *Chunk) bumpWriteVersion(col int, epoch uint64) {
	c.writeVersion[col] = epoch
}

func (c *Chunk) columnPointer(col int) unsafe.Pointer {
	buf := c.columns[col]
	if buf == nil {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(buf))
}
