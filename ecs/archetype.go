package ecs

import (
	"unsafe"

	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
)

// Archetype owns the columnar storage for one component signature: the
// canonical ComponentInfo list, the derived column layouts and an ordered
// list of chunks. The last chunk is the insertion target.
type Archetype struct {
	signature  Signature
	components []ComponentInfo
	columns    []ColumnLayout
	chunks     []*Chunk
	colIndex   *intmap.Map[TypeId, int]
	rowStride  int
	chunkBytes int

	// Scratch buffer for per-column value pointers during insertion.
	valueScratch []unsafe.Pointer
}

// NewArchetype builds an archetype from a canonical signature and the
// matching ComponentInfo list (same order as signature.Types).
func NewArchetype(signature Signature, components []ComponentInfo, chunkBytes int) *Archetype {
	a := &Archetype{
		signature:  signature,
		components: components,
		columns:    make([]ColumnLayout, len(components)),
		colIndex:   intmap.New[TypeId, int](len(components)),
		chunkBytes: chunkBytes,
	}
	for i, info := range components {
		stride := 0
		if !info.Empty {
			stride = int(info.Size)
		}
		a.columns[i] = ColumnLayout{Info: info, Stride: stride}
		a.colIndex.Put(info.ID, i)
		a.rowStride += stride
	}
	return a
}

// Signature returns the archetype's canonical signature.
func (a *Archetype) Signature() Signature {
	return a.signature
}

// Components returns the canonical-order component descriptions.
func (a *Archetype) Components() []ComponentInfo {
	return a.components
}

// RowStride returns the summed byte size of all non-empty columns.
func (a *Archetype) RowStride() int {
	return a.rowStride
}

// ColumnIndexOf returns the column slot for a component type.
func (a *Archetype) ColumnIndexOf(id TypeId) (int, bool) {
	return a.colIndex.Get(id)
}

func (a *Archetype) mustColumnIndex(id TypeId) int {
	col, ok := a.colIndex.Get(id)
	if !ok {
		panic(eris.Wrapf(ErrUnknownComponent, "type id %#x", uint64(id)))
	}
	return col
}

// CapacityForChunkBytes returns how many rows fit in a chunk of the given
// byte budget, counting the per-row entity ID alongside the columns. Never
// less than 1 so oversized rows still make progress.
func (a *Archetype) CapacityForChunkBytes(chunkBytes int) int {
	stride := a.rowStride + int(unsafe.Sizeof(EntityId(0)))
	capacity := chunkBytes / stride
	if capacity == 0 {
		return 1
	}
	return capacity
}

func (a *Archetype) chunkWithRoom() *Chunk {
	if n := len(a.chunks); n == 0 || !a.chunks[n-1].HasRoom() {
		a.chunks = append(a.chunks, newChunk(a.columns, a.CapacityForChunkBytes(a.chunkBytes)))
	}
	return a.chunks[len(a.chunks)-1]
}

// ChunkCount returns the number of chunks allocated so far.
func (a *Archetype) ChunkCount() int {
	return len(a.chunks)
}

// ChunkAt returns the i-th chunk in creation order.
func (a *Archetype) ChunkAt(i int) *Chunk {
	return a.chunks[i]
}

// EntityCount returns the total number of rows across all chunks.
func (a *Archetype) EntityCount() int {
	total := 0
	for _, c := range a.chunks {
		total += c.Count()
	}
	return total
}

// Insert appends one row built from the payloads, stamping every column's
// added clock with the given epoch. Payloads are matched to columns by
// TypeId; a non-empty column with no matching payload is an error.
func (a *Archetype) Insert(id EntityId, epoch uint64, payloads []ComponentPayload) error {
	chunk := a.chunkWithRoom()

	a.valueScratch = a.valueScratch[:0]
	for _, col := range a.columns {
		if col.Stride == 0 {
			a.valueScratch = append(a.valueScratch, nil)
			continue
		}
		ptr := findPayload(payloads, col.Info.ID)
		if ptr == nil {
			return eris.Wrapf(ErrMissingComponent, "type id %#x", uint64(col.Info.ID))
		}
		a.valueScratch = append(a.valueScratch, ptr)
	}

	chunk.addRow(id, a.columns, a.valueScratch, epoch)
	return nil
}

func findPayload(payloads []ComponentPayload, id TypeId) unsafe.Pointer {
	for i := range payloads {
		if payloads[i].ID == id {
			return payloads[i].Data
		}
	}
	return nil
}
