package ecs

import (
	"reflect"
	"unsafe"

	"github.com/rotisserie/eris"
)

// TypeId is a process-stable 64-bit identity for a component type, derived
// from the type's fully-qualified name.
type TypeId uint64

// ComponentInfo captures the storage-relevant facts about a component type.
type ComponentInfo struct {
	ID          TypeId
	Size        uintptr
	Align       int
	BitCopyable bool
	Empty       bool
}

// ComponentPayload pairs a component value's storage description with a
// pointer to its bytes, for the dynamic insertion path.
type ComponentPayload struct {
	ID   TypeId
	Info ComponentInfo
	Data unsafe.Pointer
}

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

const (
	fnvOffsetBasis64 = 0xcbf29ce484222325
	fnvPrime64       = 0x100000001b3
)

func fnv1a64String(s string) uint64 {
	h := uint64(fnvOffsetBasis64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

func fnv1a64Uint64(v uint64) uint64 {
	h := uint64(fnvOffsetBasis64)
	for i := 0; i < 8; i++ {
		h ^= v >> (8 * i) & 0xff
		h *= fnvPrime64
	}
	return h
}

// Cached per-type identities and descriptions. The world is single-actor by
// contract, so plain maps suffice here just as they do for archetype storage.
var (
	typeIds   = make(map[reflect.Type]TypeId)
	typeInfos = make(map[reflect.Type]ComponentInfo)
)

// TypeIdFor returns the stable TypeId for component type T.
func TypeIdFor[T any]() TypeId {
	return typeIdOf(reflect.TypeFor[T]())
}

func typeIdOf(t reflect.Type) TypeId {
	if id, ok := typeIds[t]; ok {
		return id
	}
	id := TypeId(fnv1a64String(qualifiedName(t)))
	typeIds[t] = id
	return id
}

func qualifiedName(t reflect.Type) string {
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// Describe returns the ComponentInfo for component type T.
func Describe[T any]() ComponentInfo {
	return describeType(reflect.TypeFor[T]())
}

func describeType(t reflect.Type) ComponentInfo {
	if info, ok := typeInfos[t]; ok {
		return info
	}
	info := ComponentInfo{
		ID:          typeIdOf(t),
		Size:        t.Size(),
		Align:       t.Align(),
		BitCopyable: isBitCopyable(t),
		Empty:       t.Size() == 0,
	}
	typeInfos[t] = info
	return info
}

// isBitCopyable reports whether values of t can be duplicated with a plain
// memory copy. Anything that can reference memory outside the value itself
// disqualifies the type.
func isBitCopyable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isBitCopyable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isBitCopyable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// PayloadOf describes a component value for insertion. The value may be
// passed directly or as a pointer; either way Data points at the component's
// bytes. Panics for component types the storage cannot hold.
func PayloadOf(component any) ComponentPayload {
	t := reflect.TypeOf(component)
	if t == nil {
		panic(eris.Wrap(ErrMissingComponent, "nil component value"))
	}

	// The interface data word already points at the boxed value, or is the
	// pointer itself when a *T was passed.
	data := (*iface)(unsafe.Pointer(&component)).data
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	info := describeType(t)
	if !info.BitCopyable && !info.Empty {
		panic(eris.Wrapf(ErrNotBitCopyable, "component type %s", t.String()))
	}
	return ComponentPayload{ID: info.ID, Info: info, Data: data}
}
