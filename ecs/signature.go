package ecs

import "slices"

// Signature is the canonical identity of an archetype: its component TypeIds
// sorted ascending with duplicates removed, plus a combined 64-bit hash.
type Signature struct {
	Types []TypeId
	Hash  uint64
}

// SignatureFromUnordered canonicalizes an arbitrary multiset of TypeIds.
// Any permutation of the same set produces an identical signature and hash.
func SignatureFromUnordered(types []TypeId) Signature {
	sorted := slices.Clone(types)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	h := uint64(fnvOffsetBasis64)
	for _, t := range sorted {
		v := fnv1a64Uint64(uint64(t))
		h ^= v + 0x9e3779b97f4a7c15 + h<<6 + h>>2
	}
	return Signature{Types: sorted, Hash: h}
}

// Equal reports elementwise equality. The hash is only a fast reject, so
// colliding signatures are still told apart.
func (s Signature) Equal(other Signature) bool {
	if s.Hash != other.Hash {
		return false
	}
	return slices.Equal(s.Types, other.Types)
}

// Contains reports whether the signature includes the given type.
func (s Signature) Contains(id TypeId) bool {
	_, ok := slices.BinarySearch(s.Types, id)
	return ok
}
