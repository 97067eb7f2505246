package datastruct

import "iter"

// KVS stands for Key Value Store, and a common interface for hash table like types.
type KVS[K comparable, V any] interface {
	// Put stores the value under the key.
	// When the key was already present, the previous value is returned with true.
	Put(key K, val V) (V, bool)
	Lookup(key K) (V, bool)
	Get(key K) V
	Remove(key K) (V, bool)
	Contains(key K) bool
	Keys() []K
	ToMap() map[K]V
	Iter() iter.Seq2[K, V]
	Sizer
}

type Sizer interface {
	Len() int
}

// Hasher is the method set a key type needs to be stored in a HashTable.
// Hash must be deterministic, and equal keys must produce equal hashes.
type Hasher interface {
	Hash() uint64
}

// Hashable is the key constraint of HashTable.
// Key equality is the == operator, and the zero value of the type is the sentinel key.
type Hashable interface {
	comparable
	Hasher
}

// Pair is a key and value association.
// The Key of a Pair in a HashTable never changes, only its Value.
type Pair[K, V any] struct {
	Key   K
	Value V
}
