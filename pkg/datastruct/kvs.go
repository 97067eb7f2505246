package datastruct

import "iter"

// Map is a KVS on top of the built-in map type.
// It serves as the reference implementation when comparing KVS behaviour.
type Map[K comparable, V any] map[K]V

var _ KVS[any, any] = (Map[any, any])(nil)

func (m Map[K, V]) Put(key K, val V) (V, bool) {
	prev, ok := m[key]
	m[key] = val
	return prev, ok
}

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Contains(key K) bool {
	_, ok := m[key]
	return ok
}

func (m Map[K, V]) Remove(key K) (V, bool) {
	val, ok := m[key]
	delete(m, key)
	return val, ok
}

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (m Map[K, V]) ToMap() map[K]V {
	return m
}

func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// MapAdd puts the value under the key and returns a function that restores the previous state.
func MapAdd[K comparable, V any, Map KVS[K, V]](m Map, k K, v V) func() {
	og, ok := m.Put(k, v)
	return func() {
		if ok {
			m.Put(k, og)
		} else {
			m.Remove(k)
		}
	}
}
