package datastruct

import "iter"

// MakeSet returns a Set holding the given values.
func MakeSet[T Hashable](vs ...T) Set[T] {
	var set Set[T]
	for _, v := range vs {
		set.Add(v)
	}
	return set
}

// Set is an unordered set backed by a HashTable.
// The zero value is an empty set.
//
// Copies of a non-empty Set share their elements, the same way copies of a map do.
type Set[T Hashable] struct {
	vs *HashTable[T, struct{}]
}

// Add inserts the value and reports whether it was new to the set.
func (s *Set[T]) Add(v T) bool {
	if s.vs == nil {
		s.vs = &HashTable[T, struct{}]{}
	}
	_, existed := s.vs.Put(v, struct{}{})
	return !existed
}

func (s Set[T]) Has(v T) bool {
	return s.vs != nil && s.vs.Contains(v)
}

// Remove deletes the value and reports whether it was present.
func (s Set[T]) Remove(v T) bool {
	if s.vs == nil {
		return false
	}
	_, ok := s.vs.Remove(v)
	return ok
}

func (s Set[T]) Len() int {
	if s.vs == nil {
		return 0
	}
	return s.vs.Len()
}

func (s Set[T]) ToSlice() []T {
	if s.vs == nil {
		return nil
	}
	return s.vs.Keys()
}

func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.vs == nil {
			return
		}
		for v := range s.vs.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}
