package datastruct

import (
	"iter"

	"go.llib.dev/frameless/port/option"
)

// HashTable is a separate chaining hash table.
//
// Every key lives in the bucket selected by its hash modulo the bucket array length.
// The zero value of K is the sentinel key, it is never hashed and always occupies slot 0.
// When a new key would push the load above the configured load factor,
// the bucket array doubles and every entry is relinked against the new length.
// The table never shrinks.
//
// The zero value is an empty table that uses DefaultCapacity and DefaultLoadFactor.
// A HashTable is not safe for concurrent use.
type HashTable[K Hashable, V any] struct {
	buckets []bucket[K, V]
	size    int

	loadFactor float64
	onResize   func(from, to int)
}

var _ KVS[String, any] = (*HashTable[String, any])(nil)

// New returns an empty HashTable.
// It fails with ErrInvalidArgument when the capacity or the load factor is not positive.
func New[K Hashable, V any](opts ...Option) (*HashTable[K, V], error) {
	c := option.ToConfig(opts)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &HashTable[K, V]{
		buckets:    make([]bucket[K, V], c.Capacity),
		loadFactor: c.LoadFactor,
		onResize:   c.OnResize,
	}, nil
}

func (ht *HashTable[K, V]) init() {
	if ht.buckets == nil {
		ht.buckets = make([]bucket[K, V], DefaultCapacity)
	}
	if ht.loadFactor == 0 {
		ht.loadFactor = DefaultLoadFactor
	}
}

func (ht *HashTable[K, V]) slot(key K) int {
	var zero K
	if key == zero {
		return 0
	}
	return int(key.Hash() % uint64(len(ht.buckets)))
}

func (ht *HashTable[K, V]) bucketOf(key K) *bucket[K, V] {
	return &ht.buckets[ht.slot(key)]
}

// Put stores the value under the key.
// If the key was already present, its value is replaced and the previous value is returned with true.
func (ht *HashTable[K, V]) Put(key K, val V) (V, bool) {
	ht.init()
	b := ht.bucketOf(key)
	if e, _ := b.lookup(key); e != nil {
		prev := e.value
		e.value = val
		return prev, true
	}
	if float64(ht.size+1)/float64(len(ht.buckets)) > ht.loadFactor {
		ht.grow()
		b = ht.bucketOf(key)
	}
	b.append(&entry[K, V]{key: key, value: val})
	ht.size++
	var zero V
	return zero, false
}

// Lookup returns the value stored under the key, and whether the key was found.
func (ht *HashTable[K, V]) Lookup(key K) (V, bool) {
	if len(ht.buckets) == 0 {
		var zero V
		return zero, false
	}
	if e, _ := ht.bucketOf(key).lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Get returns the value stored under the key, or the zero value when the key is absent.
func (ht *HashTable[K, V]) Get(key K) V {
	v, _ := ht.Lookup(key)
	return v
}

// Contains reports whether the key is present.
func (ht *HashTable[K, V]) Contains(key K) bool {
	_, ok := ht.Lookup(key)
	return ok
}

// Remove deletes the key and returns the value it held.
// The returned bool is false when the key was not present.
func (ht *HashTable[K, V]) Remove(key K) (V, bool) {
	if len(ht.buckets) == 0 {
		var zero V
		return zero, false
	}
	b := ht.bucketOf(key)
	e, prev := b.lookup(key)
	if e == nil {
		var zero V
		return zero, false
	}
	ht.unlink(b, e, prev)
	return e.value, true
}

// unlink is the single removal path, shared by Remove and Iterator.Remove.
func (ht *HashTable[K, V]) unlink(b *bucket[K, V], e, prev *entry[K, V]) {
	b.unlink(e, prev)
	ht.size--
}

// Len returns the number of keys in the table.
func (ht *HashTable[K, V]) Len() int {
	return ht.size
}

// Cap returns the current bucket array length.
func (ht *HashTable[K, V]) Cap() int {
	if ht.buckets == nil {
		return DefaultCapacity
	}
	return len(ht.buckets)
}

// LoadFactor returns the growth threshold of the table.
func (ht *HashTable[K, V]) LoadFactor() float64 {
	if ht.loadFactor == 0 {
		return DefaultLoadFactor
	}
	return ht.loadFactor
}

// grow doubles the bucket array and relinks every entry against the new length.
// Slots are derived from scratch, and the size is recounted from the relinked entries.
func (ht *HashTable[K, V]) grow() {
	var (
		from = len(ht.buckets)
		old  = ht.buckets
	)
	ht.buckets = make([]bucket[K, V], from*2)
	ht.size = 0
	for i := range old {
		for e := old[i].head; e != nil; {
			next := e.next
			ht.bucketOf(e.key).append(e)
			ht.size++
			e = next
		}
	}
	if ht.onResize != nil {
		ht.onResize(from, len(ht.buckets))
	}
}

// Iterator returns a cursor positioned before the first pair of the table.
func (ht *HashTable[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{table: ht, slot: -1}
}

// Iter iterates over the pairs in bucket order, then in chain order.
func (ht *HashTable[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := ht.Iterator()
		for it.HasNext() {
			p, _ := it.Next()
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (ht *HashTable[K, V]) Keys() []K {
	keys := make([]K, 0, ht.size)
	for k := range ht.Iter() {
		keys = append(keys, k)
	}
	return keys
}

func (ht *HashTable[K, V]) ToMap() map[K]V {
	m := make(map[K]V, ht.size)
	for k, v := range ht.Iter() {
		m[k] = v
	}
	return m
}

// RemoveFunc removes every pair for which the filter returns true,
// and returns how many pairs were removed.
func (ht *HashTable[K, V]) RemoveFunc(filter func(K, V) bool) int {
	var (
		it      = ht.Iterator()
		removed int
	)
	for it.HasNext() {
		p, _ := it.Next()
		if !filter(p.Key, p.Value) {
			continue
		}
		if err := it.Remove(); err == nil {
			removed++
		}
	}
	return removed
}
