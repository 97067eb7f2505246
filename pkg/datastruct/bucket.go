package datastruct

// bucket is the singly linked collision chain of one hash slot.
// The zero value is an empty bucket.
type bucket[K comparable, V any] struct {
	head   *entry[K, V]
	tail   *entry[K, V]
	length int
}

type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// lookup returns the entry with the key and its predecessor in the chain.
// prev is nil when the entry is the head.
func (b *bucket[K, V]) lookup(key K) (e, prev *entry[K, V]) {
	for e = b.head; e != nil; prev, e = e, e.next {
		if e.key == key {
			return e, prev
		}
	}
	return nil, nil
}

func (b *bucket[K, V]) append(e *entry[K, V]) {
	e.next = nil
	if b.tail == nil {
		b.head = e
		b.tail = e
	} else {
		b.tail.next = e
		b.tail = e
	}
	b.length++
}

// unlink removes e from the chain, prev must be its predecessor or nil if e is the head.
func (b *bucket[K, V]) unlink(e, prev *entry[K, V]) {
	if prev == nil {
		b.head = e.next
	} else {
		prev.next = e.next
	}
	if b.tail == e {
		b.tail = prev
	}
	e.next = nil
	b.length--
}
