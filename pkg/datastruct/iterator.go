package datastruct

// Iterator is a cursor over the live state of a HashTable.
//
// It walks the buckets in index order and each chain in link order.
// Buckets already consumed are never scanned again,
// so a full traversal costs O(Cap() + Len()).
// Changing the table during a traversal through anything other than Iterator.Remove
// leaves the traversal undefined.
type Iterator[K Hashable, V any] struct {
	table *HashTable[K, V]
	// slot is the bucket index of next.
	slot int
	// next is the entry the following Next call returns, nextPrev is its chain predecessor.
	next, nextPrev *entry[K, V]
	// last is the entry returned by the latest Next call.
	last, lastPrev *entry[K, V]
	lastSlot       int
	removable      bool
}

// HasNext reports whether Next has an element to return.
func (it *Iterator[K, V]) HasNext() bool {
	if it.next != nil {
		return true
	}
	buckets := it.table.buckets
	for it.slot+1 < len(buckets) {
		it.slot++
		if head := buckets[it.slot].head; head != nil {
			it.next, it.nextPrev = head, nil
			return true
		}
	}
	return false
}

// Next returns the following pair of the traversal.
// It returns ErrNoSuchElement when the traversal is exhausted.
func (it *Iterator[K, V]) Next() (Pair[K, V], error) {
	if !it.HasNext() {
		return Pair[K, V]{}, ErrNoSuchElement
	}
	e := it.next
	it.last, it.lastPrev, it.lastSlot = e, it.nextPrev, it.slot
	it.next, it.nextPrev = e.next, e
	it.removable = true
	return Pair[K, V]{Key: e.key, Value: e.value}, nil
}

// Remove deletes the pair returned by the latest Next call from the table.
// It returns ErrInvalidCursorState when no pair was returned yet,
// or when that pair was already removed.
func (it *Iterator[K, V]) Remove() error {
	if !it.removable {
		return ErrInvalidCursorState
	}
	it.table.unlink(&it.table.buckets[it.lastSlot], it.last, it.lastPrev)
	if it.nextPrev == it.last {
		// the following entry is in the same chain, its predecessor is now ours
		it.nextPrev = it.lastPrev
	}
	it.last, it.lastPrev = nil, nil
	it.removable = false
	return nil
}
