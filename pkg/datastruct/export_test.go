package datastruct

// ChainKeys returns the keys of each bucket in chain order.
func (ht *HashTable[K, V]) ChainKeys() [][]K {
	out := make([][]K, len(ht.buckets))
	for i := range ht.buckets {
		for e := ht.buckets[i].head; e != nil; e = e.next {
			out[i] = append(out[i], e.key)
		}
		if len(out[i]) != ht.buckets[i].length {
			panic("bucket length is out of sync with its chain")
		}
	}
	return out
}

func (ht *HashTable[K, V]) SlotOf(key K) int {
	return ht.slot(key)
}
