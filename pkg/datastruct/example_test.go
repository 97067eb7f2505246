package datastruct_test

import (
	"fmt"

	"github.com/collectionkit/collections/pkg/datastruct"
)

func ExampleHashTable() {
	ht, err := datastruct.New[datastruct.String, int](datastruct.WithCapacity(4))
	if err != nil {
		panic(err)
	}
	ht.Put("foo", 1)
	ht.Put("bar", 2)
	prev, replaced := ht.Put("foo", 3)
	fmt.Println(prev, replaced)

	v, ok := ht.Lookup("foo")
	fmt.Println(v, ok)

	_, ok = ht.Remove("bar")
	fmt.Println(ok, ht.Len())
	// Output:
	// 1 true
	// 3 true
	// true 1
}

func ExampleIterator() {
	var ht datastruct.HashTable[datastruct.Int, string]
	for i := 0; i < 6; i++ {
		ht.Put(datastruct.Int(i), fmt.Sprint(i))
	}

	it := ht.Iterator()
	for it.HasNext() {
		p, err := it.Next()
		if err != nil {
			panic(err)
		}
		if p.Key%2 == 1 {
			if err := it.Remove(); err != nil {
				panic(err)
			}
		}
	}
	fmt.Println(ht.Len(), ht.Contains(1), ht.Contains(2))
	// Output:
	// 3 false true
}

func ExampleMinHeap() {
	h := datastruct.NewMinHeap(5, 3, 8)
	h.Push(1)
	for !h.IsEmpty() {
		v, _ := h.Pop()
		fmt.Print(v, " ")
	}
	// Output:
	// 1 3 5 8
}
