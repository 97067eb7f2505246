package datastructcontract

import (
	"fmt"
	"testing"

	"github.com/collectionkit/collections/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/mapkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func KVS[K comparable, V any](make contract.Make[datastruct.KVS[K, V]], opts ...KVSOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		var kvs = make(t)

		expected := map[K]V{}
		t.Random.Repeat(3, 7, func() {
			key := random.Unique(func() K {
				return c.makeK(t)
			}, mapkit.Keys(expected)...)
			expected[key] = c.makeV(t)
		})

		var expLen int
		for k, v := range expected {
			assert.Equal(t, kvs.Len(), expLen)
			assert.Empty(t, kvs.Get(k), "zero value was expected for getting a non stored value")
			_, ok := kvs.Lookup(k)
			assert.False(t, ok, assert.MessageF("%#v key was not expected to be found", k))
			assert.False(t, kvs.Contains(k))

			_, replaced := kvs.Put(k, v)
			assert.False(t, replaced, "a new key should not report a replacement")
			expLen++
			assert.Equal(t, kvs.Len(), expLen)
			got, ok := kvs.Lookup(k)
			assert.True(t, ok)
			assert.Equal(t, v, got)
			assert.Equal(t, v, kvs.Get(k))
			assert.True(t, kvs.Contains(k))
		}

		kNoise := random.Unique(func() K { return c.makeK(t) }, mapkit.Keys(expected)...)
		vNoise := c.makeV(t)
		kvs.Put(kNoise, vNoise)
		assert.Equal(t, expLen+1, kvs.Len())
		got, ok := kvs.Remove(kNoise)
		assert.True(t, ok)
		assert.Equal(t, vNoise, got)
		assert.Equal(t, expLen, kvs.Len())
		_, ok = kvs.Lookup(kNoise)
		assert.False(t, ok)
		assert.Empty(t, kvs.Get(kNoise))

		assert.ContainsExactly(t, mapkit.Keys(expected), kvs.Keys())
		assert.ContainsExactly(t, expected, kvs.ToMap())
		assert.ContainsExactly(t, expected, iterkit.Collect2Map(kvs.Iter()))
	})

	s.Test("keys are unique in the store", func(t *testcase.T) {
		var kvs = make(t)
		k := c.makeK(t)
		t.Random.Repeat(3, 7, func() {
			kvs.Put(k, c.makeV(t))
		})
		assert.Equal(t, 1, kvs.Len())
		exp := c.makeV(t)
		kvs.Put(k, exp)
		assert.Equal(t, 1, kvs.Len())
		assert.Equal(t, exp, kvs.Get(k))
		kvs.Remove(k)
		assert.Equal(t, 0, kvs.Len())
	})

	s.Test("put returns the previous value on overwrite", func(t *testcase.T) {
		var (
			kvs = make(t)
			k   = c.makeK(t)
			v1  = c.makeV(t)
			v2  = c.makeV(t)
		)
		prev, replaced := kvs.Put(k, v1)
		assert.False(t, replaced)
		assert.Empty(t, prev)

		prev, replaced = kvs.Put(k, v2)
		assert.True(t, replaced)
		assert.Equal(t, v1, prev)
		assert.Equal(t, v2, kvs.Get(k))
	})

	s.Test("removing an absent key reports it", func(t *testcase.T) {
		var kvs = make(t)
		got, ok := kvs.Remove(c.makeK(t))
		assert.False(t, ok)
		assert.Empty(t, got)
		assert.Equal(t, 0, kvs.Len())
	})

	s.Test("Iter yields every pair exactly once", func(t *testcase.T) {
		var (
			kvs      = make(t)
			expected = map[K]V{}
		)
		t.Random.Repeat(3, 42, func() {
			k, v := c.makeK(t), c.makeV(t)
			expected[k] = v
			kvs.Put(k, v)
		})

		var keys []K
		for k, v := range kvs.Iter() {
			keys = append(keys, k)
			assert.Equal(t, expected[k], v)
		}
		assert.ContainsExactly(t, mapkit.Keys(expected), keys)
	})

	s.Test("Iter can stop early", func(t *testcase.T) {
		var kvs = make(t)
		t.Random.Repeat(3, 7, func() {
			kvs.Put(c.makeK(t), c.makeV(t))
		})
		var n int
		for range kvs.Iter() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	s.Test("MapAdd restores the previous state", func(t *testcase.T) {
		var (
			kvs = make(t)
			k   = c.makeK(t)
			v1  = c.makeV(t)
			v2  = c.makeV(t)
		)
		td1 := datastruct.MapAdd(kvs, k, v1)
		assert.Equal(t, v1, kvs.Get(k))
		td2 := datastruct.MapAdd(kvs, k, v2)
		assert.Equal(t, v2, kvs.Get(k))
		td2()
		assert.Equal(t, v1, kvs.Get(k))
		td1()
		assert.False(t, kvs.Contains(k))
	})

	var (
		k K
		v V
	)
	return s.AsSuite(fmt.Sprintf("KVS[%T, %T]", k, v))
}

type KVSOption[K comparable, V any] interface {
	option.Option[KVSConfig[K, V]]
}

type KVSConfig[K comparable, V any] struct {
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

var _ KVSOption[string, int] = KVSConfig[string, int]{}

func (c KVSConfig[K, V]) Configure(o *KVSConfig[K, V]) {
	if c.MakeK != nil {
		o.MakeK = c.MakeK
	}
	if c.MakeV != nil {
		o.MakeV = c.MakeV
	}
}

func (c KVSConfig[K, V]) makeK(tb testing.TB) K {
	if c.MakeK != nil {
		return c.MakeK(tb)
	}
	return makeValue[K](tb)
}

func (c KVSConfig[K, V]) makeV(tb testing.TB) V {
	if c.MakeV != nil {
		return c.MakeV(tb)
	}
	return makeValue[V](tb)
}

func makeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(*new(T)).(T)
}
