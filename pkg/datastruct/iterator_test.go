package datastruct_test

import (
	"errors"
	"testing"

	"github.com/collectionkit/collections/pkg/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func collect[K datastruct.Hashable, V any](tb testing.TB, it *datastruct.Iterator[K, V]) []datastruct.Pair[K, V] {
	tb.Helper()
	var out []datastruct.Pair[K, V]
	for it.HasNext() {
		p, err := it.Next()
		assert.NoError(tb, err)
		out = append(out, p)
	}
	return out
}

func TestIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	capacity := let.Var(s, func(t *testcase.T) int {
		return t.Random.IntBetween(1, 64)
	})
	keys := let.Var(s, func(t *testcase.T) []datastruct.Int {
		var (
			ks []datastruct.Int
			n  = t.Random.IntBetween(1, 100)
		)
		for i := 0; i < n; i++ {
			ks = append(ks, datastruct.Int(i))
		}
		return ks
	})
	table := let.Var(s, func(t *testcase.T) *datastruct.HashTable[datastruct.Int, string] {
		ht, err := datastruct.New[datastruct.Int, string](datastruct.WithCapacity(capacity.Get(t)))
		assert.NoError(t, err)
		for _, k := range keys.Get(t) {
			ht.Put(k, k.String())
		}
		return ht
	})
	subject := let.Var(s, func(t *testcase.T) *datastruct.Iterator[datastruct.Int, string] {
		return table.Get(t).Iterator()
	})

	s.When("the table is empty", func(s *testcase.Spec) {
		keys.LetValue(s, nil)

		s.Then("there is no element", func(t *testcase.T) {
			assert.False(t, subject.Get(t).HasNext())
		})

		s.Then("Next reports that there is no such element", func(t *testcase.T) {
			_, err := subject.Get(t).Next()
			assert.True(t, errors.Is(err, datastruct.ErrNoSuchElement))
		})
	})

	s.Then("every pair is yielded exactly once", func(t *testcase.T) {
		got := collect(t, subject.Get(t))
		assert.Equal(t, len(keys.Get(t)), len(got))

		var gotKeys []datastruct.Int
		for _, p := range got {
			assert.Equal(t, p.Key.String(), p.Value)
			gotKeys = append(gotKeys, p.Key)
		}
		assert.ContainsExactly(t, keys.Get(t), gotKeys)
	})

	s.Then("pairs follow bucket order, then chain order", func(t *testcase.T) {
		var exp []datastruct.Int
		for _, chain := range table.Get(t).ChainKeys() {
			exp = append(exp, chain...)
		}
		var got []datastruct.Int
		for _, p := range collect(t, subject.Get(t)) {
			got = append(got, p.Key)
		}
		assert.Equal(t, exp, got)
	})

	s.Then("HasNext can be asked repeatedly without advancing", func(t *testcase.T) {
		it := subject.Get(t)
		t.Random.Repeat(2, 5, func() {
			assert.True(t, it.HasNext())
		})
		assert.Equal(t, len(keys.Get(t)), len(collect(t, it)))
	})

	s.Then("Next after exhaustion reports that there is no such element", func(t *testcase.T) {
		it := subject.Get(t)
		collect(t, it)
		assert.False(t, it.HasNext())
		_, err := it.Next()
		assert.True(t, errors.Is(err, datastruct.ErrNoSuchElement))
	})

	s.Then("the sentinel key is yielded once", func(t *testcase.T) {
		var zeros int
		for _, p := range collect(t, subject.Get(t)) {
			if p.Key == 0 {
				zeros++
			}
		}
		assert.Equal(t, 1, zeros)
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		s.Then("removing before the first Next is an invalid cursor state", func(t *testcase.T) {
			err := subject.Get(t).Remove()
			assert.True(t, errors.Is(err, datastruct.ErrInvalidCursorState))
			assert.Equal(t, len(keys.Get(t)), table.Get(t).Len())
		})

		s.Then("removing twice without Next is an invalid cursor state", func(t *testcase.T) {
			it := subject.Get(t)
			_, err := it.Next()
			assert.NoError(t, err)
			assert.NoError(t, it.Remove())
			assert.True(t, errors.Is(it.Remove(), datastruct.ErrInvalidCursorState))
			assert.Equal(t, len(keys.Get(t))-1, table.Get(t).Len())
		})

		s.Then("removing the first pair leaves the rest to be yielded once", func(t *testcase.T) {
			it := subject.Get(t)
			first, err := it.Next()
			assert.NoError(t, err)
			assert.NoError(t, it.Remove())

			rest := collect(t, it)
			assert.Equal(t, len(keys.Get(t))-1, len(rest))
			assert.Equal(t, len(keys.Get(t))-1, table.Get(t).Len())
			for _, p := range rest {
				assert.NotEqual(t, first.Key, p.Key)
			}
			assert.False(t, table.Get(t).Contains(first.Key))
		})

		s.Then("removing every pair empties the table", func(t *testcase.T) {
			it := subject.Get(t)
			var n int
			for it.HasNext() {
				_, err := it.Next()
				assert.NoError(t, err)
				assert.NoError(t, it.Remove())
				n++
			}
			assert.Equal(t, len(keys.Get(t)), n)
			assert.Equal(t, 0, table.Get(t).Len())
			assert.False(t, table.Get(t).Iterator().HasNext())
		})

		s.Then("removing after HasNext moved to the next bucket still removes the returned pair", func(t *testcase.T) {
			it := subject.Get(t)
			p, err := it.Next()
			assert.NoError(t, err)
			it.HasNext()
			assert.NoError(t, it.Remove())
			assert.False(t, table.Get(t).Contains(p.Key))
			assert.Equal(t, len(keys.Get(t))-1, len(collect(t, it)))
		})

		s.When("every key collides into the same chain", func(s *testcase.Spec) {
			capacity.LetValue(s, 4)
			keys.Let(s, func(t *testcase.T) []datastruct.Int {
				var (
					ks []datastruct.Int
					n  = t.Random.IntBetween(3, 9)
				)
				for i := 1; i <= n; i++ {
					ks = append(ks, datastruct.Int(i*64+1))
				}
				return ks
			})
			table.Let(s, func(t *testcase.T) *datastruct.HashTable[datastruct.Int, string] {
				ht, err := datastruct.New[datastruct.Int, string](
					datastruct.WithCapacity(capacity.Get(t)),
					datastruct.WithLoadFactor(1000),
				)
				assert.NoError(t, err)
				for _, k := range keys.Get(t) {
					ht.Put(k, k.String())
				}
				return ht
			})

			s.Then("the keys share one chain", func(t *testcase.T) {
				chains := table.Get(t).ChainKeys()
				assert.Equal(t, keys.Get(t), chains[1])
			})

			s.Then("removing every other pair keeps the chain consistent", func(t *testcase.T) {
				var (
					it      = subject.Get(t)
					kept    []datastruct.Int
					removed []datastruct.Int
					i       int
				)
				for it.HasNext() {
					p, err := it.Next()
					assert.NoError(t, err)
					if i%2 == 0 {
						assert.NoError(t, it.Remove())
						removed = append(removed, p.Key)
					} else {
						kept = append(kept, p.Key)
					}
					i++
				}
				assert.Equal(t, len(keys.Get(t)), i)
				assert.Equal(t, kept, table.Get(t).ChainKeys()[1])
				assert.Equal(t, len(kept), table.Get(t).Len())
				for _, k := range removed {
					assert.False(t, table.Get(t).Contains(k))
				}

				// the chain tail must still accept appends after removals
				table.Get(t).Put(1, "tail")
				assert.Equal(t, append(kept, 1), table.Get(t).ChainKeys()[1])
			})

			s.Then("removing the tail then appending relinks the tail", func(t *testcase.T) {
				it := subject.Get(t)
				var last datastruct.Int
				for it.HasNext() {
					p, err := it.Next()
					assert.NoError(t, err)
					last = p.Key
				}
				assert.NoError(t, it.Remove())
				assert.False(t, table.Get(t).Contains(last))

				table.Get(t).Put(1, "new tail")
				chain := table.Get(t).ChainKeys()[1]
				assert.Equal(t, datastruct.Int(1), chain[len(chain)-1])
				assert.Equal(t, len(keys.Get(t)), table.Get(t).Len())
			})
		})
	})
}

func TestIterator_sparseTable(t *testing.T) {
	ht, err := datastruct.New[datastruct.Int, int](datastruct.WithCapacity(1 << 16))
	assert.NoError(t, err)
	ht.Put(1, 1)
	ht.Put(1<<15, 2)
	ht.Put(1<<16-1, 3)

	it := ht.Iterator()
	var got []int
	for it.HasNext() {
		p, err := it.Next()
		assert.NoError(t, err)
		got = append(got, p.Value)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, it.HasNext())
}
