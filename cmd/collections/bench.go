package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/collectionkit/collections/pkg/datastruct"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
)

const ErrLookupMismatch errorkit.Error = "ErrLookupMismatch"

// DefaultBenchN is the number of generated words when no n is configured.
const DefaultBenchN = 100000

type BenchCommand struct {
	N          int     `flag:"n" env:"COLLECTIONS_BENCH_N" desc:"number of generated words to insert (default 100000)"`
	Capacity   int     `flag:"capacity" env:"COLLECTIONS_CAPACITY" desc:"initial bucket count of the table (default 16)"`
	LoadFactor float64 `flag:"load-factor" env:"COLLECTIONS_LOAD_FACTOR" desc:"growth threshold of the table (default 0.75)"`
	Seed       int64   `flag:"seed" default:"1" desc:"seed of the word generator"`

	Logger *logging.Logger
}

func (cmd BenchCommand) Summary() string {
	return "fill a table with generated words, verify and prune it"
}

func (cmd BenchCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	if cmd.N < 0 {
		cli.HandleError(w, r, datastruct.ErrInvalidArgument.F("n must not be negative, got %d", cmd.N))
		return
	}
	cmd.N = zerokit.Coalesce(cmd.N, DefaultBenchN)

	var resizes int
	ht, err := datastruct.New[datastruct.String, int](datastruct.Config{
		Capacity:   cmd.Capacity,
		LoadFactor: cmd.LoadFactor,
		OnResize: func(from, to int) {
			resizes++
			cmd.Logger.Debug(ctx, "table resized", logging.Field("from", from), logging.Field("to", to))
		},
	})
	if err != nil {
		cmd.Logger.Error(ctx, "invalid table configuration", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}

	randomdata.CustomRand(rand.New(rand.NewSource(cmd.Seed)))
	words := make([]datastruct.String, cmd.N)
	for i := range words {
		// the index suffix keeps every generated word distinct
		words[i] = datastruct.String(randomdata.SillyName() + "-" + strconv.Itoa(i))
	}

	start := time.Now()
	for i, word := range words {
		ht.Put(word, i)
	}
	for i, word := range words {
		if got, ok := ht.Lookup(word); !ok || got != i {
			err := ErrLookupMismatch.F("%q: expected %d, got %d (found: %t)", word, i, got, ok)
			cmd.Logger.Error(ctx, "bench verification failed", logging.ErrField(err))
			cli.HandleError(w, r, err)
			return
		}
	}
	removed := ht.RemoveFunc(func(_ datastruct.String, i int) bool { return i%2 == 1 })
	elapsed := time.Since(start)

	cmd.Logger.Info(ctx, "bench finished",
		logging.Field("size", ht.Len()),
		logging.Field("capacity", ht.Cap()),
		logging.Field("resizes", resizes),
		logging.Field("removed", removed),
		logging.Field("elapsed", elapsed.String()))

	fmt.Fprintf(w, "inserted\t%d\nremoved\t%d\nsize\t%d\ncapacity\t%d\nresizes\t%d\n",
		len(words), removed, ht.Len(), ht.Cap(), resizes)
}
