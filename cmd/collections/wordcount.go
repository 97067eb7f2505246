package main

import (
	"bufio"
	"fmt"
	"time"

	"github.com/collectionkit/collections/pkg/datastruct"
	"github.com/collectionkit/collections/pkg/sortkit"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
)

// DefaultTop is the number of words printed when no top is configured.
const DefaultTop = 10

// WordCountCommand prints the most frequent words of its input.
//
// Flags backed by an env var have no default tag, as the default tag would win over the env value.
// A zero value selects the default instead.
type WordCountCommand struct {
	Top        int     `flag:"top" env:"COLLECTIONS_TOP" desc:"number of most frequent words to print (default 10)"`
	Capacity   int     `flag:"capacity" env:"COLLECTIONS_CAPACITY" desc:"initial bucket count of the table (default 16)"`
	LoadFactor float64 `flag:"load-factor" env:"COLLECTIONS_LOAD_FACTOR" desc:"growth threshold of the table (default 0.75)"`

	Logger *logging.Logger
}

func (cmd WordCountCommand) Summary() string {
	return "count the words read from stdin and print the most frequent ones"
}

type wordCount struct {
	Word  string
	Count int
}

// ranksBefore orders by count descending, then word ascending.
func ranksBefore(a, b wordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

func (cmd WordCountCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var (
		ctx   = r.Context()
		start = time.Now()
	)
	if cmd.Top < 0 {
		cli.HandleError(w, r, datastruct.ErrInvalidArgument.F("top must be positive, got %d", cmd.Top))
		return
	}
	cmd.Top = zerokit.Coalesce(cmd.Top, DefaultTop)

	counts, err := datastruct.New[datastruct.String, int](datastruct.Config{
		Capacity:   cmd.Capacity,
		LoadFactor: cmd.LoadFactor,
		OnResize: func(from, to int) {
			cmd.Logger.Debug(ctx, "table resized", logging.Field("from", from), logging.Field("to", to))
		},
	})
	if err != nil {
		cmd.Logger.Error(ctx, "invalid table configuration", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}

	var total int
	scanner := bufio.NewScanner(r.Body)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := datastruct.String(scanner.Text())
		n, _ := counts.Lookup(word)
		counts.Put(word, n+1)
		total++
	}
	if err := scanner.Err(); err != nil {
		cmd.Logger.Error(ctx, "reading input failed", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}

	for _, wc := range cmd.top(counts) {
		fmt.Fprintf(w, "%s\t%d\n", wc.Word, wc.Count)
	}

	cmd.Logger.Info(ctx, "words counted",
		logging.Field("total", total),
		logging.Field("distinct", counts.Len()),
		logging.Field("capacity", counts.Cap()),
		logging.Field("elapsed", time.Since(start).String()))
}

// top keeps the best Top entries in a min-heap whose root is the weakest of them.
func (cmd WordCountCommand) top(counts *datastruct.HashTable[datastruct.String, int]) []wordCount {
	h := datastruct.NewMinHeapFunc(func(a, b wordCount) bool { return ranksBefore(b, a) })
	for word, n := range counts.Iter() {
		h.Push(wordCount{Word: string(word), Count: n})
		if cmd.Top < h.Len() {
			_, _ = h.Pop()
		}
	}
	out := make([]wordCount, 0, h.Len())
	for !h.IsEmpty() {
		wc, _ := h.Pop()
		out = append(out, wc)
	}
	return sortkit.MergeSortFunc(out, ranksBefore)
}
