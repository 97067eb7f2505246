// Command collections drives the hash table, heap and sort routines from the command line.
package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	ctx := context.Background()
	logger := &logging.Logger{Out: os.Stderr}

	level, _, err := env.Lookup[string]("COLLECTIONS_LOG_LEVEL", env.DefaultValue(string(logging.LevelInfo)))
	if err != nil {
		logger.Fatal(ctx, "invalid log level", logging.ErrField(err))
		os.Exit(cli.ExitCodeBadRequest)
	}
	logger.Level = logging.Level(level)

	cli.Main(ctx, NewMux(logger))
}

func NewMux(logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("wordcount", WordCountCommand{Logger: logger})
	m.Handle("bench", BenchCommand{Logger: logger})
	return &m
}
