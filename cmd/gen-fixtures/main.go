// Command gen-fixtures writes deterministic CSV seasons for local runs
// and demos: times.csv plus empty, partial, and complete championship
// files.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/placarhq/placar/internal/fixtures"
	"github.com/placarhq/placar/pkg/logger"
)

func main() {
	dir := flag.String("dir", ".", "output directory for the generated files")
	seed := flag.Int64("seed", 42, "random seed; same seed, same season")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()
	ctx := context.Background()

	gen := fixtures.New(
		fixtures.WithDir(*dir),
		fixtures.WithSeed(*seed),
	)
	paths, err := gen.Generate(ctx)
	if err != nil {
		log.Fatal(ctx, "fixture generation failed", logger.Error(err))
	}
	for _, p := range paths {
		log.Info(ctx, "wrote fixture", logger.String("path", p))
	}
}
