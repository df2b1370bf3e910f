// internal/runner/runner.go
package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"passgen-core/engine"
	"passgen-core/orderedset"
)

// Config controls batch execution.
type Config struct {
	Threads int // base words expanded in parallel; <=1 runs sequentially
}

// ForEachCandidate streams the final deduplicated candidate sequence for
// words, in caller-supplied word order, to visit, and returns how many
// candidates were visited.
//
// With Threads > 1 each word's full pipeline runs on its own goroutine — the
// only safe parallel unit, since stages within one word are strictly
// sequential and dedup state is local to the word. Per-word results are then
// merged back in word order through the same global first-seen dedup, so
// parallel output is identical to the sequential path.
func ForEachCandidate(ctx context.Context, cfg Config, eng *engine.Engine, words []string, visit func(string) error) (int, error) {
	seen := orderedset.New()
	count := 0
	emit := func(s string) error {
		if !seen.Add(s) {
			return nil
		}
		count++
		return visit(s)
	}

	if cfg.Threads <= 1 || len(words) < 2 {
		for _, w := range words {
			if err := eng.ForEachCandidate(ctx, w, emit); err != nil {
				return count, err
			}
		}
		return count, nil
	}

	results := make([][]string, len(words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			local := orderedset.New()
			err := eng.ForEachCandidate(gctx, w, func(s string) error {
				local.Add(s)
				return nil
			})
			if err != nil {
				return err
			}
			results[i] = local.Values()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for _, rs := range results {
		for _, s := range rs {
			if err := emit(s); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}
