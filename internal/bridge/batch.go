package bridge

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ForEach runs fn for every item with at most workers calls in flight. The
// first failure cancels the context handed to the remaining calls and is the
// error returned; items not yet started are skipped.
func ForEach[T any](ctx context.Context, items []T, workers int, fn func(ctx context.Context, i int, item T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(gctx, i, item)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	return ctx.Err()
}
