package piece

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/blokus/point"
	"github.com/katalvlaran/blokus/shape"
)

// Catalog computes the arrangements of every piece anchored at origin.
// Pieces are processed concurrently; each goroutine fills its own slot, so
// no locking is needed. The map always has one entry per ID, possibly with
// an empty slice when no orientation fits the bounds.
//
// Cancelling ctx stops work that has not started yet and returns ctx.Err().
func Catalog(ctx context.Context, origin point.Point, opts ...CatalogOption) (map[ID][]shape.Shape, error) {
	cfg := newCatalogConfig(opts...)

	results := make([][]shape.Shape, len(table))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, s := range table {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = MustNew(s.id, origin).Arrangements(cfg.bounds...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[ID][]shape.Shape, len(table))
	for i, s := range table {
		out[s.id] = results[i]
	}
	return out, nil
}
