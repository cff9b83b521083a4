package puzzle

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item and returns the results in input order.
// Items are processed on up to workers goroutines; with workers <= 1 the
// work runs inline. The first error cancels the remaining work.
func Map[In, Out any](ctx context.Context, items []In, workers int, fn func(In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(items))

	if workers <= 1 || len(items) <= 1 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := fn(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(item)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
