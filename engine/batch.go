package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GenerateBatch runs Generate for every request, at most MaxConcurrency at
// a time and paced by the configured rate limit. Results keep the order of
// reqs; a failed request never stops the others.
func (e *Engine) GenerateBatch(ctx context.Context, reqs []Request) []BatchResult {
	results := make([]BatchResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(e.cfg.MaxConcurrency)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			results[i].Index = i
			if e.limiter != nil {
				if err := e.limiter.Wait(ctx); err != nil {
					results[i].Err = fmt.Errorf("rate limiter error: %w", err)
					return nil
				}
			}
			results[i].Response, results[i].Err = e.Generate(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	e.logger.Info("Batch generation completed", "requests", len(reqs))
	return results
}
