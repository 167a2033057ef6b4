package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// BatchResult pairs one input file with its run outcome.
type BatchResult struct {
	Input  string
	Result *Result
	Err    error
}

// RunBatch generates documents for several input files concurrently,
// bounded by concurrency (values below 1 run sequentially). One failing
// input does not stop the others; each result carries its own error.
func (r *Runner) RunBatch(ctx context.Context, inputs []string, opts RunOptions, concurrency int) []BatchResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]BatchResult, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			runOpts := opts
			runOpts.InputPath = input
			// Distinct base names keep concurrent outputs from colliding.
			runOpts.BaseName = ""

			res, err := r.Run(gCtx, runOpts)
			if err != nil {
				r.logger.Error("batch input failed",
					slog.String("input", input),
					slog.String("error", err.Error()))
				results[i] = BatchResult{Input: input, Err: fmt.Errorf("%s: %w", input, err)}
				return nil
			}
			results[i] = BatchResult{Input: input, Result: res}
			return nil
		})
	}

	// Errors are collected per input; Wait only observes ctx cancellation.
	_ = g.Wait()

	return results
}
