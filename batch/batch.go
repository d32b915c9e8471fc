// Package batch runs one summarization workflow over many document sets
// concurrently. The workflow itself stays single-shot per run; fan-out lives
// here, at the caller's level.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/epitome-ai/epitome"
)

const defaultConcurrency = 4

// Option configures a batch run.
type Option func(*options)

type options struct {
	maxConcurrency int
}

// WithConcurrency caps the number of in-flight workflow runs.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConcurrency = n
		}
	}
}

// Summarize runs the workflow once per document set and returns summaries in
// input order. The first failing run cancels the rest and its error is
// returned wrapped with the set index.
func Summarize(ctx context.Context, wf *epitome.Workflow, sets [][]epitome.Document, opts ...Option) ([]string, error) {
	o := options{maxConcurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&o)
	}

	if len(sets) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxConcurrency)

	summaries := make([]string, len(sets))
	for i, docs := range sets {
		g.Go(func() error {
			out, err := wf.Run(ctx, epitome.Input{Documents: docs})
			if err != nil {
				return fmt.Errorf("set %d: %w", i, err)
			}
			summaries[i] = out.Summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
