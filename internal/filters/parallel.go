// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tripctl/tripctl/internal/log"
)

// minChunk is the smallest slice handed to a single worker. Below this the
// goroutine overhead outweighs the evaluation itself.
const minChunk = 512

// FilterRowsParallel returns the same rows as FilterRows, evaluating them on
// up to workers goroutines. workers <= 0 means GOMAXPROCS. Verdicts are
// written by row index so the result keeps source order. The only error is
// ctx's, checked between chunks.
func FilterRowsParallel[R Row](ctx context.Context, rows []R, state FilterState, flags CategoryFlags, workers int) ([]R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := (len(rows) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	// Small inputs are not worth the fan out.
	if len(rows) <= chunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return FilterRows(rows, state, flags), nil
	}

	verdicts := make([]bool, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < len(rows); lo += chunk {
		hi := min(lo+chunk, len(rows))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				verdicts[i] = ShouldIncludeRow(rows[i], state, flags)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Tracef("parallel filter done: rows=%d, workers=%d, chunk=%d", len(rows), workers, chunk)

	//nolint:prealloc
	var kept []R
	for i, ok := range verdicts {
		if ok {
			kept = append(kept, rows[i])
		}
	}

	return kept, nil
}
