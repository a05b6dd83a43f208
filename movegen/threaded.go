package movegen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/domino14/lettersinarow/board"
)

// searchThreaded runs the row tasks on up to s.threads goroutines. Each
// task fills its own collector and the collectors are merged at the end.
// Merging is order-independent, so the result matches search.
func (s *Solver) searchThreaded(ctx context.Context, st, tr *board.State, tasks []rowTask,
	topN int) (*BestCandidates, int, error) {

	partial := make([]*BestCandidates, len(tasks))
	counts := make([]int, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for i, task := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[i] = NewBestCandidates(topN)
			counts[i] = s.runTask(st, tr, task, partial[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	best := NewBestCandidates(topN)
	emitted := 0
	for i := range partial {
		best.Merge(partial[i])
		emitted += counts[i]
	}
	return best, emitted, nil
}
