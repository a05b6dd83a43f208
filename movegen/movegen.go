// Package movegen finds the best-scoring placements of a rack on a board.
// Each row is searched on its own, with prefix and substring lookups in
// the vocabulary cutting off branches that cannot make a word. Columns are
// searched as rows of the transposed board.
package movegen

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lettersinarow/board"
	"github.com/domino14/lettersinarow/lexicon"
	"github.com/domino14/lettersinarow/move"
	"github.com/domino14/lettersinarow/scoring"
)

// MaxRackSize is the most tiles a search can track.
const MaxRackSize = 64

type Solver struct {
	scheme     *scoring.Scheme
	transposed *scoring.Scheme
	vocab      *lexicon.Vocabulary
	threads    int
}

type SolverOption func(*Solver)

// WithThreads searches up to n rows at once. Results do not depend on n.
func WithThreads(n int) SolverOption {
	return func(s *Solver) {
		if n < 1 {
			n = 1
		}
		s.threads = n
	}
}

func NewSolver(scheme *scoring.Scheme, vocab *lexicon.Vocabulary, opts ...SolverOption) *Solver {
	s := &Solver{
		scheme:  scheme,
		vocab:   vocab,
		threads: 1,
	}
	if scheme != nil {
		s.transposed = scheme.Transpose()
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// BestWords is a shortcut for a single-threaded Solver.
func BestWords(ctx context.Context, st *board.State, scheme *scoring.Scheme,
	vocab *lexicon.Vocabulary, topN int) ([]move.Scored, error) {

	return NewSolver(scheme, vocab).BestWords(ctx, st, topN)
}

func (s *Solver) validate(st *board.State) error {
	if s.scheme == nil {
		return fmt.Errorf("%w: no scoring scheme", scoring.ErrConfiguration)
	}
	if s.vocab == nil {
		return fmt.Errorf("%w: no vocabulary", scoring.ErrConfiguration)
	}
	if err := s.scheme.Validate(st.Rows(), st.Cols()); err != nil {
		return err
	}
	if n := len(st.Rack().Unused()); n > MaxRackSize {
		return fmt.Errorf("%w: rack has %d tiles, at most %d are supported",
			scoring.ErrConfiguration, n, MaxRackSize)
	}
	return nil
}

// BestWords returns up to topN placements, best first. Ties in score are
// broken by move.Candidate.Compare, so the result is fully determined by
// the inputs.
func (s *Solver) BestWords(ctx context.Context, st *board.State, topN int) ([]move.Scored, error) {
	if err := s.validate(st); err != nil {
		return nil, err
	}
	ts := time.Now()
	tasks := make([]rowTask, 0, st.Rows()+st.Cols())
	for row := 0; row < st.Rows(); row++ {
		tasks = append(tasks, rowTask{row: row})
	}
	for col := 0; col < st.Cols(); col++ {
		tasks = append(tasks, rowTask{row: col, vertical: true})
	}
	tr := st.Transpose()

	var best *BestCandidates
	var emitted int
	var err error
	if s.threads > 1 {
		best, emitted, err = s.searchThreaded(ctx, st, tr, tasks, topN)
	} else {
		best, emitted, err = s.search(ctx, st, tr, tasks, topN)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("rows", len(tasks)).
		Int("emitted", emitted).
		Int("threads", s.threads).
		Dur("elapsed", time.Since(ts)).
		Msg("best-words")
	return best.Results(), nil
}

func (s *Solver) runTask(st, tr *board.State, task rowTask, best *BestCandidates) int {
	b, scheme := st, s.scheme
	if task.vertical {
		b, scheme = tr, s.transposed
	}
	rs := newRowSearch(b, scheme, s.vocab, task.row, recorder(best, task))
	rs.search()
	return rs.emitted
}

func (s *Solver) search(ctx context.Context, st, tr *board.State, tasks []rowTask,
	topN int) (*BestCandidates, int, error) {

	best := NewBestCandidates(topN)
	emitted := 0
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		emitted += s.runTask(st, tr, task, best)
	}
	return best, emitted, nil
}
