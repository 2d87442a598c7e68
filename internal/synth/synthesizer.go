package synth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/cryptsynth/internal/interpreter"
	"github.com/idelchi/cryptsynth/internal/logging"
)

// Options tune a Synthesizer.
type Options struct {
	// Parallel is the number of candidates evaluated concurrently; values below 1 mean 1.
	Parallel int
	// MaxCandidates bounds the number of candidates tried; 0 means unbounded.
	MaxCandidates int
	// Logger receives debug output; nil discards it.
	Logger *slog.Logger
}

// Solution is an accepted program and its position in the enumeration.
type Solution struct {
	Program interpreter.Node
	Index   int64
}

// Stats summarises a search.
type Stats struct {
	Space     uint64
	Evaluated int64
	Duration  time.Duration
}

// Synthesizer runs a Decider over an Enumerator.
type Synthesizer struct {
	enumerator *Enumerator
	decider    *Decider
	opts       Options
}

// New creates a Synthesizer.
func New(enumerator *Enumerator, decider *Decider, opts Options) *Synthesizer {
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}

	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	return &Synthesizer{enumerator: enumerator, decider: decider, opts: opts}
}

// Synthesize returns the accepted candidate that comes first in enumeration order.
//
// Candidates are dispatched in order to a bounded pool. Dispatching stops once a
// candidate is accepted, the budget is spent or ctx is done. Candidates already
// dispatched always finish, so every candidate ahead of the accepted one has been
// decided and the result does not depend on scheduling.
//
//nolint:cyclop // dispatch loop with three stop conditions
func (s *Synthesizer) Synthesize(ctx context.Context) (Solution, Stats, error) {
	start := time.Now()

	found, cancel := context.WithCancel(ctx)
	defer cancel()

	group := errgroup.Group{}
	group.SetLimit(s.opts.Parallel)

	var (
		mu        sync.Mutex
		best      = Solution{Index: -1}
		evaluated atomic.Int64
		next      int64
		budgetHit bool
	)

	for program := range s.enumerator.All() {
		if found.Err() != nil {
			break
		}

		if s.opts.MaxCandidates > 0 && next >= int64(s.opts.MaxCandidates) {
			budgetHit = true

			break
		}

		idx := next
		next++

		group.Go(func() error {
			evaluated.Add(1)

			if !s.decider.Accept(program) {
				return nil
			}

			s.opts.Logger.Debug("candidate accepted", "program", program, "index", idx)

			mu.Lock()
			if best.Index < 0 || idx < best.Index {
				best = Solution{Program: program, Index: idx}
			}
			mu.Unlock()

			cancel()

			return nil
		})
	}

	_ = group.Wait() //nolint:errcheck // workers never fail

	stats := Stats{
		Space:     s.enumerator.Count(),
		Evaluated: evaluated.Load(),
		Duration:  time.Since(start),
	}

	s.opts.Logger.Debug("search finished",
		"evaluated", stats.Evaluated, "space", stats.Space, "duration", stats.Duration)

	switch {
	case best.Index >= 0:
		return best, stats, nil
	case ctx.Err() != nil:
		return Solution{}, stats, fmt.Errorf("%w: search stopped after %d candidates: %w",
			ErrNoSolution, stats.Evaluated, ctx.Err())
	case budgetHit:
		return Solution{}, stats, fmt.Errorf("%w: budget of %d candidates exhausted", ErrNoSolution, s.opts.MaxCandidates)
	default:
		return Solution{}, stats, fmt.Errorf("%w: all %d candidates rejected", ErrNoSolution, stats.Evaluated)
	}
}
