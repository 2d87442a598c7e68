package logic

import (
	"context"
	"fmt"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/interpreter"
	"github.com/idelchi/cryptsynth/internal/logging"
	"github.com/idelchi/cryptsynth/internal/seal"
	"github.com/idelchi/cryptsynth/internal/synth"
)

// RunSynth loads the example set and prints the first program in enumeration order
// that maps every example input to its expected output.
func RunSynth(ctx context.Context, cfg *config.Config, s Streams) error {
	logger := logging.New(s.Err, cfg.Verbose)

	examples, err := synth.LoadExamples(cfg.Examples)
	if err != nil {
		return err
	}

	sealer, err := seal.Load(cfg.SealKey, cfg.SealKeyFile)
	if err != nil {
		return err
	}

	enumerator, err := synth.NewEnumerator(cfg.Search)
	if err != nil {
		return err
	}

	decider, err := synth.NewDecider(interpreter.New(), examples, sealer)
	if err != nil {
		return err
	}

	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	logger.Debug("searching",
		"examples", len(examples), "space", enumerator.Count(), "parallel", cfg.Parallel)

	solution, st, err := synth.New(enumerator, decider, synth.Options{
		Parallel:      cfg.Parallel,
		MaxCandidates: cfg.Search.MaxCandidates,
		Logger:        logger,
	}).Synthesize(ctx)

	if cfg.Stats {
		//nolint:gosec // Evaluated is a non-negative counter
		printStats(s.Err, stats{candidates: uint64(st.Evaluated), space: st.Space, duration: st.Duration})
	}

	if err != nil {
		return fmt.Errorf("synthesizing from %q: %w", cfg.Examples, err)
	}

	fmt.Fprintln(s.Out, solution.Program)

	return nil
}
