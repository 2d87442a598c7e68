package logic

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/encryption"
	"github.com/idelchi/cryptsynth/internal/seal"
	"github.com/idelchi/cryptsynth/internal/synth"
)

// RunVectors encodes every input plaintext and writes the pairs to cfg.Examples.
// With a seal key the plaintexts are stored sealed.
func RunVectors(cfg *config.Config, s Streams) error {
	start := time.Now()

	sealer, err := seal.Load(cfg.SealKey, cfg.SealKeyFile)
	if err != nil {
		return err
	}

	proc, err := encryption.NewProcessor(batch(cfg))
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	results, _, err := proc.Process()
	if err != nil {
		return fmt.Errorf("encoding examples: %w", err)
	}

	examples := make([]synth.Example, len(results))

	for i, res := range results {
		examples[i] = synth.Example{Input: res.Output, Output: res.Input}

		if sealer == nil {
			continue
		}

		sealed, err := sealer.Seal(res.Input)
		if err != nil {
			return fmt.Errorf("sealing example %d: %w", i, err)
		}

		examples[i].Output = ""
		examples[i].Sealed = sealed
	}

	size, err := synth.WriteExamples(cfg.Examples, examples)
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		//nolint:gosec // size comes from a successful write
		fmt.Fprintf(s.Out, "Wrote %d examples to %q (%s)\n", len(examples), cfg.Examples, humanize.IBytes(uint64(size)))
	}

	if cfg.Stats {
		printStats(s.Err, stats{processed: len(examples), size: size, duration: time.Since(start)})
	}

	return nil
}
