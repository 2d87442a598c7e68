// Package logic implements the work behind each command, independent of flag parsing.
package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/encryption"
)

// Streams are the writers a command reports to.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// RunTransform encodes, or with cfg.Decrypt decodes, every input with the configured cipher.
// Outputs are printed one per line in input order; failures are reported on Err.
func RunTransform(cfg *config.Config, s Streams) error {
	start := time.Now()

	proc, err := encryption.NewProcessor(batch(cfg))
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	results, errored, err := proc.Process()

	var size int64

	for _, res := range results {
		if res.Error != nil {
			fmt.Fprintf(s.Err, "Error processing %q: %v\n", res.Input, res.Error)

			continue
		}

		size += int64(len(res.Output))

		fmt.Fprintln(s.Out, res.Output)
	}

	if cfg.Stats {
		printStats(s.Err, stats{
			processed: len(results) - errored,
			errored:   errored,
			size:      size,
			duration:  time.Since(start),
		})
	}

	if err != nil {
		return fmt.Errorf("running %s: %w", cfg.Command, err)
	}

	return nil
}

// batch describes the processor run for cfg.
func batch(cfg *config.Config) encryption.Batch {
	return encryption.Batch{
		Cipher:   cfg.Cipher,
		Key:      cfg.Key,
		Decrypt:  cfg.Decrypt,
		Parallel: cfg.Parallel,
		Inputs:   cfg.Inputs,
	}
}

type stats struct {
	processed  int
	errored    int
	size       int64
	candidates uint64
	space      uint64
	duration   time.Duration
}

func printStats(w io.Writer, st stats) {
	fmt.Fprintf(w, "\nStats\n")

	if st.space > 0 {
		fmt.Fprintf(w, "  Candidates: %s of %s\n", humanize.Comma(int64(min(st.candidates, 1<<62))), //nolint:gosec // clamped
			humanize.Comma(int64(min(st.space, 1<<62)))) //nolint:gosec // clamped
	} else {
		fmt.Fprintf(w, "  Processed:  %d\n", st.processed)
		fmt.Fprintf(w, "  Errors:     %d\n", st.errored)
		//nolint:gosec // size is a sum of lengths
		fmt.Fprintf(w, "  Size:       %s\n", humanize.IBytes(uint64(max(0, st.size))))
	}

	fmt.Fprintf(w, "  Duration:   %s\n", st.duration.Round(time.Millisecond))
}
