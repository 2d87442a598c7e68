package logic

import (
	"errors"
	"fmt"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/interpreter"
	"github.com/idelchi/cryptsynth/internal/logging"
)

// RunEval parses cfg.Program and evaluates it once per input, binding the input to @0.
func RunEval(cfg *config.Config, s Streams) error {
	program, err := interpreter.Parse(cfg.Program)
	if err != nil {
		return fmt.Errorf("parsing program: %w", err)
	}

	logger := logging.New(s.Err, cfg.Verbose)

	in := interpreter.New(
		interpreter.WithLogger(logger),
		interpreter.WithObserver(func(step interpreter.Step) {
			logger.Debug("apply", "op", step.Op, "args", step.Args)
		}),
	)

	var errs []error

	for _, input := range cfg.Inputs {
		out, err := in.EvalText(program, input)
		if err != nil {
			fmt.Fprintf(s.Err, "Error evaluating %q: %v\n", input, err)

			errs = append(errs, err)

			continue
		}

		fmt.Fprintln(s.Out, out)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d inputs failed: %w", len(errs), len(cfg.Inputs), errors.Join(errs...))
	}

	return nil
}
