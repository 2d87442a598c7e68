package synth

import (
	"fmt"

	"github.com/idelchi/cryptsynth/internal/interpreter"
	"github.com/idelchi/cryptsynth/internal/seal"
)

// Decider accepts programs that reproduce every example.
type Decider struct {
	interpreter *interpreter.Interpreter
	examples    []Example
	sealer      *seal.Sealer
}

// NewDecider creates a decider over examples. sealer may be nil when no example is sealed.
func NewDecider(in *interpreter.Interpreter, examples []Example, sealer *seal.Sealer) (*Decider, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: no examples", ErrExamples)
	}

	for i, ex := range examples {
		if ex.IsSealed() && sealer == nil {
			return nil, fmt.Errorf("%w: example %d is sealed but no seal key was given", ErrExamples, i)
		}
	}

	return &Decider{interpreter: in, examples: examples, sealer: sealer}, nil
}

// Accept reports whether program maps every example input to its expected output.
// An evaluation error on any example rejects the program.
func (d *Decider) Accept(program interpreter.Node) bool {
	for _, ex := range d.examples {
		got, err := d.interpreter.EvalText(program, ex.Input)
		if err != nil {
			return false
		}

		if !d.matches(ex, got) {
			return false
		}
	}

	return true
}

func (d *Decider) matches(ex Example, got string) bool {
	if ex.IsSealed() {
		return d.sealer.Matches(got, ex.Sealed)
	}

	return got == ex.Output
}
