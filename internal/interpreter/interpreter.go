// Package interpreter evaluates operation trees in postorder.
//
// Every child of a call is evaluated, depth first and left to right, before the
// call's own operation runs, so operations only ever see fully resolved values.
// The first failure anywhere in the tree aborts the evaluation and is returned
// to the caller unchanged apart from wrapping; there is no partial result.
package interpreter

import (
	"fmt"
	"log/slog"

	"github.com/idelchi/cryptsynth/internal/logging"
)

// Step describes one operation invocation, reported to an observer after the
// operation's arguments are resolved and before it runs.
type Step struct {
	Op   string
	Args []Value
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithObserver registers fn to be called for every operation invocation.
func WithObserver(fn func(Step)) Option {
	return func(in *Interpreter) {
		in.observer = fn
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithOperations registers additional operations, replacing builtins of the same name.
func WithOperations(ops ...Operation) Option {
	return func(in *Interpreter) {
		for _, op := range ops {
			in.ops[op.Name] = op
		}
	}
}

// Interpreter evaluates trees against a fixed operation set.
// It holds no per-evaluation state and is safe for concurrent use
// as long as the observer is.
type Interpreter struct {
	ops      map[string]Operation
	observer func(Step)
	logger   *slog.Logger
}

// New returns an interpreter with the built-in operations.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		ops:    make(map[string]Operation),
		logger: logging.NewNop(),
	}

	for _, op := range Builtins() {
		in.ops[op.Name] = op
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Eval evaluates root with inputs bound to its Param leaves.
func (in *Interpreter) Eval(root Node, inputs ...Value) (Value, error) {
	v, err := in.eval(root, inputs)
	if err != nil {
		in.logger.Debug("evaluation failed", "program", root, "error", err)

		return Value{}, err
	}

	return v, nil
}

// EvalText evaluates root on a single string input and requires a string result.
func (in *Interpreter) EvalText(root Node, input string) (string, error) {
	v, err := in.Eval(root, Text(input))
	if err != nil {
		return "", err
	}

	return v.Str()
}

func (in *Interpreter) eval(node Node, inputs []Value) (Value, error) {
	switch n := node.(type) {
	case Literal:
		return n.Value, nil
	case Param:
		if n.Index < 0 || n.Index >= len(inputs) {
			return Value{}, fmt.Errorf("%w: input @%d is not bound (%d inputs)", ErrInvalidProgram, n.Index, len(inputs))
		}

		return inputs[n.Index], nil
	case Call:
		return in.call(n, inputs)
	default:
		return Value{}, fmt.Errorf("%w: unsupported node %T", ErrInvalidProgram, node)
	}
}

func (in *Interpreter) call(c Call, inputs []Value) (Value, error) {
	op, ok := in.ops[c.Op]
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidProgram, c.Op)
	}

	if len(c.Args) != op.Arity() {
		return Value{}, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidProgram, c.Op, op.Arity(), len(c.Args))
	}

	args := make([]Value, len(c.Args))

	for i, child := range c.Args {
		v, err := in.eval(child, inputs)
		if err != nil {
			return Value{}, err
		}

		if v.Kind() != op.Params[i] {
			return Value{}, fmt.Errorf("%w: argument %d of %s must be %s, got %s",
				ErrInvalidProgram, i, c.Op, op.Params[i], v.Kind())
		}

		args[i] = v
	}

	if in.observer != nil {
		in.observer(Step{Op: c.Op, Args: args})
	}

	v, err := op.Apply(args)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", c.Op, err)
	}

	if v.Kind() != op.Result {
		return Value{}, fmt.Errorf("%w: %s returned %s, declared %s", ErrInvalidProgram, c.Op, v.Kind(), op.Result)
	}

	return v, nil
}
