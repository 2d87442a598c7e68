package interpreter

import (
	"errors"

	"github.com/idelchi/cryptsynth/internal/bits"
)

var (
	// ErrFormat is returned when an operation receives a malformed bit-string or literal.
	ErrFormat = bits.ErrFormat
	// ErrInvalidProgram is returned when a tree is not well formed: an unknown
	// operation, a wrong number of arguments, an argument of the wrong kind or an
	// unbound input.
	ErrInvalidProgram = errors.New("invalid program")
	// ErrSyntax is returned when program source cannot be parsed.
	ErrSyntax = errors.New("syntax error")
)
