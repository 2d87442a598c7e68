package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idelchi/cryptsynth/internal/bits"
	"github.com/idelchi/cryptsynth/internal/encryption"
)

// Names of the built-in operations.
const (
	OpGetInt           = "get_int"
	OpRotationDecode   = "rotation_decode"
	OpOneTimePadDecode = "one_time_pad_decode"
	OpPRFDecode        = "prf_decode"
	OpBitsToText       = "bits_to_text"
)

// Operation is a typed function the interpreter can dispatch to.
// Apply receives arguments whose kinds already match Params and must
// return a value of kind Result.
type Operation struct {
	Name   string
	Params []Kind
	Result Kind
	Apply  func(args []Value) (Value, error)
}

// Arity returns the number of arguments the operation takes.
func (o Operation) Arity() int {
	return len(o.Params)
}

// Builtins returns the built-in operations.
func Builtins() []Operation {
	ops := []Operation{
		{
			Name:   OpGetInt,
			Params: []Kind{KindString},
			Result: KindInt,
			Apply:  getInt,
		},
		{
			Name:   OpBitsToText,
			Params: []Kind{KindString},
			Result: KindString,
			Apply: func(args []Value) (Value, error) {
				text, err := bits.DecodeText(args[0].str)
				if err != nil {
					return Value{}, err
				}

				return Text(text), nil
			},
		},
	}

	for _, cipher := range encryption.Ciphers() {
		ops = append(ops, decodeOperation(cipher))
	}

	return ops
}

// decodeOperation wraps the decoding direction of cipher as a (bits, key) -> bits operation.
func decodeOperation(cipher encryption.Cipher) Operation {
	return Operation{
		Name:   cipher.Operation(),
		Params: []Kind{KindString, KindInt},
		Result: KindString,
		Apply: func(args []Value) (Value, error) {
			in, err := args[0].Str()
			if err != nil {
				return Value{}, err
			}

			key, err := args[1].Int64()
			if err != nil {
				return Value{}, err
			}

			decoded, err := cipher.Decode(in, key)
			if err != nil {
				return Value{}, err
			}

			return Text(decoded), nil
		},
	}
}

func getInt(args []Value) (Value, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(args[0].str), 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: integer literal %q", ErrFormat, args[0].str)
	}

	return Int(n), nil
}
