package synth

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/idelchi/cryptsynth/internal/config"
	"github.com/idelchi/cryptsynth/internal/encryption"
	"github.com/idelchi/cryptsynth/internal/interpreter"
)

// Enumerator yields every candidate program within the configured bounds.
type Enumerator struct {
	ops      []string
	keyMin   int64
	keyMax   int64
	maxDepth int
}

// NewEnumerator builds an enumerator from search bounds. An empty operation list
// selects every decoding transform. Operations may be named by cipher
// ("rotation", "otp") or by operation ("rotation_decode").
func NewEnumerator(search config.Search) (*Enumerator, error) {
	if search.KeyMin > search.KeyMax {
		return nil, fmt.Errorf("%w: key range [%d, %d] is empty", ErrSearch, search.KeyMin, search.KeyMax)
	}

	if search.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: negative depth %d", ErrSearch, search.MaxDepth)
	}

	var ops []string

	seen := make(map[string]bool)

	for _, name := range search.Ops {
		cipher, err := encryption.ParseCipher(strings.TrimSuffix(name, "_decode"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSearch, err)
		}

		if op := cipher.Operation(); !seen[op] {
			seen[op] = true
			ops = append(ops, op)
		}
	}

	if len(ops) == 0 {
		for _, cipher := range encryption.Ciphers() {
			ops = append(ops, cipher.Operation())
		}
	}

	return &Enumerator{
		ops:      ops,
		keyMin:   search.KeyMin,
		keyMax:   search.KeyMax,
		maxDepth: search.MaxDepth,
	}, nil
}

// Count returns the number of candidates All yields, saturating at math.MaxUint64.
func (e *Enumerator) Count() uint64 {
	keys := uint64(e.keyMax-e.keyMin) + 1

	hi, branching := bits.Mul64(uint64(len(e.ops)), keys)
	if hi != 0 || keys == 0 {
		branching = math.MaxUint64
	}

	var total uint64

	level := uint64(1)

	for depth := 0; depth <= e.maxDepth; depth++ {
		sum, carry := bits.Add64(total, level, 0)
		if carry != 0 {
			return math.MaxUint64
		}

		total = sum

		hi, next := bits.Mul64(level, branching)
		if hi != 0 {
			if depth < e.maxDepth {
				return math.MaxUint64
			}

			break
		}

		level = next
	}

	return total
}

// All yields candidates by increasing depth. Within a depth, the innermost
// transform varies slowest, and within a transform keys ascend.
func (e *Enumerator) All() iter.Seq[interpreter.Node] {
	return func(yield func(interpreter.Node) bool) {
		emit := func(body interpreter.Node) bool {
			return yield(interpreter.Apply(interpreter.OpBitsToText, body))
		}

		for depth := 0; depth <= e.maxDepth; depth++ {
			if !e.chains(interpreter.Input(0), depth, emit) {
				return
			}
		}
	}
}

func (e *Enumerator) chains(inner interpreter.Node, depth int, yield func(interpreter.Node) bool) bool {
	if depth == 0 {
		return yield(inner)
	}

	for _, op := range e.ops {
		for k := e.keyMin; ; k++ {
			if !e.chains(interpreter.Apply(op, inner, KeyLiteral(k)), depth-1, yield) {
				return false
			}

			if k == e.keyMax {
				break
			}
		}
	}

	return true
}

// KeyLiteral returns the get_int leaf for key k.
func KeyLiteral(k int64) interpreter.Node {
	return interpreter.Apply(interpreter.OpGetInt, interpreter.Lit(interpreter.Text(strconv.FormatInt(k, 10))))
}
