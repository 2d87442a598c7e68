package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/cryptsynth/internal/interpreter"
)

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := interpreter.Parse(`bits_to_text(rotation_decode(@0, get_int("4")))`)
	require.NoError(t, err)

	want := interpreter.Apply(interpreter.OpBitsToText,
		interpreter.Apply(interpreter.OpRotationDecode,
			interpreter.Input(0),
			interpreter.Apply(interpreter.OpGetInt, interpreter.Lit(interpreter.Text("4"))),
		),
	)

	assert.Equal(t, want, got)
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		`@0`,
		`-12`,
		`"a \"quoted\" string"`,
		`bits_to_text(@0)`,
		`prf_decode(one_time_pad_decode(@0, -3), get_int("99"))`,
		`bits_to_text(rotation_decode(rotation_decode(@1, 1), get_int("2")))`,
		`noop()`,
	}

	for _, src := range sources {
		node, err := interpreter.Parse(src)
		require.NoError(t, err, src)
		assert.Equal(t, src, node.String())

		again, err := interpreter.Parse(node.String())
		require.NoError(t, err, src)
		assert.Equal(t, node, again)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	sources := []string{
		``,
		`bits_to_text(`,
		`bits_to_text(@0`,
		`bits_to_text(@0))`,
		`bits_to_text(@x)`,
		`rotation_decode(@0 4)`,
		`get_int("4`,
		`- "4"`,
		`99999999999999999999`,
	}

	for _, src := range sources {
		_, err := interpreter.Parse(src)
		assert.ErrorIs(t, err, interpreter.ErrSyntax, "Parse(%q)", src)
	}
}
