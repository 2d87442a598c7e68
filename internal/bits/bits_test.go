package bits_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/cryptsynth/internal/bits"
)

func TestEncodeChar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      rune
		want    string
		wantErr error
	}{
		{in: 0, want: "0000000"},
		{in: 'a', want: "1100001"},
		{in: 127, want: "1111111"},
		{in: 128, wantErr: bits.ErrRange},
		{in: 'é', wantErr: bits.ErrRange},
	}

	for _, tc := range tests {
		got, err := bits.EncodeChar(tc.in)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, "EncodeChar(%q)", tc.in)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "EncodeChar(%q)", tc.in)
	}
}

func TestDecodeText(t *testing.T) {
	t.Parallel()

	encoded, err := bits.Encode("hello world")
	require.NoError(t, err)

	got, err := bits.DecodeText(encoded)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	got, err = bits.DecodeText("0000000")
	require.NoError(t, err)
	assert.Equal(t, "\x00", got)

	got, err = bits.DecodeText("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bits  string
		width int
		ok    bool
	}{
		{name: "mixed", bits: "0101010", width: bits.Width, ok: true},
		{name: "all zeros", bits: "0000000", width: bits.Width, ok: true},
		{name: "all ones", bits: "11111111111111", width: bits.PairWidth, ok: true},
		{name: "empty", bits: "", width: bits.Width, ok: true},
		{name: "short", bits: "000000", width: bits.Width},
		{name: "half pair", bits: "0000000", width: bits.PairWidth},
		{name: "non binary", bits: "2", width: bits.Width},
		{name: "non binary right length", bits: "01a0101", width: bits.Width},
		{name: "whitespace", bits: "010101 ", width: bits.Width},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := bits.Validate(tc.bits, tc.width)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, bits.ErrFormat), "Validate(%q, %d) = %v", tc.bits, tc.width, err)
			}
		})
	}
}

func TestDecodeTextRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"2", "000000", "00000001"} {
		_, err := bits.DecodeText(in)
		assert.ErrorIs(t, err, bits.ErrFormat, "DecodeText(%q)", in)
	}
}

func TestMod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, bits.Mod(0))
	assert.Equal(t, 127, bits.Mod(-1))
	assert.Equal(t, 1, bits.Mod(129))
	assert.Equal(t, 0, bits.Mod(-256))
}

func TestOrdinals(t *testing.T) {
	t.Parallel()

	ords, err := bits.Ordinals("ab\x00")
	require.NoError(t, err)
	assert.Equal(t, []int{97, 98, 0}, ords)

	_, err = bits.Ordinals("naïve")
	assert.ErrorIs(t, err, bits.ErrRange)
}
