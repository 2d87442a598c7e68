package encryption_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/cryptsynth/internal/encryption"
)

func TestProcessorRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{"alpha", "beta", "gamma", "delta", "epsilon", ""}

	enc, err := encryption.NewProcessor(encryption.Batch{
		Parallel: 3,
		Cipher:   "prf",
		Key:      21,
		Inputs:   texts,
	})
	require.NoError(t, err)

	encoded, errored, err := enc.Process()
	require.NoError(t, err)
	assert.Zero(t, errored)
	require.Len(t, encoded, len(texts))

	ciphertexts := make([]string, len(encoded))

	for i, res := range encoded {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, texts[i], res.Input)
		ciphertexts[i] = res.Output
	}

	dec, err := encryption.NewProcessor(encryption.Batch{
		Parallel: 2,
		Cipher:   "prf",
		Key:      21,
		Decrypt:  true,
		Inputs:   ciphertexts,
	})
	require.NoError(t, err)

	decoded, errored, err := dec.Process()
	require.NoError(t, err)
	assert.Zero(t, errored)

	for i, res := range decoded {
		assert.Equal(t, texts[i], res.Output)
	}
}

func TestProcessorReportsFailures(t *testing.T) {
	t.Parallel()

	proc, err := encryption.NewProcessor(encryption.Batch{
		Parallel: 1,
		Cipher:   "rotation",
		Decrypt:  true,
		Inputs:   []string{"1100001", "110000", "2"},
	})
	require.NoError(t, err)

	results, errored, err := proc.Process()
	require.ErrorIs(t, err, encryption.ErrFormat)
	assert.Equal(t, 2, errored)

	assert.Equal(t, "a", results[0].Output)
	require.NoError(t, results[0].Error)
	assert.ErrorIs(t, results[1].Error, encryption.ErrFormat)
	assert.ErrorIs(t, results[2].Error, encryption.ErrFormat)
}

func TestNewProcessorUnknownCipher(t *testing.T) {
	t.Parallel()

	_, err := encryption.NewProcessor(encryption.Batch{Parallel: 1, Cipher: "rot13"})
	assert.ErrorIs(t, err, encryption.ErrUnknownCipher)
}
