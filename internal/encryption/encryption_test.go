package encryption_test

import (
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/cryptsynth/internal/bits"
	"github.com/idelchi/cryptsynth/internal/encryption"
)

// Vector is a single golden ciphertext.
type Vector struct {
	Text string `yaml:"text"`
	Key  int64  `yaml:"key"`
	Bits string `yaml:"bits"`
}

// Group collects the vectors of one cipher.
type Group struct {
	Name  string   `yaml:"name"`
	Cases []Vector `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	require.NoError(t, err)

	var groups []Group
	require.NoError(t, yaml.Unmarshal(data, &groups))
	require.NotEmpty(t, groups)

	return groups
}

func TestGoldenVectors(t *testing.T) {
	t.Parallel()

	for _, g := range loadVectors(t) {
		cipher, err := encryption.ParseCipher(g.Name)
		require.NoError(t, err)

		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for _, v := range g.Cases {
				encoded, err := cipher.Encode(v.Text, v.Key)
				require.NoError(t, err)
				assert.Equal(t, v.Bits, encoded, "Encode(%q, %d)", v.Text, v.Key)

				decoded, err := cipher.Decode(v.Bits, v.Key)
				require.NoError(t, err)

				text, err := bits.DecodeText(decoded)
				require.NoError(t, err)
				assert.Equal(t, v.Text, text, "Decode(%q, %d)", v.Bits, v.Key)
			}
		})
	}
}

func printableASCII() string {
	var sb strings.Builder

	for c := ' '; c <= '~'; c++ {
		sb.WriteRune(c)
	}

	return sb.String()
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{"", "a", "abc", "hello world", printableASCII(), "\x00\x01\x7f"}
	keys := []int64{0, 1, 4, 36, 127, 128, 1000, -1, -4, -129, math.MaxInt64, math.MinInt64}

	for _, cipher := range encryption.Ciphers() {
		t.Run(cipher.String(), func(t *testing.T) {
			t.Parallel()

			for _, text := range texts {
				for _, key := range keys {
					encoded, err := cipher.Encode(text, key)
					require.NoError(t, err)

					decoded, err := cipher.Decode(encoded, key)
					require.NoError(t, err)

					got, err := bits.DecodeText(decoded)
					require.NoError(t, err)
					assert.Equal(t, text, got, "key %d", key)
				}
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	check := func(encode, decode func(string, int64) (string, error), text string, key int64) {
		t.Helper()

		encoded, err := encode(text, key)
		require.NoError(t, err)

		decoded, err := decode(encoded, key)
		require.NoError(t, err)

		got, err := bits.DecodeText(decoded)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}

	check(encryption.RotationEncode, encryption.RotationDecode, "abc", 4)
	check(encryption.OneTimePadEncode, encryption.OneTimePadDecode, "hello world", 36)
	check(encryption.PRFEncode, encryption.PRFDecode, "abc", 4)

	got, err := encryption.RotationDecode("0000000", 0)
	require.NoError(t, err)
	assert.Equal(t, "0000000", got)

	_, err = encryption.RotationDecode("000000", 0)
	require.ErrorIs(t, err, encryption.ErrFormat)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cipher encryption.Cipher
		bits   string
	}{
		{cipher: encryption.CipherRotation, bits: "000000"},
		{cipher: encryption.CipherRotation, bits: "00000002"},
		{cipher: encryption.CipherRotation, bits: "2"},
		{cipher: encryption.CipherOneTimePad, bits: "01010101"},
		{cipher: encryption.CipherOneTimePad, bits: "010x101"},
		{cipher: encryption.CipherPRF, bits: "0000000"},
		{cipher: encryption.CipherPRF, bits: "000000000000000000000"},
		{cipher: encryption.CipherPRF, bits: "0000000 0000000"},
	}

	for _, tc := range tests {
		for _, key := range []int64{0, 5, -5} {
			_, err := tc.cipher.Decode(tc.bits, key)
			assert.ErrorIs(t, err, encryption.ErrFormat, "%s.Decode(%q, %d)", tc.cipher, tc.bits, key)
		}
	}
}

func TestEncodeRejectsWideCharacters(t *testing.T) {
	t.Parallel()

	for _, cipher := range encryption.Ciphers() {
		_, err := cipher.Encode("café", 1)
		assert.ErrorIs(t, err, encryption.ErrRange, cipher.String())
	}
}

func TestPRFAcceptsAnyTags(t *testing.T) {
	t.Parallel()

	for tagSeed := range int64(16) {
		encoded, err := encryption.PRFEncodeWithTags("tagged", 9, tagSeed)
		require.NoError(t, err)
		require.Len(t, encoded, len("tagged")*bits.PairWidth)

		decoded, err := encryption.PRFDecode(encoded, 9)
		require.NoError(t, err)

		got, err := bits.DecodeText(decoded)
		require.NoError(t, err)
		assert.Equal(t, "tagged", got, fmt.Sprintf("tag seed %d", tagSeed))
	}
}

func TestDecodeWithWrongKeyDiffers(t *testing.T) {
	t.Parallel()

	for _, cipher := range encryption.Ciphers() {
		encoded, err := cipher.Encode("the quick brown fox", 11)
		require.NoError(t, err)

		decoded, err := cipher.Decode(encoded, 12)
		require.NoError(t, err)

		got, err := bits.DecodeText(decoded)
		require.NoError(t, err)
		assert.NotEqual(t, "the quick brown fox", got, cipher.String())
	}
}

func TestParseCipher(t *testing.T) {
	t.Parallel()

	tests := map[string]encryption.Cipher{
		"rotation":     encryption.CipherRotation,
		"Caesar":       encryption.CipherRotation,
		"one-time-pad": encryption.CipherOneTimePad,
		"otp":          encryption.CipherOneTimePad,
		"PRF":          encryption.CipherPRF,
	}

	for name, want := range tests {
		got, err := encryption.ParseCipher(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := encryption.ParseCipher("vigenere")
	assert.ErrorIs(t, err, encryption.ErrUnknownCipher)
}
