package encryption

import (
	"strings"

	"github.com/idelchi/cryptsynth/internal/bits"
	"github.com/idelchi/cryptsynth/internal/keystream"
)

// OneTimePadDecode XORs every 7-bit code in ciphertext with successive draws
// of the keystream seeded once with key.
func OneTimePadDecode(ciphertext string, key int64) (string, error) {
	if err := bits.Validate(ciphertext, bits.Width); err != nil {
		return "", err
	}

	stream := keystream.NewStream(key)

	var sb strings.Builder

	sb.Grow(len(ciphertext))

	for offset := 0; offset < len(ciphertext); offset += bits.Width {
		sb.WriteString(bits.Format(bits.Chunk(ciphertext, offset) ^ stream.Draw(keystream.ByteMax)))
	}

	return sb.String(), nil
}

// OneTimePadEncode XORs the code of every character in text with successive
// draws of the keystream seeded once with key.
func OneTimePadEncode(text string, key int64) (string, error) {
	ords, err := bits.Ordinals(text)
	if err != nil {
		return "", err
	}

	stream := keystream.NewStream(key)

	var sb strings.Builder

	sb.Grow(len(ords) * bits.Width)

	for _, ord := range ords {
		sb.WriteString(bits.Format(ord ^ stream.Draw(keystream.ByteMax)))
	}

	return sb.String(), nil
}
