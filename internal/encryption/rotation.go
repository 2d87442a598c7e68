package encryption

import (
	"strings"

	"github.com/idelchi/cryptsynth/internal/bits"
)

// RotationDecode shifts every 7-bit code in ciphertext down by key, modulo 128.
func RotationDecode(ciphertext string, key int64) (string, error) {
	if err := bits.Validate(ciphertext, bits.Width); err != nil {
		return "", err
	}

	shift := shiftOf(key)

	var sb strings.Builder

	sb.Grow(len(ciphertext))

	for offset := 0; offset < len(ciphertext); offset += bits.Width {
		sb.WriteString(bits.Format(bits.Chunk(ciphertext, offset) - shift))
	}

	return sb.String(), nil
}

// RotationEncode shifts the code of every character in text up by key, modulo 128.
func RotationEncode(text string, key int64) (string, error) {
	ords, err := bits.Ordinals(text)
	if err != nil {
		return "", err
	}

	shift := shiftOf(key)

	var sb strings.Builder

	sb.Grow(len(ords) * bits.Width)

	for _, ord := range ords {
		sb.WriteString(bits.Format(ord + shift))
	}

	return sb.String(), nil
}

// shiftOf reduces key into (-128, 128) so the shift cannot overflow.
func shiftOf(key int64) int {
	return int(key % bits.Modulus)
}
