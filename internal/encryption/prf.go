package encryption

import (
	"strings"

	"github.com/idelchi/cryptsynth/internal/bits"
	"github.com/idelchi/cryptsynth/internal/keystream"
)

// PRFDecode decodes ciphertext made of 14-bit pairs. The first 7 bits of a pair
// are the tag, the last 7 the payload. The payload is XORed with the mask that
// key and tag derive through the feedback loop.
func PRFDecode(ciphertext string, key int64) (string, error) {
	if err := bits.Validate(ciphertext, bits.PairWidth); err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.Grow(len(ciphertext) / 2)

	for offset := 0; offset < len(ciphertext); offset += bits.PairWidth {
		tag := bits.Chunk(ciphertext, offset)
		payload := bits.Chunk(ciphertext, offset+bits.Width)

		sb.WriteString(bits.Format(payload ^ prfMask(key, tag)))
	}

	return sb.String(), nil
}

// PRFEncode encodes text with tags drawn from a keystream seeded with key.
func PRFEncode(text string, key int64) (string, error) {
	return PRFEncodeWithTags(text, key, key)
}

// PRFEncodeWithTags encodes text, drawing one fresh 7-bit tag per character
// from a keystream seeded with tagSeed. Any tag sequence decodes under key.
func PRFEncodeWithTags(text string, key, tagSeed int64) (string, error) {
	ords, err := bits.Ordinals(text)
	if err != nil {
		return "", err
	}

	tags := keystream.NewStream(tagSeed)

	var sb strings.Builder

	sb.Grow(len(ords) * bits.PairWidth)

	for _, ord := range ords {
		tag := tags.Draw(keystream.ByteMax)

		sb.WriteString(bits.Format(tag))
		sb.WriteString(bits.Format(ord ^ prfMask(key, tag)))
	}

	return sb.String(), nil
}

// prfMask runs the 7-round feedback loop. Each round reseeds the keystream with
// the running state, draws from [0, 16383] and keeps the low 7 bits when the
// current tag bit is 0 or the high 7 bits when it is 1. The result is in [0,127].
func prfMask(key int64, tag int) int {
	k := key

	for range bits.Width {
		v, _ := keystream.Next(keystream.Seed(k), keystream.StateMax)

		if tag%2 == 0 {
			k = int64(v % bits.Modulus)
		} else {
			k = int64(v / bits.Modulus)
		}

		tag >>= 1
	}

	return int(k)
}
