// Package bits converts between text and bit-strings of fixed-width 7-bit codes.
//
// A bit-string is a string over the alphabet {'0','1'} whose length is a multiple
// of the code width. A string made of a single repeated symbol and the empty
// string are both valid.
package bits

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Width is the number of characters in one encoded character.
	Width = 7
	// PairWidth is the width of a tag/payload pair used by the feedback-PRF transform.
	PairWidth = 2 * Width
	// Modulus is the size of the 7-bit value space.
	Modulus = 1 << Width
)

var (
	// ErrFormat is returned when a bit-string fails its alphabet or length invariant.
	ErrFormat = errors.New("malformed bit-string")
	// ErrRange is returned when a character cannot be represented as a 7-bit code.
	ErrRange = errors.New("character out of 7-bit range")
)

// Validate checks that bits is drawn from {'0','1'} and that its length is a
// multiple of width. The alphabet is checked before the length.
func Validate(bits string, width int) error {
	if idx := strings.IndexFunc(bits, func(r rune) bool { return r != '0' && r != '1' }); idx >= 0 {
		return fmt.Errorf("%w: invalid symbol %q at offset %d", ErrFormat, bits[idx], idx)
	}

	if len(bits)%width != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of %d", ErrFormat, len(bits), width)
	}

	return nil
}

// Chunk parses the 7-bit code starting at offset.
// The caller must have validated bits beforehand.
func Chunk(bits string, offset int) int {
	v, _ := strconv.ParseUint(bits[offset:offset+Width], 2, Width) //nolint:errcheck // validated by caller

	return int(v)
}

// Format renders v (taken modulo 128) as a zero-padded 7-bit code.
func Format(v int) string {
	return fmt.Sprintf("%07b", Mod(v))
}

// Mod returns v modulo 128 as a value in [0,127], for any sign of v.
func Mod(v int) int {
	return ((v % Modulus) + Modulus) % Modulus
}

// EncodeChar maps a character to its 7-bit code.
func EncodeChar(c rune) (string, error) {
	if c < 0 || c >= Modulus {
		return "", fmt.Errorf("%w: %q has ordinal %d", ErrRange, c, c)
	}

	return Format(int(c)), nil
}

// Encode concatenates the 7-bit codes of every character in text.
func Encode(text string) (string, error) {
	var sb strings.Builder

	sb.Grow(len(text) * Width)

	for _, c := range text {
		code, err := EncodeChar(c)
		if err != nil {
			return "", err
		}

		sb.WriteString(code)
	}

	return sb.String(), nil
}

// DecodeText splits bits into 7-bit codes and maps each to its character.
func DecodeText(bits string) (string, error) {
	if err := Validate(bits, Width); err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.Grow(len(bits) / Width)

	for offset := 0; offset < len(bits); offset += Width {
		sb.WriteRune(rune(Chunk(bits, offset)))
	}

	return sb.String(), nil
}

// Ordinals returns the code point of every character in text, failing on the
// first one outside the 7-bit range.
func Ordinals(text string) ([]int, error) {
	ords := make([]int, 0, len(text))

	for _, c := range text {
		if c < 0 || c >= Modulus {
			return nil, fmt.Errorf("%w: %q has ordinal %d", ErrRange, c, c)
		}

		ords = append(ords, int(c))
	}

	return ords, nil
}
