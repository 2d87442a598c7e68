package encryption

import (
	"errors"

	"github.com/idelchi/cryptsynth/internal/bits"
)

var (
	// ErrFormat is returned when a bit-string fails its alphabet or length invariant.
	ErrFormat = bits.ErrFormat
	// ErrRange is returned when a plaintext character does not fit in 7 bits.
	ErrRange = bits.ErrRange
	// ErrUnknownCipher is returned when a cipher name cannot be resolved.
	ErrUnknownCipher = errors.New("unknown cipher")
)
