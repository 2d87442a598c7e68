package encryption

import (
	"fmt"
	"strings"
)

// Cipher identifies one of the supported transforms.
type Cipher byte

const (
	// CipherRotation is the additive shift over 7-bit codes.
	CipherRotation Cipher = iota
	// CipherOneTimePad XORs each code with a seeded keystream.
	CipherOneTimePad
	// CipherPRF is the tagged feedback-PRF stream cipher.
	CipherPRF
)

// Ciphers lists every cipher in a stable order.
func Ciphers() []Cipher {
	return []Cipher{CipherRotation, CipherOneTimePad, CipherPRF}
}

// String returns the canonical name of the cipher.
func (c Cipher) String() string {
	switch c {
	case CipherRotation:
		return "rotation"
	case CipherOneTimePad:
		return "one_time_pad"
	case CipherPRF:
		return "prf"
	default:
		return fmt.Sprintf("cipher(%d)", byte(c))
	}
}

// Operation returns the name of the interpreter operation that decodes c.
func (c Cipher) Operation() string {
	return c.String() + "_decode"
}

// ParseCipher resolves a cipher by name. Hyphens and case are ignored, and the
// aliases "caesar" and "otp" are accepted.
func ParseCipher(name string) (Cipher, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "_") {
	case "rotation", "caesar":
		return CipherRotation, nil
	case "one_time_pad", "otp":
		return CipherOneTimePad, nil
	case "prf", "prf_scheme":
		return CipherPRF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}

// Encode builds the bit-string for text under c.
func (c Cipher) Encode(text string, key int64) (string, error) {
	switch c {
	case CipherRotation:
		return RotationEncode(text, key)
	case CipherOneTimePad:
		return OneTimePadEncode(text, key)
	case CipherPRF:
		return PRFEncode(text, key)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownCipher, c)
	}
}

// Decode inverts Encode, returning the recovered 7-bit codes as a bit-string.
func (c Cipher) Decode(bits string, key int64) (string, error) {
	switch c {
	case CipherRotation:
		return RotationDecode(bits, key)
	case CipherOneTimePad:
		return OneTimePadDecode(bits, key)
	case CipherPRF:
		return PRFDecode(bits, key)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownCipher, c)
	}
}
