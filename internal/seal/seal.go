package seal

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/tink-crypto/tink-go/v2/daead"
	"github.com/tink-crypto/tink-go/v2/tink"
)

const (
	// AesSivKeySize is the size of the derived AES-SIV key.
	AesSivKeySize = 64
	// MinKeySize is the minimum amount of key material, in bytes.
	MinKeySize = 16
	// GeneratedKeySize is the size of keys returned by GenerateKey, in bytes.
	GeneratedKeySize = 32
)

// ErrKey is returned for key material that is not hex or too short.
var ErrKey = errors.New("invalid seal key")

// Sealer seals and opens expected outputs.
type Sealer struct {
	daead  tink.DeterministicAEAD
	header []byte
}

// New creates a Sealer from hex-encoded key material of at least MinKeySize bytes.
// Surrounding whitespace and a 0x prefix are ignored.
func New(hexKey string) (*Sealer, error) {
	hexKey = strings.TrimSpace(hexKey)
	if len(hexKey) > 1 && hexKey[0] == '0' && (hexKey[1] == 'x' || hexKey[1] == 'X') {
		hexKey = hexKey[2:]
	}

	raw, err := key.FromHex(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKey, err)
	}

	if len(raw) < MinKeySize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrKey, MinKeySize, len(raw))
	}

	sivKey, err := deriveSIVKey(raw)
	if err != nil {
		return nil, err
	}

	handle, err := sealKeyset(sivKey, envelopeVersion)
	if err != nil {
		return nil, err
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating DeterministicAEAD: %w", err)
	}

	return &Sealer{daead: primitive, header: newEnvelopeHeader()}, nil
}

// FromFile creates a Sealer from a file holding hex-encoded key material.
func FromFile(path string) (*Sealer, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading seal key file: %w", err)
	}

	return New(string(data))
}

// Load returns a Sealer from whichever of hexKey or keyFile is set, or nil if neither is.
func Load(hexKey, keyFile string) (*Sealer, error) {
	switch {
	case hexKey != "":
		return New(hexKey)
	case keyFile != "":
		return FromFile(keyFile)
	default:
		return nil, nil //nolint:nilnil // no sealing requested
	}
}

// Seal returns the hex-encoded envelope for plaintext.
func (s *Sealer) Seal(plaintext string) (string, error) {
	ciphertext, err := s.daead.EncryptDeterministically([]byte(plaintext), s.header)
	if err != nil {
		return "", fmt.Errorf("sealing: %w", err)
	}

	return hex.EncodeToString(append(append([]byte{}, s.header...), ciphertext...)), nil
}

// Open recovers the plaintext of a sealed value.
func (s *Sealer) Open(sealed string) (string, error) {
	data, err := hex.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	ciphertext, err := splitEnvelope(data)
	if err != nil {
		return "", err
	}

	plaintext, err := s.daead.DecryptDeterministically(ciphertext, s.header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	return string(plaintext), nil
}

// Matches reports whether plaintext seals to sealed.
func (s *Sealer) Matches(plaintext, sealed string) bool {
	got, err := s.Seal(plaintext)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(got), []byte(strings.ToLower(sealed))) == 1
}

// GenerateKey returns fresh hex-encoded key material of GeneratedKeySize bytes.
func GenerateKey() (string, error) {
	k, err := key.New(GeneratedKeySize)
	if err != nil {
		return "", fmt.Errorf("generating key: %w", err)
	}

	return k.AsHex(), nil
}
