package seal

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	envelopeMagic   = "CSYN"
	envelopeVersion = byte(1)

	envelopeHeaderSize = len(envelopeMagic) + 1
)

// ErrProcessing indicates a sealed value that cannot be opened.
var ErrProcessing = errors.New("envelope processing error")

func newEnvelopeHeader() []byte {
	header := make([]byte, envelopeHeaderSize)
	copy(header, envelopeMagic)

	header[len(envelopeMagic)] = envelopeVersion

	return header
}

// splitEnvelope validates the header of data and returns the ciphertext after it.
func splitEnvelope(data []byte) ([]byte, error) {
	if len(data) < envelopeHeaderSize {
		return nil, fmt.Errorf("%w: envelope too short", ErrProcessing)
	}

	if !bytes.Equal(data[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return nil, fmt.Errorf("%w: invalid envelope magic", ErrProcessing)
	}

	if version := data[len(envelopeMagic)]; version != envelopeVersion {
		return nil, fmt.Errorf("%w: unsupported envelope version %d", ErrProcessing, version)
	}

	return data[envelopeHeaderSize:], nil
}

// deriveSIVKey stretches key material of any accepted length into an AES-SIV key.
func deriveSIVKey(key []byte) ([]byte, error) {
	hkdfReader := hkdf.New(sha256.New, key, nil, []byte("cryptsynth/seal"))
	derived := make([]byte, AesSivKeySize)

	if _, err := io.ReadFull(hkdfReader, derived); err != nil {
		return nil, fmt.Errorf("deriving seal key: %w", err)
	}

	return derived, nil
}
