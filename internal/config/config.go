// Package config holds the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Command names used to select per-command validation rules.
const (
	CommandEncrypt = "encrypt"
	CommandDecrypt = "decrypt"
	CommandEval    = "eval"
	CommandVectors = "vectors"
	CommandSynth   = "synth"
)

type Config struct {
	// Common flags
	Parallel int `validate:"min=1"`
	Quiet    bool
	Verbose  bool
	Stats    bool
	Show     bool

	// Cipher selection, for encrypt, decrypt and vectors
	Cipher string `validate:"required_if=Command encrypt,required_if=Command decrypt,required_if=Command vectors,omitempty,cipher"` //nolint:lll
	Key    int64

	// Program source, for eval
	Program string `validate:"required_if=Command eval"`

	// Example set file, read by synth and written by vectors
	Examples string `validate:"required_if=Command synth,required_if=Command vectors"`

	// Seal key material for sealed expected outputs, hex encoded
	SealKey     string `mapstructure:"seal-key"      validate:"omitempty,hexadecimal,min=32,exclusive=SealKeyFile" label:"--seal-key"      mask:"filled"` //nolint:lll
	SealKeyFile string `mapstructure:"seal-key-file" validate:"omitempty,file"                                    label:"--seal-key-file"`               //nolint:lll

	// Search bounds, for synth
	Search Search `mapstructure:",squash"`

	// Command-specific state
	Decrypt bool   `mapstructure:"-"`
	Command string `mapstructure:"-"`

	// Positional arguments
	Inputs []string `mapstructure:"-"`
}

// Search bounds the candidate space explored by synth.
type Search struct {
	MaxDepth      int           `mapstructure:"max-depth"      validate:"min=0,max=4"`
	KeyMin        int64         `mapstructure:"key-min"        validate:"ltefield=KeyMax"`
	KeyMax        int64         `mapstructure:"key-max"`
	Ops           []string      `mapstructure:"ops"            validate:"dive,required"`
	MaxCandidates int           `mapstructure:"max-candidates" validate:"min=0"`
	Timeout       time.Duration `validate:"min=0"`
}

// Display reports whether the configuration should be shown instead of run.
func (c Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	if err := registerCipher(validator); err != nil {
		return fmt.Errorf("registering cipher: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	return nil
}
