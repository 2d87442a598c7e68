package synth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/idelchi/cryptsynth/internal/fileutil"
)

// Example pairs a ciphertext bit-string with the text it must decode to.
// The expected text is given either in the clear (Output) or sealed (Sealed).
type Example struct {
	Input  string `json:"input"            yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Sealed string `json:"sealed,omitempty" yaml:"sealed,omitempty"`
}

// IsSealed reports whether the expected output is sealed.
func (e Example) IsSealed() bool {
	return e.Sealed != ""
}

// ExampleSet is the on-disk layout of an example file.
type ExampleSet struct {
	Examples []Example `json:"examples" yaml:"examples"`
}

// LoadExamples reads an example set from a YAML (.yml, .yaml) or
// JSON-with-comments (.json, .jsonc) file.
func LoadExamples(path string) ([]Example, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading examples file %q: %w", path, err)
	}

	var set ExampleSet

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &set)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSONInPlace(data), &set)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrExamples, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %w", ErrExamples, path, err)
	}

	if err := validateExamples(set.Examples); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return set.Examples, nil
}

// WriteExamples atomically writes examples to path, in the format implied by its extension.
func WriteExamples(path string, examples []Example) (int64, error) {
	if err := validateExamples(examples); err != nil {
		return 0, err
	}

	set := ExampleSet{Examples: examples}

	var (
		data []byte
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		data, err = yaml.Marshal(set)
	case ".json", ".jsonc":
		data, err = json.MarshalIndent(set, "", "  ")
		data = append(data, '\n')
	default:
		return 0, fmt.Errorf("%w: unsupported file extension %q", ErrExamples, ext)
	}

	if err != nil {
		return 0, fmt.Errorf("encoding examples: %w", err)
	}

	const ownerReadWrite = 0o600

	return fileutil.WriteFile(path, data, ownerReadWrite)
}

func validateExamples(examples []Example) error {
	if len(examples) == 0 {
		return fmt.Errorf("%w: no examples", ErrExamples)
	}

	for i, ex := range examples {
		if ex.Output != "" && ex.Sealed != "" {
			return fmt.Errorf("%w: example %d has both output and sealed output", ErrExamples, i)
		}
	}

	return nil
}
