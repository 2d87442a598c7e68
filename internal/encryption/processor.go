package encryption

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/cryptsynth/internal/bits"
)

// Batch describes one run of a Processor.
type Batch struct {
	// Cipher names the transform, as accepted by ParseCipher
	Cipher string
	// Key is the integer key for every input
	Key int64
	// Decrypt selects decoding bit-strings back to text instead of encoding text
	Decrypt bool
	// Parallel bounds the number of inputs transformed at once
	Parallel int
	// Inputs are the texts or bit-strings to transform
	Inputs []string
}

// Processor applies one cipher, in one direction, to a batch of inputs.
type Processor struct {
	// cfg contains the batch being processed
	cfg Batch

	// cipher is the resolved transform
	cipher Cipher

	// results channels processing outcomes to the collector goroutine
	results chan Result
}

// NewProcessor creates a new Processor for the given batch.
func NewProcessor(cfg Batch) (*Processor, error) {
	cipher, err := ParseCipher(cfg.Cipher)
	if err != nil {
		return nil, err
	}

	return &Processor{
		cfg:     cfg,
		cipher:  cipher,
		results: make(chan Result, len(cfg.Inputs)),
	}, nil
}

// Process concurrently transforms all inputs of the batch.
// Plaintexts are encoded, or bit-strings decoded back to text when cfg.Decrypt is set.
// Results are returned in input order, along with the number of failed inputs.
func (p *Processor) Process() (results []Result, errored int, err error) {
	group := errgroup.Group{}
	group.SetLimit(max(1, p.cfg.Parallel))

	results = make([]Result, len(p.cfg.Inputs))

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++
			}

			results[result.Index] = result
		}
	}()

	for idx, input := range p.cfg.Inputs {
		group.Go(func() error {
			output, err := p.transform(input)
			if err != nil {
				p.results <- Result{Index: idx, Input: input, Error: err}

				return err
			}

			p.results <- Result{Index: idx, Input: input, Output: output}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done

	if err != nil {
		return results, errored, fmt.Errorf("processing inputs: %w", err)
	}

	return results, errored, nil
}

func (p *Processor) transform(input string) (string, error) {
	if !p.cfg.Decrypt {
		return p.cipher.Encode(input, p.cfg.Key)
	}

	decoded, err := p.cipher.Decode(input, p.cfg.Key)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", p.cipher, err)
	}

	return bits.DecodeText(decoded)
}
