package encryption

// Result represents the outcome of transforming a single input.
type Result struct {
	// Position of the input in the batch
	Index int

	// Input text or bit-string
	Input string

	// Output bit-string or text
	Output string

	// Any error that occurred during processing
	Error error
}
