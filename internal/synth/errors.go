package synth

import "errors"

var (
	// ErrNoSolution is returned when no candidate satisfies every example.
	ErrNoSolution = errors.New("no solution found")
	// ErrExamples is returned for a malformed or unreadable example set.
	ErrExamples = errors.New("invalid example set")
	// ErrSearch is returned for search bounds that cannot be enumerated.
	ErrSearch = errors.New("invalid search bounds")
)
