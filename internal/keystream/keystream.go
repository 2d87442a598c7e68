// Package keystream implements the deterministic pseudorandom generator shared by
// all keyed transforms.
//
// The generator is a 64-bit linear congruential generator with Knuth's MMIX
// constants:
//
//	x' = x * 6364136223846793005 + 1442695040888963407  (mod 2^64)
//
// A draw bounded by max returns (x' >> 33) mod (max+1), so every value lies in
// [0, max]. Signed seeds are mapped to an initial state by the splitmix64
// finalizer applied to their two's-complement bits, which keeps nearby seeds
// (0, 1, -1, ...) from producing correlated first draws.
//
// State is passed and returned by value. There is no package-level generator.
package keystream

const (
	// ByteMax is the largest value drawn for byte keystreams.
	ByteMax = 127
	// StateMax is the largest value drawn for the feedback-PRF internal state.
	StateMax = 16383

	multiplier = 6364136223846793005
	increment  = 1442695040888963407
	outputBits = 33
)

// State is the complete state of the generator.
type State uint64

// Seed returns the generator state for a signed seed.
func Seed(seed int64) State {
	z := uint64(seed) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return State(z ^ (z >> 31))
}

// Next advances s by one step and returns a value in [0, max] along with the
// successor state. Feeding the successor back into Next continues the same
// sequence a single uninterrupted run would produce.
func Next(s State, max int) (int, State) {
	x := uint64(s)*multiplier + increment

	return int((x >> outputBits) % uint64(max+1)), State(x)
}

// Stream is a call-scoped cursor over a keystream.
type Stream struct {
	state State
}

// NewStream returns a stream seeded with seed.
func NewStream(seed int64) *Stream {
	return &Stream{state: Seed(seed)}
}

// Draw returns the next value in [0, max].
func (s *Stream) Draw(max int) int {
	var v int

	v, s.state = Next(s.state, max)

	return v
}

// State returns the current state of the stream.
func (s *Stream) State() State {
	return s.state
}
