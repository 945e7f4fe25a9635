// Package prng implements the SplitMix64 mixing primitive used throughout
// the watermarking pipeline to turn a key and a handful of indices into
// reproducible pseudo-random bits.
package prng

// State is a SplitMix64 generator state. The zero value is a valid (if
// predictable) generator; callers seed it directly: State(key).
type State uint64

// Next advances the generator by one step and returns its output. The
// constants and shift amounts are a wire contract: changing any of them
// changes every PN chip and permutation the pipeline produces.
func (s *State) Next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
