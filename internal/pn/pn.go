// Package pn generates the bipolar (±1) pseudo-noise chips used to spread a
// payload bit across several DCT coefficients.
package pn

import "github.com/Stamp-ed/resilient-watermarking-pipeline/internal/prng"

// Chip mixing constants. Together with prng's SplitMix64 constants these are
// a locked wire contract: any deviation changes every chip the generator
// produces, and with it every embedded signal.
const (
	bitMul   uint64 = 0x100000001B3
	blockMul uint64 = 0xC6A4A7935BD1E995
	chipMul  uint64 = 0x9E3779B97F4A7C15
)

// Chip returns +1 or -1, deterministically derived from key and the three
// indices identifying which payload bit, which permuted block, and which
// mask entry this chip belongs to.
//
// The seed mixes the four inputs by XOR-ing products of per-index constants
// rather than hashing them sequentially; this gives weaker independence
// between related indices than a sequential hash would. That is a locked
// wire contract here, not a defect to fix.
func Chip(key uint64, bitIndex, blockIndex, chipIndex uint32) int8 {
	seed := key
	seed ^= uint64(bitIndex) * bitMul
	seed ^= uint64(blockIndex) * blockMul
	seed ^= uint64(chipIndex) * chipMul

	s := prng.State(seed)
	r := s.Next()
	if r&1 != 0 {
		return 1
	}
	return -1
}
