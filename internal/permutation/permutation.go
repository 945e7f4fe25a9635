// Package permutation generates the deterministic, key-seeded block shuffle
// that spreads each payload bit's blocks across a subband instead of
// clustering them.
package permutation

import "github.com/Stamp-ed/resilient-watermarking-pipeline/internal/prng"

// salt is XORed into the key before seeding the shuffle, so the permutation
// generator and the PN generator never share a SplitMix64 stream even when
// called with the same key.
const salt uint64 = 0xA5A5A5A5A5A5A5A5

// Generate returns a bijection of [0,n) seeded by key, via a keyed
// Fisher–Yates shuffle run in descending index order. Two calls with the
// same (key, n) always return identical permutations; the result is never
// cached across calls.
func Generate(key uint64, n uint32) []uint32 {
	perm := make([]uint32, n)
	for i := range perm {
		perm[i] = uint32(i)
	}
	if n == 0 {
		return perm
	}

	s := prng.State(key ^ salt)
	for i := n - 1; i > 0; i-- {
		r := s.Next()
		j := uint32(r % uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
