package block

import (
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/dct"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/pn"
)

// EmbedBit spreads one payload bit (+1 or -1) across the 7 mid-frequency DCT
// coefficients of the 8×8 spatial block starting at base within plane
// (stride elements per row), additively modulating each coefficient by
// alpha * bit * pn(key, bitIndex, blockIndex, chipIndex).
//
// blockIndex must be the global (post-permutation) block index, so that
// EmbedBit and ExtractBit agree on the PN chips used for a given block.
func EmbedBit(plane []float32, base, stride int, bit int8, key uint64, bitIndex, blockIndex uint32, alpha float32) {
	var spatial, coeff, recon [64]float32
	load(plane, base, stride, spatial[:])

	dct.Forward8x8(spatial[:], coeff[:])
	for i, idx := range MidFreqMask {
		p := pn.Chip(key, bitIndex, blockIndex, uint32(i))
		k := idx.U*dct.Size + idx.V
		coeff[k] += alpha * float32(bit) * float32(p)
	}
	dct.Inverse8x8(coeff[:], recon[:])

	store(plane, base, stride, recon[:])
}

// ExtractBit correlates the 8×8 spatial block starting at base against the
// same 7 PN chips EmbedBit would have used, and returns the hard decision:
// +1 if the correlation sum is non-negative, -1 otherwise.
func ExtractBit(plane []float32, base, stride int, key uint64, bitIndex, blockIndex uint32) int8 {
	var spatial, coeff [64]float32
	load(plane, base, stride, spatial[:])
	dct.Forward8x8(spatial[:], coeff[:])

	var sum float32
	for i, idx := range MidFreqMask {
		p := pn.Chip(key, bitIndex, blockIndex, uint32(i))
		k := idx.U*dct.Size + idx.V
		sum += coeff[k] * float32(p)
	}
	if sum >= 0 {
		return 1
	}
	return -1
}

func load(plane []float32, base, stride int, dst []float32) {
	for y := 0; y < dct.Size; y++ {
		copy(dst[y*dct.Size:y*dct.Size+dct.Size], plane[base+y*stride:base+y*stride+dct.Size])
	}
}

func store(plane []float32, base, stride int, src []float32) {
	for y := 0; y < dct.Size; y++ {
		copy(plane[base+y*stride:base+y*stride+dct.Size], src[y*dct.Size:y*dct.Size+dct.Size])
	}
}
