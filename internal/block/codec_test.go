package block_test

import (
	"math/rand"
	"testing"

	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/block"
)

func makePlane(w, h int, seed int64) []float32 {
	r := rand.New(rand.NewSource(seed))
	data := make([]float32, w*h)
	for i := range data {
		data[i] = float32(r.Float64() * 255)
	}
	return data
}

func flatPlane(w, h int, v float32) []float32 {
	data := make([]float32, w*h)
	for i := range data {
		data[i] = v
	}
	return data
}

func TestEmbedExtractRoundTripPositiveBit(t *testing.T) {
	const w, h = 16, 8
	plane := flatPlane(w, h, 128)
	const key = uint64(0xC0FFEE1234567890)
	const alpha = float32(12)

	block.EmbedBit(plane, 0, w, 1, key, 3, 0, alpha)
	got := block.ExtractBit(plane, 0, w, key, 3, 0)
	if got != 1 {
		t.Fatalf("got %d, want +1", got)
	}
}

func TestEmbedExtractRoundTripNegativeBit(t *testing.T) {
	const w, h = 16, 8
	plane := flatPlane(w, h, 128)
	const key = uint64(0xC0FFEE1234567890)
	const alpha = float32(12)

	block.EmbedBit(plane, 8, w, -1, key, 3, 1, alpha)
	got := block.ExtractBit(plane, 8, w, key, 3, 1)
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestEmbedLeavesOtherBlocksUntouched(t *testing.T) {
	const w, h = 16, 8
	plane := makePlane(w, h, 9)
	orig := append([]float32(nil), plane...)
	const key = uint64(42)

	block.EmbedBit(plane, 0, w, 1, key, 0, 0, 10)

	for y := 0; y < h; y++ {
		for x := 8; x < 16; x++ {
			i := y*w + x
			if plane[i] != orig[i] {
				t.Fatalf("sample (%d,%d) modified outside embedded block", x, y)
			}
		}
	}
}

func TestDifferentBitIndexUsesDifferentChips(t *testing.T) {
	const w, h = 8, 8
	key := uint64(99)

	a := makePlane(w, h, 1)
	b := append([]float32(nil), a...)
	block.EmbedBit(a, 0, w, 1, key, 0, 0, 15)
	block.EmbedBit(b, 0, w, 1, key, 1, 0, 15)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("embedding with different bitIndex produced identical blocks")
	}
}
