package dct_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/dct"
)

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	block := make([]float32, 64)
	for i := range block {
		block[i] = float32(r.Float64() * 255)
	}

	coeff := make([]float32, 64)
	recon := make([]float32, 64)
	dct.Forward8x8(block, coeff)
	dct.Inverse8x8(coeff, recon)

	for i := range block {
		if diff := math.Abs(float64(block[i] - recon[i])); diff > 1e-3 {
			t.Fatalf("sample %d: got %v, want %v (diff %v)", i, recon[i], block[i], diff)
		}
	}
}

func TestFlatBlockHasOnlyDCComponent(t *testing.T) {
	block := make([]float32, 64)
	for i := range block {
		block[i] = 50
	}
	coeff := make([]float32, 64)
	dct.Forward8x8(block, coeff)

	for u := 0; u < 8; u++ {
		for v := 0; v < 8; v++ {
			if u == 0 && v == 0 {
				continue
			}
			if math.Abs(float64(coeff[u*8+v])) > 1e-3 {
				t.Fatalf("coeff[%d,%d] = %v, want ~0 for a flat block", u, v, coeff[u*8+v])
			}
		}
	}
	want := float32(50 * 8) // alpha(0)*alpha(0)*sum(64 samples of 50) == (1/sqrt(8))^2 * 64*50
	if diff := math.Abs(float64(coeff[0] - want)); diff > 1e-2 {
		t.Fatalf("DC coefficient = %v, want ~%v", coeff[0], want)
	}
}
