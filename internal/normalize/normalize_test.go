package normalize_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/normalize"
)

func TestTilesProducesZeroMeanUnitVariance(t *testing.T) {
	const w, h = 64, 64
	r := rand.New(rand.NewSource(4))
	plane := make([]float32, w*h)
	for i := range plane {
		plane[i] = float32(r.Float64() * 255)
	}

	normalize.Tiles(plane, w, h, 32)

	check := func(ox, oy, tw, th int) {
		var sum, sumSq float64
		n := float64(tw * th)
		for y := 0; y < th; y++ {
			for x := 0; x < tw; x++ {
				v := float64(plane[(oy+y)*w+ox+x])
				sum += v
				sumSq += v * v
			}
		}
		mean := sum / n
		variance := sumSq/n - mean*mean
		if math.Abs(mean) > 1e-2 {
			t.Fatalf("tile (%d,%d): mean = %v, want ~0", ox, oy, mean)
		}
		if math.Abs(variance-1) > 5e-2 {
			t.Fatalf("tile (%d,%d): variance = %v, want ~1", ox, oy, variance)
		}
	}
	for oy := 0; oy < h; oy += 32 {
		for ox := 0; ox < w; ox += 32 {
			check(ox, oy, 32, 32)
		}
	}
}

func TestTilesHandlesPartialEdgeTiles(t *testing.T) {
	const w, h = 50, 40
	plane := make([]float32, w*h)
	for i := range plane {
		plane[i] = float32(i % 7)
	}
	normalize.Tiles(plane, w, h, 32)
	for _, v := range plane {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("got non-finite sample %v", v)
		}
	}
}

func TestTilesConstantTileStaysFinite(t *testing.T) {
	const w, h = 32, 32
	plane := make([]float32, w*h)
	for i := range plane {
		plane[i] = 77
	}
	normalize.Tiles(plane, w, h, 32)
	for _, v := range plane {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("got non-finite sample %v for a constant tile", v)
		}
	}
}
