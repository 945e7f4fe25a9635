// Package attack implements the distortions used to exercise extraction
// robustness: quantization, additive structured noise, and border cropping.
package attack

import "math"

// Quantize rounds every sample to the nearest multiple of 1/q in place:
// y <- round(y*q)/q. Larger q means finer (milder) quantization.
func Quantize(plane []float32, q float64) {
	for i, v := range plane {
		plane[i] = float32(math.Round(float64(v)*q) / q)
	}
}

// AdditiveSine adds amplitude*sin(i) to sample i (flat index into plane),
// simulating structured additive noise uncorrelated with the watermark.
func AdditiveSine(plane []float32, amplitude float64) {
	for i, v := range plane {
		plane[i] = v + float32(amplitude*math.Sin(float64(i)))
	}
}

// CropBorder zeroes a border of the given fraction (0..0.5) of w/h on all
// four sides of a w×h row-major plane.
func CropBorder(plane []float32, w, h int, fraction float64) {
	bx := int(float64(w) * fraction)
	by := int(float64(h) * fraction)
	for y := 0; y < h; y++ {
		inBorderRow := y < by || y >= h-by
		row := plane[y*w : y*w+w]
		if inBorderRow {
			for x := range row {
				row[x] = 0
			}
			continue
		}
		for x := 0; x < bx; x++ {
			row[x] = 0
		}
		for x := w - bx; x < w; x++ {
			row[x] = 0
		}
	}
}
