// Package metrics computes image-quality measurements used to judge how
// visually transparent an embedding was.
package metrics

import "math"

// PSNR returns the peak signal-to-noise ratio in decibels between two
// equal-length luminance planes, assuming an 8-bit ([0,255]) peak signal.
// Returns +Inf if the planes are identical.
func PSNR(a, b []float32) float64 {
	if len(a) != len(b) {
		panic("metrics: PSNR operands have different lengths")
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	mse := sum / float64(len(a))
	if mse == 0 {
		return math.Inf(1)
	}
	const peak = 255.0
	return 10 * math.Log10(peak*peak/mse)
}
