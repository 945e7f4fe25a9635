// Package v2 names the region-QIM variant the original project sketched but
// never finished. The types exist so callers can reference the shape of the
// future design; every function returns ErrNotImplemented.
package v2

import "errors"

// ErrNotImplemented is returned by every function in this package.
var ErrNotImplemented = errors.New("v2: not implemented")

// Region names a rectangular patch a future region-QIM embedder would
// quantize as a unit, in place of the DCT block grid core/watermark uses.
type Region struct {
	X, Y, W, H int
}

// PatchSize is the intended region edge length; unused until Embed/Extract
// are implemented.
const PatchSize = 16

// QIMStep is the intended quantization step size for region-QIM embedding.
const QIMStep = 1.0

// Embed would quantization-index-modulate bit into region of plane.
func Embed(plane []float32, w, h int, region Region, bit int8, step float64) error {
	return ErrNotImplemented
}

// Extract would recover the bit embedded in region via QIMStep rounding.
func Extract(plane []float32, w, h int, region Region, step float64) (int8, error) {
	return 0, ErrNotImplemented
}
