// Package imageio bridges ordinary raster images and the row-major
// single-precision luminance planes the core watermarking engine operates
// on: BMP decode/encode, BT.601 RGB↔YCbCr, and padding to a 32-sample grid.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// PadMode selects how Pad extends a plane to the next multiple of 32.
type PadMode int

const (
	// PadZero extends with zero samples.
	PadZero PadMode = iota
	// PadEdge extends by replicating the nearest edge sample.
	PadEdge
)

// Planes holds the three YCbCr channels of a decoded image, each W×H,
// row-major, values in [0, 255].
type Planes struct {
	Y, Cb, Cr []float32
	W, H      int
}

// Decode reads an image (BMP) and splits it into BT.601 YCbCr planes.
func Decode(r io.Reader) (*Planes, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	p := &Planes{
		Y:  make([]float32, w*h),
		Cb: make([]float32, w*h),
		Cr: make([]float32, w*h),
		W:  w, H: h,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r32, g32, b32, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			yy, cb, cr := color.RGBToYCbCr(uint8(r32>>8), uint8(g32>>8), uint8(b32>>8))
			i := y*w + x
			p.Y[i] = float32(yy)
			p.Cb[i] = float32(cb)
			p.Cr[i] = float32(cr)
		}
	}
	return p, nil
}

// Encode recombines Planes back into RGB and writes a BMP.
func Encode(w io.Writer, p *Planes) error {
	img := image.NewRGBA(image.Rect(0, 0, p.W, p.H))
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			i := y*p.W + x
			yy := clampByte(p.Y[i])
			cb := clampByte(p.Cb[i])
			cr := clampByte(p.Cr[i])
			r, g, b := color.YCbCrToRGB(yy, cb, cr)
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode: %w", err)
	}
	return nil
}

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Pad returns a copy of plane (w×h) extended to paddedW×paddedH (each the
// next multiple of 32, caller-computed via NextMultipleOf32), using mode to
// fill the new samples. The original content occupies the top-left corner.
func Pad(plane []float32, w, h, paddedW, paddedH int, mode PadMode) []float32 {
	out := make([]float32, paddedW*paddedH)
	for y := 0; y < paddedH; y++ {
		srcY := y
		if srcY >= h {
			srcY = h - 1
		}
		for x := 0; x < paddedW; x++ {
			srcX := x
			if srcX >= w {
				srcX = w - 1
			}
			if mode == PadZero && (x >= w || y >= h) {
				out[y*paddedW+x] = 0
				continue
			}
			out[y*paddedW+x] = plane[srcY*w+srcX]
		}
	}
	return out
}

// Unpad returns the top-left w×h crop of a paddedW×paddedH plane.
func Unpad(plane []float32, paddedW, w, h int) []float32 {
	out := make([]float32, w*h)
	for y := 0; y < h; y++ {
		copy(out[y*w:y*w+w], plane[y*paddedW:y*paddedW+w])
	}
	return out
}

// NextMultipleOf32 rounds n up to the next multiple of 32.
func NextMultipleOf32(n int) int {
	return (n + 31) &^ 31
}
