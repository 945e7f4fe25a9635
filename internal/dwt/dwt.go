// Package dwt implements the two-level, in-place 2-D Haar wavelet transform
// the watermarking pipeline uses to carve a luminance plane into subbands.
package dwt

const invSqrt2 = 0.7071067811865475

// levels is fixed at two: the pipeline only ever needs LL2/HL2/LH2/HH2.
const levels = 2

// buffers holds the scratch a 2-D pass needs: one slice for lifting a column
// out of the plane, one for the 1-D kernel's own working space. Both are
// sized once to the larger plane dimension and reused for every row and
// column in every level, unlike the reference implementation, which
// allocates a temp vector per row and per column.
type buffers struct {
	col []float32
	tmp []float32
}

func newBuffers(w, h int) buffers {
	n := w
	if h > n {
		n = h
	}
	return buffers{col: make([]float32, n), tmp: make([]float32, n)}
}

// Forward2D applies a two-level 2-D Haar DWT to data (width w, height h,
// row-major, stride w) in place. w and h must both be divisible by 4.
func Forward2D(data []float32, w, h int) {
	buf := newBuffers(w, h)

	cw, ch := w, h
	for level := 0; level < levels; level++ {
		for y := 0; y < ch; y++ {
			haar1D(data[y*w:y*w+cw], buf.tmp[:cw])
		}
		col := buf.col[:ch]
		for x := 0; x < cw; x++ {
			for y := 0; y < ch; y++ {
				col[y] = data[y*w+x]
			}
			haar1D(col, buf.tmp[:ch])
			for y := 0; y < ch; y++ {
				data[y*w+x] = col[y]
			}
		}
		cw /= 2
		ch /= 2
	}
}

// Inverse2D reverses Forward2D, restoring data to its pre-transform values
// (up to floating-point round-trip error). w and h must match the values
// passed to Forward2D.
func Inverse2D(data []float32, w, h int) {
	buf := newBuffers(w, h)

	cw, ch := w/4, h/4
	for level := 0; level < levels; level++ {
		col := buf.col[:ch*2]
		for x := 0; x < cw*2; x++ {
			for y := 0; y < ch*2; y++ {
				col[y] = data[y*w+x]
			}
			ihaar1D(col, buf.tmp[:ch*2])
			for y := 0; y < ch*2; y++ {
				data[y*w+x] = col[y]
			}
		}
		for y := 0; y < ch*2; y++ {
			ihaar1D(data[y*w:y*w+cw*2], buf.tmp[:cw*2])
		}
		cw *= 2
		ch *= 2
	}
}

// haar1D applies one forward orthonormal Haar pass to data (length n, n
// even) using tmp (length >= n) as scratch, then writes the result back
// into data.
func haar1D(data, tmp []float32) {
	n := len(data)
	half := n / 2
	for i := 0; i < half; i++ {
		a := data[2*i]
		b := data[2*i+1]
		tmp[i] = (a + b) * invSqrt2
		tmp[i+half] = (a - b) * invSqrt2
	}
	copy(data, tmp[:n])
}

// ihaar1D reverses haar1D.
func ihaar1D(data, tmp []float32) {
	n := len(data)
	half := n / 2
	for i := 0; i < half; i++ {
		a := data[i]
		d := data[i+half]
		tmp[2*i] = (a + d) * invSqrt2
		tmp[2*i+1] = (a - d) * invSqrt2
	}
	copy(data, tmp[:n])
}
