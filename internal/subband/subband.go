// Package subband names the four quadrants a two-level Haar DWT leaves
// behind in a plane's data array, and exposes each as a stride-addressed
// view rather than a copy.
package subband

// View addresses one subband's samples inside a larger plane buffer: sample
// (x, y) within the subband lives at Base + y*Stride + x.
type View struct {
	Base          int
	Width, Height int
	Stride        int
}

// At returns the flat index of sample (x, y) within v.
func (v View) At(x, y int) int {
	return v.Base + y*v.Stride + x
}

// Level2 describes the four quadrants produced by two levels of Haar
// decomposition on a w×h plane (w, h both divisible by 4).
type Level2 struct {
	LL2, HL2, LH2, HH2 View
}

// NewLevel2 builds the four quadrant views for a plane of dimensions w×h,
// stored row-major with stride w.
func NewLevel2(w, h int) Level2 {
	w4, h4 := w/4, h/4
	return Level2{
		LL2: View{Base: 0, Width: w4, Height: h4, Stride: w},
		HL2: View{Base: w4, Width: w4, Height: h4, Stride: w},
		LH2: View{Base: h4 * w, Width: w4, Height: h4, Stride: w},
		HH2: View{Base: h4*w + w4, Width: w4, Height: h4, Stride: w},
	}
}
