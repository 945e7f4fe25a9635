// Package block holds the fixed mid-frequency coefficient mask and the
// per-block embed/extract codec that modulates it.
package block

// Index names one (u, v) DCT coefficient coordinate.
type Index struct {
	U, V int
}

// MidFreqMask is the fixed list of mid-frequency DCT coefficients the
// pipeline modulates. Order is part of the wire contract: entry i is the
// coefficient chip index i refers to.
var MidFreqMask = [7]Index{
	{1, 2},
	{2, 1},
	{2, 2},
	{1, 3},
	{3, 1},
	{2, 3},
	{3, 2},
}

// Size is the number of coefficients in MidFreqMask.
const Size = len(MidFreqMask)
