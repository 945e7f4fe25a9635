// Package dct implements the orthonormal 8×8 DCT-II used to transform each
// spatial block before spread-spectrum modulation.
package dct

import "math"

// Size is the fixed block dimension the transform operates on.
const Size = 8

var cosTable [Size][Size]float64

func init() {
	for x := 0; x < Size; x++ {
		for u := 0; u < Size; u++ {
			cosTable[x][u] = math.Cos((2*float64(x) + 1) * float64(u) * math.Pi / (2 * Size))
		}
	}
}

func alpha(k int) float64 {
	if k == 0 {
		return 1 / math.Sqrt(Size)
	}
	return math.Sqrt(2.0 / Size)
}

// Forward8x8 computes the orthonormal 2-D DCT-II of an 8×8 block stored
// row-major in input (length 64), writing the result to output (length 64).
// input and output must not alias.
func Forward8x8(input, output []float32) {
	var in [Size][Size]float64
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			in[x][y] = float64(input[x*Size+y])
		}
	}

	for u := 0; u < Size; u++ {
		for v := 0; v < Size; v++ {
			sum := 0.0
			for x := 0; x < Size; x++ {
				cx := cosTable[x][u]
				row := in[x]
				for y := 0; y < Size; y++ {
					sum += row[y] * cx * cosTable[y][v]
				}
			}
			output[u*Size+v] = float32(alpha(u) * alpha(v) * sum)
		}
	}
}

// Inverse8x8 reverses Forward8x8: input holds 8×8 DCT coefficients
// (row-major, length 64), output receives the reconstructed spatial block
// (length 64).
func Inverse8x8(input, output []float32) {
	var coeff [Size][Size]float64
	var scaled [Size][Size]float64
	for u := 0; u < Size; u++ {
		for v := 0; v < Size; v++ {
			coeff[u][v] = float64(input[u*Size+v])
			scaled[u][v] = alpha(u) * alpha(v) * coeff[u][v]
		}
	}

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			sum := 0.0
			for u := 0; u < Size; u++ {
				cx := cosTable[x][u]
				row := scaled[u]
				for v := 0; v < Size; v++ {
					sum += row[v] * cx * cosTable[y][v]
				}
			}
			output[x*Size+y] = float32(sum)
		}
	}
}
