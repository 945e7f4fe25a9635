package bitpack_test

import (
	"testing"

	"github.com/frankban/quicktest"

	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/bitpack"
)

func TestPackKnownByte(t *testing.T) {
	c := quicktest.New(t)
	got := bitpack.Pack([]byte{0b10110010})
	want := []int8{1, -1, 1, 1, -1, -1, 1, -1}
	c.Assert(got, quicktest.DeepEquals, want)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	c := quicktest.New(t)
	data := []byte("watermark")
	symbols := bitpack.Pack(data)
	c.Assert(len(symbols), quicktest.Equals, len(data)*8)
	c.Assert(bitpack.Unpack(symbols), quicktest.DeepEquals, data)
}

func TestUnpackPartialByteZeroPads(t *testing.T) {
	c := quicktest.New(t)
	got := bitpack.Unpack([]int8{1, 1, 1})
	c.Assert(got, quicktest.DeepEquals, []byte{0b11100000})
}
