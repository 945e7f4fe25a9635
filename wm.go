// Package wm implements a blind, key-driven, DWT–DCT spread-spectrum image
// watermarking engine. A 64-bit key drives a deterministic block permutation
// and a bipolar PN generator; a payload of ±1 symbols is additively spread
// across mid-frequency DCT coefficients of 8×8 blocks inside the HL₂/LH₂
// subbands of a two-level Haar DWT of a single-precision luminance plane.
package wm

import (
	"errors"
	"fmt"

	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/block"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/dwt"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/permutation"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/subband"
)

// ErrInvalidGeometry is returned when W or H is not a multiple of 32.
var ErrInvalidGeometry = errors.New("wm: width and height must be multiples of 32")

// ErrInsufficientCapacity is returned when the payload is longer than the
// number of blocks the image can carry.
var ErrInsufficientCapacity = errors.New("wm: payload longer than available block capacity")

// Verdict summarizes an Extract call's aggregate confidence.
type Verdict int

const (
	Unverifiable Verdict = iota
	Tampered
	Verified
)

func (v Verdict) String() string {
	switch v {
	case Verified:
		return "VERIFIED"
	case Tampered:
		return "TAMPERED"
	default:
		return "UNVERIFIABLE"
	}
}

// Default verdict thresholds on mean confidence. Policy, not a wire
// contract: tune freely without breaking interoperability.
const (
	VerifiedThreshold = 0.7
	TamperedThreshold = 0.3
)

// Result is the outcome of Extract.
type Result struct {
	Bits           []int8
	Confidence     []float64
	MeanConfidence float64
	MinConfidence  float64
	Verdict        Verdict
}

// Capacity returns the number of 8×8 blocks (across HL₂ and LH₂) available
// for a W×H plane.
func Capacity(w, h int) int {
	bx, by := w/32, h/32
	return 2 * bx * by
}

// Embed additively spreads payload (a slice of ±1 symbols) across the
// mid-frequency DCT coefficients of blocks carved out of y's HL₂/LH₂
// subbands, keyed by key and modulated at strength alpha. y is a W×H
// row-major luminance plane; W and H must both be multiples of 32. On
// success y holds the watermarked plane. On error y is left untouched.
func Embed(y []float32, w, h int, payload []int8, key uint64, alpha float32) error {
	geom, err := newGeometry(w, h, len(payload))
	if err != nil {
		return err
	}

	dwt.Forward2D(y, w, h)
	defer dwt.Inverse2D(y, w, h)

	perm := permutation.Generate(key, uint32(geom.n))
	l := len(payload)
	for b := 0; b < l; b++ {
		for k := 0; k < geom.r; k++ {
			p := perm[b*geom.r+k]
			base, stride := geom.blockOrigin(p)
			block.EmbedBit(y, base, stride, payload[b], key, uint32(b), p, alpha)
		}
	}
	return nil
}

// Extract reverses Embed: it carves the same subbands and permutation under
// key, correlates each of the l payload bits against its R assigned blocks,
// and reports a hard-decision bit plus confidence per bit. y is restored to
// its pre-call contents (up to floating-point round-trip error) on return,
// success or failure after geometry/capacity validation.
func Extract(y []float32, w, h int, key uint64, l int) (*Result, error) {
	geom, err := newGeometry(w, h, l)
	if err != nil {
		return nil, err
	}

	dwt.Forward2D(y, w, h)
	defer dwt.Inverse2D(y, w, h)

	perm := permutation.Generate(key, uint32(geom.n))
	res := &Result{
		Bits:       make([]int8, l),
		Confidence: make([]float64, l),
	}

	var sumConf float64
	minConf := 1.0
	for b := 0; b < l; b++ {
		var sum int
		for k := 0; k < geom.r; k++ {
			p := perm[b*geom.r+k]
			base, stride := geom.blockOrigin(p)
			sum += int(block.ExtractBit(y, base, stride, key, uint32(b), p))
		}
		if sum >= 0 {
			res.Bits[b] = 1
		} else {
			res.Bits[b] = -1
		}
		conf := float64(abs(sum)) / float64(geom.r)
		res.Confidence[b] = conf
		sumConf += conf
		if conf < minConf {
			minConf = conf
		}
	}
	res.MeanConfidence = sumConf / float64(l)
	res.MinConfidence = minConf
	res.Verdict = verdictFor(res.MeanConfidence)
	return res, nil
}

func verdictFor(mean float64) Verdict {
	switch {
	case mean >= VerifiedThreshold:
		return Verified
	case mean >= TamperedThreshold:
		return Tampered
	default:
		return Unverifiable
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// geometry bundles the derived subband/block-count quantities shared by
// Embed and Extract.
type geometry struct {
	w, h, bx, by, m, n, r int
	subbands              subband.Level2
}

func newGeometry(w, h, payloadLen int) (geometry, error) {
	if w <= 0 || h <= 0 || w%32 != 0 || h%32 != 0 {
		return geometry{}, fmt.Errorf("wm: w=%d h=%d: %w", w, h, ErrInvalidGeometry)
	}
	bx, by := w/32, h/32
	m := bx * by
	n := 2 * m
	if payloadLen <= 0 || payloadLen > n {
		return geometry{}, fmt.Errorf("wm: payload length %d, capacity %d: %w", payloadLen, n, ErrInsufficientCapacity)
	}
	return geometry{
		w: w, h: h, bx: bx, by: by, m: m, n: n,
		r:        n / payloadLen,
		subbands: subband.NewLevel2(w, h),
	}, nil
}

// blockOrigin maps a global block index p to its (base, stride) location
// inside the HL₂ or LH₂ subband view.
func (g geometry) blockOrigin(p uint32) (base, stride int) {
	pi := int(p)
	sb := g.subbands.HL2
	local := pi
	if pi >= g.m {
		sb = g.subbands.LH2
		local = pi - g.m
	}
	by, bx := local/g.bx, local%g.bx
	return sb.At(bx*8, by*8), sb.Stride
}
