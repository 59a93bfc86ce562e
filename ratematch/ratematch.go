// Package ratematch reverses the transmitter's bit interleaving and HARQ
// circular-buffer extraction for one encoded LDPC block. Dematch is a pure
// function of its inputs and is safe to call from many goroutines
// concurrently, provided each call's channelLLR/harq slices are disjoint
// from every other concurrent call's (see spec.md §5).
package ratematch

import (
	"github.com/oran-l1/nrldpc/geometry"
	"github.com/oran-l1/nrldpc/internal/bitutil"
)

// Params carries the per-call configuration for Dematch. Field names and
// constraints mirror spec.md §6's "Rate-dematcher request" table.
type Params struct {
	Ncb             uint32
	E               uint32
	RvID            uint8 // 0..3
	Z               uint16
	ModulationOrder uint8 // one of {1,2,4,6,8}
	BaseGraph       geometry.BaseGraph
	StartNull       uint32
	NumNull         uint32
	IsRetx          bool
}

// Result reports the derived offsets Dematch used, useful for driver-level
// logging/debugging; the in-place harq mutation is the operation's real
// contract (spec.md §4.1).
type Result struct {
	K0         uint32
	WindowSize uint32 // Ncb - NumNull: the effective (filler-deleted) circle length
}

// Dematch transforms one encoded block of channel LLRs into a cumulative,
// in-place update of the HARQ accumulator harq. See spec.md §4.1 for the
// full algorithm; the steps below are numbered to match it.
//
// Malformed sizes (E not a multiple of ModulationOrder, Ncb too short for
// the filler region, etc.) are a programming error: callers are expected to
// validate sizes, and Dematch does not attempt to recover from them (see
// spec.md §4.1 "Errors").
func Dematch(channelLLR []int8, harq []int8, p Params) Result {
	// Step 1: is_retx==false zeroes the entire persistent accumulator.
	if !p.IsRetx {
		clear(harq)
	}

	// Step 2: k0 from the TS38.212 table (§6 "k0 derivation").
	k0 := computeK0(p.BaseGraph, p.RvID, p.Ncb, p.Z)
	windowSize := p.Ncb - p.NumNull

	// Step 3: bit deinterleave (column-first restore of the transmitter's
	// modulation_order x (E/modulation_order) row-first interleaver).
	m := uint32(p.ModulationOrder)
	rows := p.E / m
	deinterleaved := deinterleave(channelLLR, m, rows)

	// Step 4: HARQ combine with wrap-around and filler skip.
	combine(harq, deinterleaved, k0, windowSize, p.StartNull, p.NumNull)

	return Result{K0: k0, WindowSize: windowSize}
}

// deinterleave restores column-first order from the row-first order the
// transmitter's bit interleaver produced: deinterleaved[b + rows*row] =
// in[m*b + row] for b in [0, rows), row in [0, m). Mirrors spec.md §4.1
// step 3 exactly; writes into freshly sized scratch so callers' input is
// left untouched.
func deinterleave(in []int8, m, rows uint32) []int8 {
	out := make([]int8, len(in))
	for b := uint32(0); b < rows; b++ {
		for row := uint32(0); row < m; row++ {
			out[b+row*rows] = in[m*b+row]
		}
	}
	return out
}

// combine walks the effective circular buffer (length windowSize, the
// filler region deleted from the circle) starting at a k0 normalized past
// the filler gap, saturating-adding each deinterleaved LLR into harq while
// never touching [startNull, startNull+numNull). Mirrors spec.md §4.1
// step 4.
func combine(harq []int8, deinterleaved []int8, k0, windowSize, startNull, numNull uint32) {
	pos := normalizeK0(k0, startNull, numNull, windowSize)
	for _, v := range deinterleaved {
		actual := expandPastFiller(pos, startNull, numNull)
		harq[actual] = bitutil.SatAdd8(harq[actual], v)
		pos++
		if pos >= windowSize {
			pos = 0
		}
	}
}

// normalizeK0 subtracts numNull from k0 when k0 falls past the filler
// region, per spec.md §4.1 step 4's closing sentence.
func normalizeK0(k0, startNull, numNull, windowSize uint32) uint32 {
	if k0 > startNull {
		k0 -= numNull
	}
	if windowSize == 0 {
		return 0
	}
	return k0 % windowSize
}

// expandPastFiller maps an index in the filler-deleted effective circle
// back to its true position in the Ncb-length physical buffer by
// re-inserting the gap.
func expandPastFiller(pos, startNull, numNull uint32) uint32 {
	if pos >= startNull {
		return pos + numNull
	}
	return pos
}

