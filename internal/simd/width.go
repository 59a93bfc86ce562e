// Package simd selects the SIMD lane width the decoder pads its
// variable-node columns to, and reports which width the running
// process's CPU actually supports. It mirrors the teacher's
// simdpack.go:initSIMDSelection probe (golang.org/x/sys/cpu feature bits
// picking a packing strategy at package init) but exposes the lane width
// as data instead of swapping function pointers. Package decoder uses the
// width only to size its padded buffers; its kernel is a single loop over
// every Z slot and does not vary with the width.
package simd

import "golang.org/x/sys/cpu"

// Width is a supported SIMD lane count for 16-bit LLR lanes.
type Width int

const (
	Width256 Width = 16 // one 256-bit vector register
	Width512 Width = 32 // one 512-bit vector register
)

// Preferred reports the widest lane width the current process should use,
// probed once at package init the same way simdpack.go's initSIMDSelection
// checks cpu.X86.HasSSE2 before switching FastPFOR's pack/unpack strategy.
var Preferred = probe()

func probe() Width {
	if cpu.X86.HasAVX512F {
		return Width512
	}
	return Width256
}

// PadToWidth rounds z up to the next multiple of w, producing the
// Z_padded working-buffer size spec.md §3 requires so cyclic rotations
// within the kernel can use aligned, duplicated-head SIMD loads.
func PadToWidth(z uint16, w Width) int {
	iz, iw := int(z), int(w)
	if iz%iw == 0 {
		return iz
	}
	return (iz/iw + 1) * iw
}
