package ratematch

import "github.com/oran-l1/nrldpc/geometry"

// computeK0 implements the bit-exact k0 table from TS38.212 §5.4.2.1 (see
// spec.md §6 "k0 derivation"). rv_id=0 always yields k0=0 regardless of
// base graph; all divisions are truncating integer division.
func computeK0(bg geometry.BaseGraph, rvID uint8, ncb uint32, z uint16) uint32 {
	if rvID == 0 {
		return 0
	}
	q := uint64(ncb) / uint64(z)
	var numer, denom uint64
	if bg == geometry.BG1 {
		denom = 66
		switch rvID {
		case 1:
			numer = 17
		case 2:
			numer = 33
		case 3:
			numer = 56
		}
	} else {
		denom = 50
		switch rvID {
		case 1:
			numer = 13
		case 2:
			numer = 25
		case 3:
			numer = 43
		}
	}
	return uint32(z) * uint32((numer*q)/denom)
}
