package decoder

import "github.com/oran-l1/nrldpc/internal/bitutil"

// processLayer advances one check-node layer by one step (spec.md §4.4
// LayerKernel). It is applied once per (iteration, layer) pair; within a
// real SIMD build this would run SIMD_W lanes at a time across Z, but a
// single Go loop over every z in [0, Z) is semantically identical to
// processing every lane of every block (the kernel's rotated-offset
// addressing, `(z+shift) mod Z`, is already lane-independent) — see
// DESIGN.md for why this package takes the direct-indexing route spec.md
// §9 explicitly allows ("a correct reference implementation may omit" the
// block/lane machinery).
//
// processLayer returns the layer's parity-error signature: true if any of
// the layer's Z check equations does not currently sum to even.
func processLayer(st *state, r int, beta uint16) bool {
	geom := st.geom
	columns := geom.ColumnsOf(r)
	shifts := geom.ShiftsOf(r)
	w := len(columns)
	z := st.z

	otherHalves := make([][]int16, w)
	currentHalves := make([][]int16, w)
	for i, c := range columns {
		currentHalves[i] = st.currentHalf(int(c))
		otherHalves[i] = st.otherHalf(int(c))
	}

	removed := make([]int16, w)
	layerParityError := false

	for zi := 0; zi < z; zi++ {
		preParity := false

		// 4.4.1 Remove-extrinsics.
		for i := 0; i < w; i++ {
			rotated := (zi + int(shifts[i])) % z
			value := currentHalves[i][rotated]
			preParity = preParity != (value < 0)

			mag := st.min1[r][zi]
			if int16(i) == st.min1Pos[r][zi] {
				mag = st.min2[r][zi]
			}
			mag = bitutil.SatSubUnsigned16(mag, beta)
			extrinsic := signedMagnitude(mag, st.signBits[r][i][zi])
			removed[i] = bitutil.SatSub16(value, extrinsic)
		}

		extrinsics, newMin1, newMin2, newArgmin := minSumExtrinsics(removed, beta)

		// 4.4.2 Add-extrinsics.
		postParity := false
		for i := 0; i < w; i++ {
			updated := bitutil.SatAdd16(removed[i], extrinsics[i])

			rotated := (zi + int(shifts[i])) % z
			otherHalves[i][rotated] = updated
			st.signBits[r][i][zi] = extrinsics[i] < 0
			postParity = postParity != (updated < 0)
		}

		st.min1[r][zi] = newMin1
		st.min2[r][zi] = newMin2
		st.min1Pos[r][zi] = newArgmin

		// spec.md §4.4: the layer's parity-error signature is the OR of
		// the before-update and after-update sign accumulators — a
		// nonzero result means the check did not sum to even either
		// before or after this update.
		if preParity || postParity {
			layerParityError = true
		}
	}

	for _, c := range columns {
		st.flip(int(c))
	}

	return layerParityError
}

// minSumExtrinsics computes, for a vector v of incoming check-node
// messages, the min-sum extrinsic each edge i would send back: magnitude
// max(0, min_{j!=i}|v_j| - beta), sign = product of sign(v_j) for j != i.
// This is the exclusion rule spec.md §4.4 describes via the incremental
// min1/min2/argmin sort-insert network; computed directly here (one O(w)
// pass to find min1/min2/argmin/signXor, one O(w) pass to assemble each
// edge's extrinsic) rather than incrementally, since the two forms are
// mathematically identical and the direct form is the one spec.md §8
// states as the testable property.
//
// Returns the per-edge extrinsics plus the layer state callers must persist
// for the next iteration's remove-extrinsics pass (min1, min2, argmin).
func minSumExtrinsics(v []int16, beta uint16) (extrinsics []int16, min1, min2 uint16, argmin int16) {
	min1, min2 = 0xFFFF, 0xFFFF
	argmin = -1
	signXor := false
	for i, value := range v {
		m := uint16(bitutil.Abs16(value))
		signXor = signXor != (value < 0)
		if m < min1 {
			min2 = min1
			min1 = m
			argmin = int16(i)
		} else if m < min2 {
			min2 = m
		}
	}

	extrinsics = make([]int16, len(v))
	for i, value := range v {
		mag := min1
		if int16(i) == argmin {
			mag = min2
		}
		mag = bitutil.SatSubUnsigned16(mag, beta)
		sign := signXor != (value < 0)
		extrinsics[i] = signedMagnitude(mag, sign)
	}
	return extrinsics, min1, min2, argmin
}

// signedMagnitude reconstructs a signed LLR from a non-negative magnitude
// and a sign bit (true = negative), saturating the negation at int16's
// range the same way bitutil.Abs16 saturates in the other direction.
func signedMagnitude(mag uint16, negative bool) int16 {
	if mag > 32767 {
		mag = 32767
	}
	v := int16(mag)
	if negative {
		if v == -32768 {
			return 32767
		}
		return -v
	}
	return v
}
