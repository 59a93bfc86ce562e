package decoder

import (
	"github.com/oran-l1/nrldpc/geometry"
	"github.com/oran-l1/nrldpc/internal/simd"
)

// punctured is the count of leading systematic columns every NR base graph
// punctures (never transmits); their LLR is unknown and initialized to 0
// (spec.md §4.3 "Initialization").
const punctured = 2

// state is the decoder's working memory, lifetime one Decode call. Field
// shapes mirror spec.md §3 "Decoder working state" exactly:
//
//   - varNodes[c] is a double-buffered column of length 2*zPadded; the
//     active half is bufferState[c].
//   - min1/min2/min1Pos/signBits persist across iterations, satisfying the
//     layer-consistency invariant: between any two layer updates they hold
//     the min-sum statistics of the extrinsic messages currently resident
//     on that check's edges.
type state struct {
	geom *geometry.Geometry
	z    int
	lane simd.Width

	varNodes    [][]int16
	bufferState []uint8
	oldShift    []uint16

	min1    [][]uint16
	min2    [][]uint16
	min1Pos [][]int16
	// signBits[r][i][zIdx] is the sign (true = negative) of the most
	// recent extrinsic sent check r -> variable on edge i at slot zIdx.
	signBits [][][]bool
}

func newState(geom *geometry.Geometry) *state {
	z := int(geom.Z())
	lane := simd.Preferred
	zPadded := simd.PadToWidth(geom.Z(), lane)
	nCols := geom.NCols()
	nRows := geom.NRows()

	st := &state{
		geom:        geom,
		z:           z,
		lane:        lane,
		varNodes:    make([][]int16, nCols),
		bufferState: make([]uint8, nCols),
		oldShift:    make([]uint16, nCols),
		min1:        make([][]uint16, nRows),
		min2:        make([][]uint16, nRows),
		min1Pos:     make([][]int16, nRows),
		signBits:    make([][][]bool, nRows),
	}
	for c := range st.varNodes {
		st.varNodes[c] = make([]int16, 2*zPadded)
	}
	for r := 0; r < nRows; r++ {
		st.min1[r] = make([]uint16, z)
		st.min2[r] = make([]uint16, z)
		st.min1Pos[r] = make([]int16, z)
		w := geom.RowWeight(r)
		edges := make([][]bool, w)
		for i := range edges {
			edges[i] = make([]bool, z)
		}
		st.signBits[r] = edges
	}
	return st
}

func (st *state) zPadded() int {
	return len(st.varNodes[0]) / 2
}

// currentHalf returns the Z-length slice of column c currently holding the
// live value (as opposed to the scratch half a layer update is writing
// into).
func (st *state) currentHalf(c int) []int16 {
	h := int(st.bufferState[c])
	return st.varNodes[c][h*st.zPadded() : h*st.zPadded()+st.z]
}

func (st *state) otherHalf(c int) []int16 {
	h := 1 - int(st.bufferState[c])
	return st.varNodes[c][h*st.zPadded() : h*st.zPadded()+st.z]
}

func (st *state) flip(c int) {
	st.bufferState[c] = 1 - st.bufferState[c]
}
