// Package geometry resolves a (base_graph, lifting_factor) pair into the
// static quasi-cyclic description of the parity-check matrix: row weights,
// the column each circulant belongs to, and its shift reduced modulo Z.
//
// Geometry has no runtime state beyond what Resolve computes; a resolved
// value is immutable and safe to share across concurrently running decode
// calls, the same way the teacher's bit-packed block layout is a pure
// function of its header (see fastpfor.go's encodeHeader/decodeHeader).
package geometry

import (
	"errors"
	"fmt"
)

// BaseGraph selects one of the two 3GPP NR LDPC proto-matrices.
type BaseGraph uint8

const (
	BG1 BaseGraph = iota
	BG2
)

func (bg BaseGraph) String() string {
	switch bg {
	case BG1:
		return "BG1"
	case BG2:
		return "BG2"
	default:
		return fmt.Sprintf("BaseGraph(%d)", uint8(bg))
	}
}

// Dimensional constants from TS38.212 table 5.3.2-2/5.3.2-3.
const (
	BG1MaxRows       = 46
	BG1Systematic    = 22
	BG1MaxCirculants = 316

	BG2MaxRows       = 42
	BG2Systematic    = 10
	BG2MaxCirculants = 197
)

// Sentinel errors for the programmer-error taxonomy of the decoder contract.
var (
	ErrUnsupportedLiftingFactor = errors.New("nrldpc: unsupported lifting factor")
	ErrUnsupportedBaseGraph     = errors.New("nrldpc: unsupported base graph")
	ErrInvalidRowCount          = errors.New("nrldpc: invalid row count")
)

// Geometry is the resolved static description of one (base_graph, Z, n_rows)
// parity-check matrix. All fields are read-only after Resolve returns.
type Geometry struct {
	baseGraph BaseGraph
	z         uint16
	nRows     int

	// rowStart[r] is the index into columns/shifts where row r's edges begin;
	// rowStart[nRows] is the total edge count, so row_weights(r) is derived
	// as rowStart[r+1]-rowStart[r] without a separate width table.
	rowStart []int
	columns  []uint8
	shifts   []uint16
}

func (g *Geometry) BaseGraph() BaseGraph { return g.baseGraph }
func (g *Geometry) Z() uint16            { return g.z }
func (g *Geometry) NRows() int           { return g.nRows }

// NSystematicCols returns the number of systematic (message-carrying) base
// graph columns: 22 for BG1, 10 for BG2.
func (g *Geometry) NSystematicCols() int {
	return nSystematic(g.baseGraph)
}

// NCols returns n_systematic(base_graph) + n_rows, per spec.md §3.
func (g *Geometry) NCols() int {
	return g.NSystematicCols() + g.nRows
}

// RowWeight returns the number of nonzero circulants in row r.
func (g *Geometry) RowWeight(r int) int {
	return g.rowStart[r+1] - g.rowStart[r]
}

// ColumnsOf returns the column index (0-based, into [0,NCols())) of each edge
// in row r, in the order the base graph lists them.
func (g *Geometry) ColumnsOf(r int) []uint8 {
	return g.columns[g.rowStart[r]:g.rowStart[r+1]]
}

// ShiftsOf returns the circulant shift of each edge in row r, already
// reduced modulo Z.
func (g *Geometry) ShiftsOf(r int) []uint16 {
	return g.shifts[g.rowStart[r]:g.rowStart[r+1]]
}

func nSystematic(bg BaseGraph) int {
	if bg == BG1 {
		return BG1Systematic
	}
	return BG2Systematic
}

func maxRows(bg BaseGraph) int {
	if bg == BG1 {
		return BG1MaxRows
	}
	return BG2MaxRows
}

// liftingSet enumerates the eight shift-table families from TS38.212 table
// 5.3.2-1: Z = a * 2^j for a in this set. The priority order on ambiguity
// (e.g. both 2 and 5 divide 10) is a=15 first, then 13,11,9,7,5,3,2 — see
// §4.2 of spec.md.
var liftingSet = [8]int{15, 13, 11, 9, 7, 5, 3, 2}

// selectA picks the table family for a lifting factor Z, or ok=false if Z is
// not a member of the 3GPP lifting set.
func selectA(z uint16) (a int, ok bool) {
	for _, candidate := range liftingSet {
		if int(z)%candidate == 0 {
			// Confirm Z/candidate is itself a power of two, else candidate
			// only divides Z by coincidence and is not its table family.
			q := int(z) / candidate
			if q&(q-1) == 0 && q > 0 {
				return candidate, true
			}
		}
	}
	return 0, false
}

// Resolve computes the Geometry for one (base_graph, Z, n_rows) triple.
//
// Resolve does no allocation beyond the three slices backing the returned
// Geometry; callers decoding many blocks at the same parameters should use
// Cache to avoid repeating the table walk (see geometry.Cache).
func Resolve(bg BaseGraph, z uint16, nRows int) (*Geometry, error) {
	if bg != BG1 && bg != BG2 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedBaseGraph, bg)
	}
	if nRows < 4 || nRows > maxRows(bg) {
		return nil, fmt.Errorf("%w: n_rows=%d (must be 4..%d for %v)", ErrInvalidRowCount, nRows, maxRows(bg), bg)
	}
	a, ok := selectA(z)
	if !ok {
		return nil, fmt.Errorf("%w: Z=%d", ErrUnsupportedLiftingFactor, z)
	}

	table := tableFor(bg, a)
	g := &Geometry{baseGraph: bg, z: z, nRows: nRows}
	g.rowStart = make([]int, nRows+1)
	var columns []uint8
	var shifts []uint16
	offset := 0
	for r := 0; r < nRows; r++ {
		row := table.rows[r]
		g.rowStart[r] = offset
		for _, entry := range row {
			columns = append(columns, entry.col)
			shifts = append(shifts, reduceShift(entry.shift, z))
		}
		offset += len(row)
	}
	g.rowStart[nRows] = offset
	g.columns = columns
	g.shifts = shifts
	return g, nil
}

// reduceShift reduces a literal TS38.212 shift value (tabulated for the
// table's base Z) modulo the actual lifting factor in use, per §3's
// invariant that all shifts are stored pre-reduced modulo Z. A shift of -1
// in the literal tables denotes "no edge" and never reaches here because
// zero entries are omitted from the row lists.
func reduceShift(shift int32, z uint16) uint16 {
	if shift < 0 {
		return 0
	}
	return uint16(int(shift) % int(z))
}
