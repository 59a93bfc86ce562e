package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_RejectsUnsupportedLiftingFactor(t *testing.T) {
	_, err := Resolve(BG1, 17, 4) // 17 is not in the 3GPP lifting set
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupportedLiftingFactor))
}

func TestResolve_RejectsInvalidRowCount(t *testing.T) {
	_, err := Resolve(BG1, 384, 3)
	require.True(t, errors.Is(err, ErrInvalidRowCount))

	_, err = Resolve(BG2, 2, BG2MaxRows+1)
	require.True(t, errors.Is(err, ErrInvalidRowCount))
}

func TestResolve_RejectsUnsupportedBaseGraph(t *testing.T) {
	_, err := Resolve(BaseGraph(7), 2, 4)
	require.True(t, errors.Is(err, ErrUnsupportedBaseGraph))
}

func TestSelectA_PriorityOrderOnAmbiguity(t *testing.T) {
	// Z=10 is divisible by both a=2 (10=2*5, not a power-of-two quotient: 5
	// isn't power of two, so 2 does NOT qualify) and a=5 (10=5*2, quotient 2
	// is a power of two: qualifies). Only one family should ever match.
	a, ok := selectA(10)
	require.True(t, ok)
	require.Equal(t, 5, a)

	// Z=30 = 15*2: 3 and 5 also divide 30 but leave non-power-of-two
	// quotients (10 and 6), so a=15 is the only family that qualifies.
	a, ok = selectA(30)
	require.True(t, ok)
	require.Equal(t, 15, a)
}

func TestResolve_GeometryShape(t *testing.T) {
	g, err := Resolve(BG1, 384, BG1MaxRows)
	require.NoError(t, err)
	require.Equal(t, BG1, g.BaseGraph())
	require.Equal(t, uint16(384), g.Z())
	require.Equal(t, BG1Systematic, g.NSystematicCols())
	require.Equal(t, BG1Systematic+BG1MaxRows, g.NCols())

	for r := 0; r < g.NRows(); r++ {
		w := g.RowWeight(r)
		require.GreaterOrEqual(t, w, 3)
		require.LessOrEqual(t, w, 19)
		require.Len(t, g.ColumnsOf(r), w)
		require.Len(t, g.ShiftsOf(r), w)
		for _, s := range g.ShiftsOf(r) {
			require.Less(t, s, g.Z())
		}
		for _, c := range g.ColumnsOf(r) {
			require.Less(t, int(c), g.NCols())
		}
	}
}

func TestResolve_BG2RowWeights(t *testing.T) {
	g, err := Resolve(BG2, 2, BG2MaxRows)
	require.NoError(t, err)
	for r := 0; r < g.NRows(); r++ {
		w := g.RowWeight(r)
		require.GreaterOrEqual(t, w, 3)
		require.LessOrEqual(t, w, 10)
	}
}

func TestResolve_StaircaseColumnsHaveZeroShift(t *testing.T) {
	// Every extension row (r >= 4) ends in its degree-1 parity column,
	// whose circulant carries shift 0.
	g, err := Resolve(BG1, 2, BG1MaxRows)
	require.NoError(t, err)
	for r := 4; r < g.NRows(); r++ {
		shifts := g.ShiftsOf(r)
		require.Equal(t, uint16(0), shifts[len(shifts)-1])
	}
}

func TestCache_ReturnsSamePointerOnRepeatedResolve(t *testing.T) {
	c := NewCache()
	g1, err := c.Resolve(BG1, 384, 46)
	require.NoError(t, err)
	g2, err := c.Resolve(BG1, 384, 46)
	require.NoError(t, err)
	require.Same(t, g1, g2)

	g3, err := c.Resolve(BG2, 384, 42)
	require.NoError(t, err)
	require.NotSame(t, g1, g3)
}

func TestResolve_AllLiftingFactorsSupported(t *testing.T) {
	zs := []uint16{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 18, 20,
		22, 24, 26, 28, 30, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 88, 96, 104, 112,
		120, 128, 144, 160, 176, 192, 208, 224, 240, 256, 288, 320, 352, 384}
	for _, z := range zs {
		_, err := Resolve(BG1, z, 4)
		require.NoError(t, err, "Z=%d should resolve", z)
	}
}
