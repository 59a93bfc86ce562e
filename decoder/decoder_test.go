package decoder

import (
	"testing"

	"github.com/oran-l1/nrldpc/geometry"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMinSumExtrinsics_MatchesSpecFormula(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(2, 8).Draw(rt, "w")
		beta := uint16(rapid.IntRange(0, 20).Draw(rt, "beta"))
		v := make([]int16, w)
		for i := range v {
			v[i] = int16(rapid.IntRange(-1000, 1000).Draw(rt, "v"))
		}

		extrinsics, _, _, _ := minSumExtrinsics(v, beta)

		for i := range v {
			wantSign := false
			wantMag := int32(1 << 30)
			for j, vj := range v {
				if j == i {
					continue
				}
				wantSign = wantSign != (vj < 0)
				m := int32(vj)
				if m < 0 {
					m = -m
				}
				if m < wantMag {
					wantMag = m
				}
			}
			wantMag -= int32(beta)
			if wantMag < 0 {
				wantMag = 0
			}
			want := int16(wantMag)
			if wantSign && want != 0 {
				want = -want
			}
			require.Equal(rt, want, extrinsics[i], "edge %d", i)
		}
	})
}

func TestDecode_AllPlusLLRIsFixedPoint(t *testing.T) {
	g, err := geometry.Resolve(geometry.BG1, 2, geometry.BG1MaxRows)
	require.NoError(t, err)

	z := int(g.Z())
	nChannelCols := g.NCols()
	in := make([]int8, nChannelCols*z)
	for i := range in {
		in[i] = 127
	}

	req := Request{Beta: 8, MaxIterations: 8, EarlyTermination: true, FillerBits: 0, NChannelLLRs: uint32(len(in))}
	out, err := Decode(in, g, req)
	require.NoError(t, err)
	require.True(t, out.ParityPassed)
	require.LessOrEqual(t, out.IterationsUsed, uint16(2))
	for _, b := range out.Bits {
		require.EqualValues(t, 0, b, "all-zero message expected")
	}
	require.EqualValues(t, g.NSystematicCols()*z, out.NMsgBits)
}

func TestDecode_EarlyTerminationDoesNotAlterOutput(t *testing.T) {
	g, err := geometry.Resolve(geometry.BG2, 2, 8)
	require.NoError(t, err)
	z := int(g.Z())
	in := make([]int8, g.NCols()*z)
	for i := range in {
		in[i] = 127
	}

	reqEarly := Request{Beta: 8, MaxIterations: 10, EarlyTermination: true, NChannelLLRs: uint32(len(in))}
	outEarly, err := Decode(in, g, reqEarly)
	require.NoError(t, err)

	reqFull := Request{Beta: 8, MaxIterations: outEarly.IterationsUsed, EarlyTermination: false, NChannelLLRs: uint32(len(in))}
	outFull, err := Decode(in, g, reqFull)
	require.NoError(t, err)

	require.Equal(t, outEarly.Bits, outFull.Bits)
}

func TestDecode_MaxIterationsExhaustionIsNotAnError(t *testing.T) {
	g, err := geometry.Resolve(geometry.BG2, 2, 8)
	require.NoError(t, err)
	z := int(g.Z())
	in := make([]int8, g.NCols()*z) // all zero LLRs: a degenerate all-zero codeword
	req := Request{Beta: 8, MaxIterations: 3, EarlyTermination: false, NChannelLLRs: uint32(len(in))}
	out, err := Decode(in, g, req)
	require.NoError(t, err)
	require.Equal(t, uint16(3), out.IterationsUsed)
	require.NotNil(t, out.Bits)
}

func TestDecode_RejectsShortChannelLLRs(t *testing.T) {
	g, err := geometry.Resolve(geometry.BG1, 2, 4)
	require.NoError(t, err)
	in := make([]int8, 4)
	req := Request{Beta: 8, MaxIterations: 1, NChannelLLRs: 100}
	_, err = Decode(in, g, req)
	require.Error(t, err)
}

func TestDecode_RejectsZeroMaxIterations(t *testing.T) {
	g, err := geometry.Resolve(geometry.BG1, 2, 4)
	require.NoError(t, err)
	_, err = Decode(nil, g, Request{MaxIterations: 0})
	require.Error(t, err)
}
