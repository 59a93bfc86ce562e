package llrcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeDecode_RoundTrips(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 256).Draw(rt, "n")
		llrs := make([]int16, n)
		for i := range llrs {
			llrs[i] = int16(rapid.IntRange(-32768, 32767).Draw(rt, "llr"))
		}

		archive := Encode(llrs)
		got := Decode(archive, n)
		require.Equal(t, llrs, got)
	})
}

func TestDecodeOne_MatchesFullDecode(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 128).Draw(rt, "n")
		llrs := make([]int16, n)
		for i := range llrs {
			llrs[i] = int16(rapid.IntRange(-32768, 32767).Draw(rt, "llr"))
		}
		archive := Encode(llrs)
		full := Decode(archive, n)

		idx := rapid.IntRange(0, n-1).Draw(rt, "idx")
		got, err := DecodeOne(archive, n, idx)
		require.NoError(t, err)
		require.Equal(t, full[idx], got)
	})
}

func TestDecodeOne_RejectsOutOfRangeIndex(t *testing.T) {
	archive := Encode([]int16{1, -2, 3})
	_, err := DecodeOne(archive, 3, 3)
	require.Error(t, err)
	_, err = DecodeOne(archive, 3, -1)
	require.Error(t, err)
}

func TestZigZag_RoundTripsExtremes(t *testing.T) {
	for _, v := range []int16{0, 1, -1, 32767, -32768, 100, -100} {
		require.Equal(t, v, zigzagDecode(zigzagEncode(v)))
	}
}
