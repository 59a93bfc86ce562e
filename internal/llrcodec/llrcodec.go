// Package llrcodec provides compact archival storage and random access
// decoding for app_llr, the per-bit soft output LayeredLdpcDecoder produces
// (spec.md §3 Data Model). A full codeword's app_llr is one int16 per coded
// bit (BG1: up to 68*Z, BG2: up to 52*Z) — storing it densely for HARQ
// buffer replay or post-hoc analysis is wasteful since LLR magnitudes are
// usually small; StreamVByte packs each value into 1-4 bytes instead of a
// fixed 2.
//
// Encode/Decode round-trip through github.com/mhr3/streamvbyte, which only
// understands uint32. DecodeOne instead walks the StreamVByte control-byte
// layout directly (the same random-access technique the FastPFOR codec this
// package is adapted from used for StreamVByte-encoded posting lists) so a
// caller can pull a single bit's LLR out of an archived codeword without
// paying to decode the whole thing.
package llrcodec

import (
	"fmt"

	"github.com/mhr3/streamvbyte"
)

// zigzagEncode maps a signed LLR to the unsigned domain StreamVByte's
// variable-length coding favors: small magnitudes (either sign) land in the
// smallest values, so a near-zero extrinsic stays a 1-byte code.
func zigzagEncode(v int16) uint32 {
	x := int32(v)
	return uint32((x << 1) ^ (x >> 31))
}

func zigzagDecode(v uint32) int16 {
	x := int32(v>>1) ^ -int32(v&1)
	return int16(x)
}

// Encode packs llrs into a StreamVByte archive. The returned byte count is
// not fixed-width: callers that need random access must also record len(llrs).
func Encode(llrs []int16) []byte {
	values := make([]uint32, len(llrs))
	for i, v := range llrs {
		values[i] = zigzagEncode(v)
	}
	return streamvbyte.EncodeUint32(values, nil)
}

// Decode unpacks an archive produced by Encode. count must be the original
// len(llrs) passed to Encode.
func Decode(data []byte, count int) []int16 {
	values := streamvbyte.DecodeUint32(data, count, nil)
	out := make([]int16, count)
	for i, v := range values {
		out[i] = zigzagDecode(v)
	}
	return out
}

// controlBlockSize is a lookup from a StreamVByte control byte (four 2-bit
// length codes) to the total number of data bytes the four values it
// describes occupy.
var controlBlockSize [256]uint8

func init() {
	for ctrl := range 256 {
		size := (ctrl & 0x03) + ((ctrl >> 2) & 0x03) + ((ctrl >> 4) & 0x03) + (ctrl >> 6) + 4
		controlBlockSize[ctrl] = uint8(size)
	}
}

// DecodeOne decodes the LLR at position index within an Encode-produced
// archive of count values, without materializing the other count-1 values.
// It walks control bytes sequentially to find index's block, which is O(index)
// rather than O(count) decode-everything, and allocation-free.
func DecodeOne(data []byte, count, index int) (int16, error) {
	if index < 0 || index >= count {
		return 0, fmt.Errorf("llrcodec: index %d out of range [0,%d)", index, count)
	}

	numControlBytes := (count + 3) >> 2
	if len(data) < numControlBytes {
		return 0, fmt.Errorf("llrcodec: archive too short for %d values", count)
	}
	controlBytes := data[:numControlBytes]
	dataBytes := data[numControlBytes:]

	blockIndex := index >> 2
	posInBlock := index & 0x03

	dataOffset := 0
	for i := 0; i < blockIndex; i++ {
		dataOffset += int(controlBlockSize[controlBytes[i]])
	}

	ctrl := controlBytes[blockIndex]
	var raw uint32
	for i := 0; i <= posInBlock; i++ {
		code := (ctrl >> uint(i*2)) & 0x03
		byteLen := int(code) + 1
		if dataOffset+byteLen > len(dataBytes) {
			return 0, fmt.Errorf("llrcodec: corrupt archive at value %d", index)
		}
		if i == posInBlock {
			raw = readValue(dataBytes[dataOffset:], byteLen)
		}
		dataOffset += byteLen
	}

	return zigzagDecode(raw), nil
}

func readValue(data []byte, byteLen int) uint32 {
	switch byteLen {
	case 1:
		return uint32(data[0])
	case 2:
		return uint32(data[0]) | uint32(data[1])<<8
	case 3:
		return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16
	case 4:
		return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
	}
	return 0
}
