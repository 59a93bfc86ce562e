// Package decoder implements the layered min-sum LDPC decoder: given a
// geometry.Geometry and a pre-filled variable-node buffer, Decode runs
// iterative belief propagation over BG1/BG2 until every parity check
// passes or a caller-supplied iteration limit is reached.
//
// A Decode call is a blocking, single-threaded, CPU-bound function: it
// holds no locks, performs no I/O, and allocates only its own working
// buffers (spec.md §5). Multiple concurrent Decode calls against different
// geometry/state are independent.
package decoder

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is returned when a caller-provided output buffer is
// shorter than the contract requires (spec.md §7).
var ErrBufferTooSmall = errors.New("nrldpc: buffer too small")

// Request carries the per-call decoder configuration (spec.md §6 "Decoder
// request").
type Request struct {
	// Beta is the min-sum offset applied once per check-node reduction. A
	// value of 0 is treated as "use the default" (8), resolving spec.md
	// §9's open question in favor of a caller-controlled parameter with
	// that default — see DESIGN.md.
	Beta uint16

	// MaxIterations is the hard cap on full passes over all layers.
	MaxIterations uint16

	// EarlyTermination allows the decoder to stop as soon as every layer's
	// parity check passes in the same iteration.
	EarlyTermination bool

	// FillerBits is the count of logical-zero bits appended by the
	// encoder; they are pinned to +32767 during initialization and
	// excluded from the output bit count.
	FillerBits uint32

	// NChannelLLRs is the number of int8 channel LLRs available in
	// varNodesIn, column-major starting at column 0.
	NChannelLLRs uint32
}

func (r Request) betaOrDefault() uint16 {
	if r.Beta == 0 {
		return 8
	}
	return r.Beta
}

// Outcome is the decoder's result (spec.md §6 "Decoder response").
type Outcome struct {
	// AppLLR holds final soft values, unshifted (logical column order, as
	// if every circulant were the identity), length n_cols*Z.
	AppLLR []int16

	// Bits holds packed hard-decision bits, MSB-first, length
	// ceil(n_info_bits/8).
	Bits []byte

	// NMsgBits is n_systematic*Z - filler_bits.
	NMsgBits uint32

	// IterationsUsed is in [1, MaxIterations].
	IterationsUsed uint16

	// ParityPassed reports whether every parity check is satisfied.
	ParityPassed bool
}

func validateRequest(nChannelLLRs int, req Request) error {
	if req.MaxIterations < 1 {
		return fmt.Errorf("nrldpc: max_iterations must be >= 1, got %d", req.MaxIterations)
	}
	if int(req.NChannelLLRs) > nChannelLLRs {
		return fmt.Errorf("%w: request declares %d channel LLRs, only %d provided",
			ErrBufferTooSmall, req.NChannelLLRs, nChannelLLRs)
	}
	return nil
}
