package decoder

import "github.com/oran-l1/nrldpc/geometry"

// Decode runs the layered min-sum decoder to completion (spec.md §4.3
// "Main loop"). varNodesIn holds req.NChannelLLRs int8 channel LLRs,
// column-major starting at column 0.
func Decode(varNodesIn []int8, geom *geometry.Geometry, req Request) (Outcome, error) {
	if err := validateRequest(len(varNodesIn), req); err != nil {
		return Outcome{}, err
	}

	st := newState(geom)
	initialize(st, varNodesIn, req)
	beta := req.betaOrDefault()

	var iterationsUsed uint16
	parityPassed := false

	for iter := uint16(1); iter <= req.MaxIterations; iter++ {
		iterationsUsed = iter
		errorMask := false
		for r := 0; r < geom.NRows(); r++ {
			if processLayer(st, r, beta) {
				errorMask = true
			}
		}
		if !errorMask {
			parityPassed = true
			if req.EarlyTermination {
				break
			}
		} else {
			parityPassed = false
		}
	}

	appLLR, bits, nMsgBits := extract(st, req.FillerBits)

	return Outcome{
		AppLLR:         appLLR,
		Bits:           bits,
		NMsgBits:       nMsgBits,
		IterationsUsed: iterationsUsed,
		ParityPassed:   parityPassed,
	}, nil
}
