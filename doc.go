// Package nrldpc implements the receive-side forward error correction core
// of a 5G-NR layer-1 shared-channel pipeline: rate de-matching (package
// ratematch) followed by a layered min-sum LDPC decoder (package decoder),
// bridged by the quasi-cyclic base-graph description in package geometry.
//
// The package holds no process-global mutable state. A decode call is a
// blocking, CPU-bound function; multiple calls against disjoint code blocks
// may run concurrently on separate goroutines. The only datum shared across
// calls is the caller-owned HARQ buffer passed to ratematch.Dematch, which
// must not be aliased by concurrent callers.
package nrldpc

import (
	"github.com/oran-l1/nrldpc/decoder"
	"github.com/oran-l1/nrldpc/geometry"
	"github.com/oran-l1/nrldpc/ratematch"
)

// Re-exported so callers depending only on the root package can reach the
// whole pipeline without importing the subpackages directly.
type (
	BaseGraph     = geometry.BaseGraph
	Geometry      = geometry.Geometry
	DematchParams = ratematch.Params
	DecodeRequest = decoder.Request
	DecodeOutcome = decoder.Outcome
)

const (
	BG1 = geometry.BG1
	BG2 = geometry.BG2
)

// Dematch reverses transmitter bit interleaving and HARQ circular-buffer
// extraction, accumulating into harq in place. See ratematch.Dematch.
func Dematch(channelLLR []int8, harq []int8, params ratematch.Params) ratematch.Result {
	return ratematch.Dematch(channelLLR, harq, params)
}

// ResolveGeometry resolves the static base-graph description for one
// (base_graph, Z, n_rows) triple. See geometry.Resolve.
func ResolveGeometry(bg geometry.BaseGraph, z uint16, nRows int) (*geometry.Geometry, error) {
	return geometry.Resolve(bg, z, nRows)
}

// Decode runs the layered min-sum decoder to completion. See decoder.Decode.
func Decode(varNodesIn []int8, geom *geometry.Geometry, req decoder.Request) (decoder.Outcome, error) {
	return decoder.Decode(varNodesIn, geom, req)
}
