//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the min-sum kernel variants so go:generate stays simple.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/oran-l1/nrldpc")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "minsum16" || comp == "all" {
		genMinSumKernel16()
	}

	if comp == "minsum32" || comp == "all" {
		genMinSumKernel32()
	}

	Generate()
}
