// SPDX-License-Identifier: MIT

// Command graphseal canonicalizes, compares, seals and stores graphs read
// from JSON documents.
//
// Usage:
//
//	graphseal canon graph.json
//	graphseal iso a.json b.json
//	graphseal merkle graph.json
//	graphseal verify graph.json --root <hex>
//	graphseal gen cycle 6 --shuffle --seed 3
//	graphseal store put graph.json
package main

import (
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
