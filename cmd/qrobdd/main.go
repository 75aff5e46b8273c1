// Command qrobdd is a thin CLI front-end over the engine: it parses a
// formula, solves it into a BDD, and reports truth tables, models, and
// Graphviz dot exports. None of its plumbing changes BDD semantics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
