package gen

import (
	"fmt"
	"math/rand"
)

// RandomGraph draws a random graph on n vertices with roughly the given
// number of edges (seeded, so the same seed always draws the same graph —
// the same determinism spirit as the teacher's own randomized test inputs
// in operations_test.go, just scoped to a local *rand.Rand instead of the
// package-level generator) and emits a formula in the input language
// asserting a proper coloring of it with the given number of colors: each
// vertex picks exactly one color, and no edge's endpoints may match.
func RandomGraph(n, edges, colors int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))

	type pair = [2]int
	possible := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			possible = append(possible, pair{i, j})
		}
	}
	rng.Shuffle(len(possible), func(i, j int) { possible[i], possible[j] = possible[j], possible[i] })

	if edges > len(possible) {
		edges = len(possible)
	}
	drawn := possible[:edges]

	colorVar := func(v, k int) string { return fmt.Sprintf("%s_%d", VertexVar(v), k) }

	var clauses []string
	for v := 0; v < n; v++ {
		var ks []string
		for k := 0; k < colors; k++ {
			ks = append(ks, colorVar(v, k))
		}
		clauses = append(clauses, card(ks, "=", 1))
	}
	for _, e := range drawn {
		for k := 0; k < colors; k++ {
			clauses = append(clauses, fmt.Sprintf("not (%s and %s)", colorVar(e[0], k), colorVar(e[1], k)))
		}
	}

	return joinAnd(clauses)
}
