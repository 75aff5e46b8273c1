package gen

import "fmt"

// VertexVar names the Boolean variable asserting that vertex i is a member
// of the chosen set.
func VertexVar(i int) string {
	return fmt.Sprintf("v_%d", i)
}

// Clique emits a formula in the input language whose satisfying models are
// exactly the subsets of {0,...,n-1} that form a clique in the graph given
// by edges (each entry an unordered pair of vertex indices): for every pair
// of vertices that is NOT an edge, at most one of the two may be chosen. An
// optional lower bound k on the clique's size is added when k > 0, matching
// the max-clique scenario's "cardinality of the returned model" check.
func Clique(n int, edges [][2]int, k int) string {
	adjacent := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		adjacent[normalize(e)] = true
	}

	var clauses []string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adjacent[[2]int{i, j}] {
				clauses = append(clauses, fmt.Sprintf("not (%s and %s)", VertexVar(i), VertexVar(j)))
			}
		}
	}

	if k > 0 {
		var members []string
		for i := 0; i < n; i++ {
			members = append(members, VertexVar(i))
		}
		clauses = append(clauses, card(members, ">=", k))
	}

	return joinAnd(clauses)
}

func normalize(e [2]int) [2]int {
	if e[0] > e[1] {
		return [2]int{e[1], e[0]}
	}
	return e
}
