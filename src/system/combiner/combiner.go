package combiner

import (
	"context"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/gmap"
)

// Combine enumerates every maximal internally-consistent subset of gmaps
// (§4.E). Testing all 2^n subsets directly doesn't scale; instead this
// builds the compatibility graph (an edge between two GMaps iff
// gmap.MutuallyConsistent) and runs Bron–Kerbosch to list its maximal
// cliques, which are exactly the maximal internally-consistent subsets.
//
// ctx is the cooperative cancellation point the spec singles out as the
// combiner's natural one (§5): it is checked before each recursive step
// rather than only at entry, so a long-running enumeration can still be
// cut short mid-search.
func Combine(ctx context.Context, gmaps []*gmap.GMap, log *archivist.Archivist) ([][]*gmap.GMap, error) {
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "combiner COMBINE begin gmaps=", len(gmaps))

	n := len(gmaps)
	if n == 0 {
		return nil, nil
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if gmap.MutuallyConsistent(gmaps[i], gmaps[j]) {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	var cliques [][]int
	if err := bronKerbosch(ctx, nil, all, nil, adj, &cliques); err != nil {
		return nil, err
	}

	out := make([][]*gmap.GMap, 0, len(cliques))
	for _, clique := range cliques {
		subset := make([]*gmap.GMap, 0, len(clique))
		for _, idx := range clique {
			subset = append(subset, gmaps[idx])
		}
		out = append(out, subset)
	}

	log.Debug(archivist.DEBUG_LEVEL_TRACE, "combiner COMBINE done maximalSets=", len(out))
	return out, nil
}

func bronKerbosch(ctx context.Context, r, p, x []int, adj [][]bool, out *[][]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(p) == 0 && len(x) == 0 {
		clique := append([]int{}, r...)
		*out = append(*out, clique)
		return nil
	}

	pRemaining := append([]int{}, p...)
	for _, v := range pRemaining {
		neighbors := adj[v]
		newR := append(append([]int{}, r...), v)
		newP := intersectNeighbors(p, neighbors)
		newX := intersectNeighbors(x, neighbors)
		if err := bronKerbosch(ctx, newR, newP, newX, adj, out); err != nil {
			return err
		}
		p = removeValue(p, v)
		x = append(x, v)
	}
	return nil
}

func intersectNeighbors(vertices []int, neighbors []bool) []int {
	out := make([]int, 0, len(vertices))
	for _, v := range vertices {
		if neighbors[v] {
			out = append(out, v)
		}
	}
	return out
}

func removeValue(vertices []int, v int) []int {
	out := make([]int, 0, len(vertices))
	for _, x := range vertices {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
