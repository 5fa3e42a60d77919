package shortestpath

import (
	"github.com/katalvlaran/algods/core"
	"github.com/katalvlaran/algods/dfs"
)

// dagRelax relaxes every vertex exactly once, in topological order,
// starting at the source's position in that order. Vertices before the
// source cannot lie on any path from it and are skipped; vertices still
// at the sentinel are unreachable and relaxing from them would overflow.
func (s *ShortestPaths[V, W]) dagRelax(g *core.WeightedDigraph[V, W]) {
	topo := dfs.NewTopologicalSort[V](g.VertexCount())
	topo.DepthFirstOrder(g)

	unreachable := core.MaxWeight[W]()
	reached := false
	for v := range topo.Order() {
		if v == s.source {
			reached = true
		}
		if !reached || s.distTo[v] == unreachable {
			continue
		}
		for _, e := range g.Edges(v) {
			if cand := s.distTo[v] + e.Weight; cand < s.distTo[e.To] {
				relax(s.distTo, s.edgeTo, v, e.To, e.Weight)
			}
		}
	}
}
