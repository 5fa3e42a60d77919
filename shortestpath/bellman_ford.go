package shortestpath

import (
	"github.com/katalvlaran/algods/core"
)

// bellmanFord sweeps every edge up to V-1 times. A shortest path has at
// most V-1 edges, so after that many sweeps all distances are final; a
// sweep that improves nothing ends the run early.
func (s *ShortestPaths[V, W]) bellmanFord(g *core.WeightedDigraph[V, W]) {
	n := g.VertexCount()
	unreachable := core.MaxWeight[W]()

	for pass := 1; pass < n; pass++ {
		improved := false
		for v := 0; v < n; v++ {
			from := V(v)
			if s.distTo[from] == unreachable {
				continue
			}
			for _, e := range g.Edges(from) {
				if cand := s.distTo[from] + e.Weight; cand < s.distTo[e.To] {
					relax(s.distTo, s.edgeTo, from, e.To, e.Weight)
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
}
