package shortestpath

import (
	"github.com/katalvlaran/algods/core"
	"github.com/katalvlaran/algods/queue"
)

// spfa runs Bellman-Ford over a work deque holding only vertices whose
// distance just improved. Small-label-first: an improved vertex whose
// distance undercuts the current front goes to the front, so cheap
// labels propagate before expensive ones and re-queueing stays rare.
func (s *ShortestPaths[V, W]) spfa(g *core.WeightedDigraph[V, W]) {
	queued := make([]bool, g.VertexCount())
	work := queue.NewDeque[V](g.VertexCount())
	work.PushBack(s.source)
	queued[s.source] = true

	for {
		v, ok := work.PopFront()
		if !ok {
			break
		}
		queued[v] = false
		for _, e := range g.Edges(v) {
			cand := s.distTo[v] + e.Weight
			if cand >= s.distTo[e.To] {
				continue
			}
			relax(s.distTo, s.edgeTo, v, e.To, e.Weight)
			if queued[e.To] {
				continue
			}
			queued[e.To] = true
			if front, ok := work.Front(); ok && cand < s.distTo[front] {
				work.PushFront(e.To)
			} else {
				work.PushBack(e.To)
			}
		}
	}
}
