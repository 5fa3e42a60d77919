package shortestpath

import (
	"container/heap"

	"github.com/katalvlaran/algods/core"
)

// pqNode is one pending (vertex, tentative distance) entry. A vertex may
// appear more than once; stale entries are skipped on pop instead of
// being decreased in place.
type pqNode[V core.VertexID, W core.Weight] struct {
	vertex V
	dist   W
}

// nodePQ is a min-heap over pqNode ordered by distance, ties broken by
// vertex id to keep pops reproducible.
type nodePQ[V core.VertexID, W core.Weight] []pqNode[V, W]

func (pq nodePQ[V, W]) Len() int { return len(pq) }

func (pq nodePQ[V, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].vertex < pq[j].vertex
}

func (pq nodePQ[V, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[V, W]) Push(x any) { *pq = append(*pq, x.(pqNode[V, W])) }

func (pq *nodePQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// dijkstra settles vertices in non-decreasing distance order. Each
// improvement pushes a fresh heap entry; an entry whose distance no
// longer matches the table is stale and dropped.
func (s *ShortestPaths[V, W]) dijkstra(g *core.WeightedDigraph[V, W]) {
	pq := &nodePQ[V, W]{{vertex: s.source}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqNode[V, W])
		if cur.dist > s.distTo[cur.vertex] {
			continue
		}
		for _, e := range g.Edges(cur.vertex) {
			cand := cur.dist + e.Weight
			if cand >= s.distTo[e.To] {
				continue
			}
			relax(s.distTo, s.edgeTo, cur.vertex, e.To, e.Weight)
			heap.Push(pq, pqNode[V, W]{vertex: e.To, dist: cand})
		}
	}
}
