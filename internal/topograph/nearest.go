package topograph

import (
	"container/heap"
	"errors"
	"math"
)

// ErrSourceNotFound indicates Nearest was asked to start from an unknown vertex.
var ErrSourceNotFound = errors.New("topograph: source vertex not found")

// pqItem and priorityQueue implement a standard binary min-heap over
// (vertex, distance) pairs, adapted from the teacher library's dijkstra
// package. walkshell only ever needs the single nearest unvisited node
// from the current position, but keeping the full relaxation loop (rather
// than a flat linear scan) keeps the behavior correct even when candidate
// counts grow large on dense shells.
type pqItem struct {
	id   string
	dist float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool   { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)        { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{})  { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Nearest runs a single-source Dijkstra relaxation from source and returns
// the first vertex other than source for which ok(id) reports true, along
// with its distance. It reports ErrSourceNotFound if source is unknown,
// and found==false if no reachable vertex other than source satisfies
// the predicate.
func (g *Graph) Nearest(source string, ok func(id string) bool) (id string, dist float64, found bool, err error) {
	if _, exists := g.Vertex(source); !exists {
		return "", 0, false, ErrSourceNotFound
	}

	dist0 := make(map[string]float64, g.Len())
	dist0[source] = 0
	pq := &priorityQueue{{id: source, dist: 0}}
	heap.Init(pq)

	visited := make(map[string]bool, g.Len())
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true

		if cur.id != source && ok(cur.id) {
			return cur.id, cur.dist, true, nil
		}

		for _, e := range g.Neighbors(cur.id) {
			nd := cur.dist + math.Abs(e.Weight)
			if best, seen := dist0[e.To]; !seen || nd < best {
				dist0[e.To] = nd
				heap.Push(pq, pqItem{id: e.To, dist: nd})
			}
		}
	}

	return "", 0, false, nil
}
