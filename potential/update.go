package potential

import (
	"container/heap"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/status"
)

// UpdatePotential re-computes potentials incrementally starting from a
// single node A after new edges were introduced incident to A (spec §4.3).
// The queue is keyed by h(V) - h'(V), the amount V's potential has
// decreased so far, so the node whose lower bound moved the most is always
// revisited first. A node popped a second time means its potential
// decreased again after already being finalized once — impossible unless
// the O-graph now contains a negative cycle reachable from start.
func UpdatePotential(g *graph.Graph, h map[string]int64, start string) (map[string]int64, *status.Witness, error) {
	if _, ok := h[start]; !ok {
		return nil, nil, ErrUnknownNode
	}

	hPrime := make(map[string]int64, len(h))
	for k, v := range h {
		hPrime[k] = v
	}

	pred := make(map[string]string)
	popped := make(map[string]int)

	pq := make(keyPQ, 0, len(h))
	heap.Init(&pq)
	heap.Push(&pq, &keyItem{node: start, key: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*keyItem)
		u := item.node
		if item.key != h[u]-hPrime[u] {
			// Stale entry: u was pushed again with a larger decrease.
			continue
		}

		popped[u]++
		if popped[u] > 1 {
			w := reconstructCycle(g, pred, u, len(h))
			return nil, w, nil
		}

		for _, e := range g.OutEdges(u) {
			w, ok := oGraphWeight(e)
			if !ok {
				continue
			}
			v := e.To
			cand := hPrime[u] + w
			if cand < hPrime[v] {
				hPrime[v] = cand
				pred[v] = u
				heap.Push(&pq, &keyItem{node: v, key: h[v] - hPrime[v]})
			}
		}
	}

	return hPrime, nil, nil
}

// keyItem is one entry of the decrease-amount priority queue: the node
// whose potential has decreased the most (largest key) is popped first.
type keyItem struct {
	node string
	key  int64
}

// keyPQ is a max-heap on key, the "lazy decrease-key" pattern of
// dijkstra/dijkstra.go's nodePQ, inverted since larger decreases are
// prioritized here instead of smaller distances.
type keyPQ []*keyItem

func (pq keyPQ) Len() int            { return len(pq) }
func (pq keyPQ) Less(i, j int) bool  { return pq[i].key > pq[j].key }
func (pq keyPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *keyPQ) Push(x interface{}) { *pq = append(*pq, x.(*keyItem)) }
func (pq *keyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
