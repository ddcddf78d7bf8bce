package stnu

// distItem is one entry of a back-propagation priority queue: a node and
// its current best cumulative distance.
type distItem struct {
	node string
	dist int64
}

// distPQ is a min-heap on dist, the teacher's "lazy decrease-key" pattern
// (dijkstra/dijkstra.go's nodePQ) retargeted to backward traversal: stale
// entries are simply skipped once their node is finalized.
type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
