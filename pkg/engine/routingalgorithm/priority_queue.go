package routingalgorithm

import "lintang/pathplanner/pkg/datastructure"

type gridPQNode struct {
	rank  float64
	cell  datastructure.Cell
	index int
}

// gridPriorityQueue min-heap berdasarkan (rank, cell). Kalau rank sama, cell dibandingkan leksikografis (lat, lon)
// biar hasil path selalu deterministik.
type gridPriorityQueue []*gridPQNode

func (pq gridPriorityQueue) Len() int {
	return len(pq)
}

func (pq gridPriorityQueue) Less(i, j int) bool {
	if pq[i].rank != pq[j].rank {
		return pq[i].rank < pq[j].rank
	}
	return pq[i].cell.Less(pq[j].cell)
}

func (pq gridPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *gridPriorityQueue) Push(x interface{}) {
	n := len(*pq)
	no := x.(*gridPQNode)
	no.index = n
	*pq = append(*pq, no)
}

func (pq *gridPriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	no := old[n-1]
	old[n-1] = nil
	no.index = -1
	*pq = old[0 : n-1]
	return no
}
