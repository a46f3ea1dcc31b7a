package greedy

// entry is one (possibly stale) score of a column.
type entry struct {
	score float64
	col   int
	ver   uint32
}

// scoreHeap is a min-heap on (score, col) for container/heap.
type scoreHeap []entry

func (h scoreHeap) Len() int { return len(h) }

func (h scoreHeap) Less(a, b int) bool {
	if h[a].score != h[b].score {
		return h[a].score < h[b].score
	}
	return h[a].col < h[b].col
}

func (h scoreHeap) Swap(a, b int) { h[a], h[b] = h[b], h[a] }

func (h *scoreHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
