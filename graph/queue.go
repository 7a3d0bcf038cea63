package graph

import "container/heap"

// QueueEntry is a single entry in the priority queue.
type QueueEntry struct {
	Index int     // index of the item in the heap.
	Score float64 // priority of the item in the queue.
	ID    string  // node id
}

// DescPriorityQueue implements heap.Interface and holds entries.
// Priority is descending (highest score first, ties by ascending id).
type DescPriorityQueue []*QueueEntry

func (pq DescPriorityQueue) Len() int { return len(pq) }

func (pq DescPriorityQueue) Less(i, j int) bool {
	if pq[i].Score != pq[j].Score {
		return pq[i].Score > pq[j].Score // 3, 2, 1
	}
	return pq[i].ID < pq[j].ID
}

func (pq *DescPriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.Index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}

func (pq *DescPriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*QueueEntry)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq DescPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index, pq[j].Index = i, j
}

// NewDescQueue returns an initialized queue holding the given ids with their
// scores.
func NewDescQueue(ids []string, score func(id string) float64) *DescPriorityQueue {
	pq := make(DescPriorityQueue, 0, len(ids))
	for _, id := range ids {
		pq = append(pq, &QueueEntry{Index: len(pq), Score: score(id), ID: id})
	}
	heap.Init(&pq)
	return &pq
}

// PopID removes and returns the id with the highest score.
func (pq *DescPriorityQueue) PopID() string {
	return heap.Pop(pq).(*QueueEntry).ID
}
