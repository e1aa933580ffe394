package scheduler

import "time"

// Task is a scheduler queue entry: the module at ModuleIndex is due to run
// at Deadline. Tasks are ordered by Deadline ascending in a min-heap, the
// same container/heap timer-queue pattern used by event-loop style
// schedulers.
type Task struct {
	Deadline    time.Time
	ModuleIndex int
}

// taskHeap implements container/heap.Interface over Task, ordered by
// earliest Deadline first.
type taskHeap []Task

func (h taskHeap) Len() int            { return len(h) }
func (h taskHeap) Less(i, j int) bool  { return h[i].Deadline.Before(h[j].Deadline) }
func (h taskHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x interface{}) { *h = append(*h, x.(Task)) }

func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
