package searcher

import "container/heap"

// Frontier holds the nodes waiting to be expanded. Pop returns the node
// with the greatest priority; equal priorities come out in insertion order.
type Frontier interface {
	Push(id int, priority int)
	Pop() int
	Len() int
	Clear()
}

type entry struct {
	id       int
	priority int
	seq      uint64
}

type entries []entry

func (e entries) Len() int { return len(e) }

func (e entries) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority > e[j].priority
	}
	return e[i].seq < e[j].seq
}

func (e entries) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries) Push(x any) { *e = append(*e, x.(entry)) }

func (e *entries) Pop() any {
	old := *e
	last := old[len(old)-1]
	*e = old[:len(old)-1]
	return last
}

type heapFrontier struct {
	entries entries
	seq     uint64
}

// NewFrontier returns a binary max-heap frontier.
func NewFrontier() Frontier {
	return &heapFrontier{}
}

func (f *heapFrontier) Push(id int, priority int) {
	heap.Push(&f.entries, entry{id: id, priority: priority, seq: f.seq})
	f.seq++
}

func (f *heapFrontier) Pop() int {
	if len(f.entries) == 0 {
		panic("cannot pop from an empty frontier")
	}
	return heap.Pop(&f.entries).(entry).id
}

func (f *heapFrontier) Len() int {
	return len(f.entries)
}

func (f *heapFrontier) Clear() {
	f.entries = nil
	f.seq = 0
}
