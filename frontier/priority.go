package frontier

import (
	"container/heap"
)

// Priority removes the entry with the lowest Cost first. Entries of equal
// cost leave in the order they were pushed.
//
// Unlike the lazy decrease-key of a classic Dijkstra heap, Priority keeps
// one live item per state it has seen cheapest and updates it in place via
// Improve, so a costlier duplicate is never expanded first.
type Priority[S comparable] struct {
	pq   entryPQ[S]
	seq  uint64
	in   membership[S]
	best map[S]*pqItem[S]
}

// NewPriority returns an empty cost-ordered frontier.
func NewPriority[S comparable]() *Priority[S] {
	return &Priority[S]{
		in:   make(membership[S]),
		best: make(map[S]*pqItem[S]),
	}
}

// Push inserts e.
func (p *Priority[S]) Push(e Entry[S]) {
	it := &pqItem[S]{entry: e, seq: p.next()}
	heap.Push(&p.pq, it)
	p.in.add(e.State)
	if cur, ok := p.best[e.State]; !ok || e.Cost < cur.entry.Cost {
		p.best[e.State] = it
	}
}

// Pop removes the cheapest entry.
func (p *Priority[S]) Pop() Entry[S] {
	it := heap.Pop(&p.pq).(*pqItem[S])
	p.in.remove(it.entry.State)
	if p.best[it.entry.State] == it {
		delete(p.best, it.entry.State)
	}

	return it.entry
}

// Len returns the number of queued entries.
func (p *Priority[S]) Len() int { return p.pq.Len() }

// Contains reports whether an entry for s is queued.
func (p *Priority[S]) Contains(s S) bool { return p.in.has(s) }

// Improve replaces the queued entry for e.State with e if e.Cost is strictly
// lower. The replaced entry takes a fresh insertion rank, exactly as if the
// cheaper path had been pushed and the costlier one dropped.
func (p *Priority[S]) Improve(e Entry[S]) bool {
	it, ok := p.best[e.State]
	if !ok || e.Cost >= it.entry.Cost {
		return false
	}
	it.entry = e
	it.seq = p.next()
	heap.Fix(&p.pq, it.index)

	return true
}

func (p *Priority[S]) next() uint64 {
	p.seq++

	return p.seq
}

// pqItem is a heap slot; index is maintained by Swap for heap.Fix.
type pqItem[S comparable] struct {
	entry Entry[S]
	seq   uint64 // insertion rank, breaks cost ties
	index int
}

// entryPQ is a min-heap on (Cost, seq).
type entryPQ[S comparable] []*pqItem[S]

func (pq entryPQ[S]) Len() int { return len(pq) }

func (pq entryPQ[S]) Less(i, j int) bool {
	if pq[i].entry.Cost != pq[j].entry.Cost {
		return pq[i].entry.Cost < pq[j].entry.Cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ[S]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *entryPQ[S]) Push(x any) {
	it := x.(*pqItem[S])
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *entryPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}
