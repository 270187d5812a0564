package frontier

// FIFO removes entries in insertion order.
type FIFO[S comparable] struct {
	items []Entry[S]
	head  int
	in    membership[S]
}

// NewFIFO returns an empty first-in-first-out frontier.
func NewFIFO[S comparable]() *FIFO[S] {
	return &FIFO[S]{in: make(membership[S])}
}

// Push appends e at the tail.
func (q *FIFO[S]) Push(e Entry[S]) {
	q.items = append(q.items, e)
	q.in.add(e.State)
}

// Pop removes the head entry.
func (q *FIFO[S]) Pop() Entry[S] {
	e := q.items[q.head]
	q.items[q.head] = Entry[S]{}
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	q.in.remove(e.State)

	return e
}

// Len returns the number of queued entries.
func (q *FIFO[S]) Len() int { return len(q.items) - q.head }

// Contains reports whether an entry for s is queued.
func (q *FIFO[S]) Contains(s S) bool { return q.in.has(s) }

// LIFO removes the most recently pushed entry first.
type LIFO[S comparable] struct {
	items []Entry[S]
	in    membership[S]
}

// NewLIFO returns an empty last-in-first-out frontier.
func NewLIFO[S comparable]() *LIFO[S] {
	return &LIFO[S]{in: make(membership[S])}
}

// Push puts e on top of the stack.
func (s *LIFO[S]) Push(e Entry[S]) {
	s.items = append(s.items, e)
	s.in.add(e.State)
}

// Pop removes the top entry.
func (s *LIFO[S]) Pop() Entry[S] {
	n := len(s.items) - 1
	e := s.items[n]
	s.items[n] = Entry[S]{}
	s.items = s.items[:n]
	s.in.remove(e.State)

	return e
}

// Len returns the number of queued entries.
func (s *LIFO[S]) Len() int { return len(s.items) }

// Contains reports whether an entry for st is queued.
func (s *LIFO[S]) Contains(st S) bool { return s.in.has(st) }
