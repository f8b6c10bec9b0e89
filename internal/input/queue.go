package input

import "sync"

// Delta is one rotation adjustment decoded from an arrow key.
type Delta struct {
	X, Y float64
}

// Queue is an unbounded FIFO of pending deltas. The reader pushes, the
// render loop drains; neither side ever blocks and no delta is dropped.
type Queue struct {
	mu      sync.Mutex
	pending []Delta
}

func NewQueue() *Queue {
	return &Queue{pending: make([]Delta, 0, 16)}
}

func (q *Queue) Push(d Delta) {
	q.mu.Lock()
	q.pending = append(q.pending, d)
	q.mu.Unlock()
}

// Drain returns all pending deltas in arrival order and empties the queue.
// It never blocks.
func (q *Queue) Drain() []Delta {
	q.mu.Lock()
	out := q.pending
	q.pending = make([]Delta, 0, 16)
	q.mu.Unlock()
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
