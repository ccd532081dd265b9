package session

import (
	"sync"

	"github.com/plus3/tetris/tetris"
)

// InputQueue collects player inputs from any goroutine until the next frame
// applies them in arrival order.
type InputQueue struct {
	mu      sync.Mutex
	pending []tetris.Input
}

func (q *InputQueue) Push(in tetris.Input) {
	q.mu.Lock()
	q.pending = append(q.pending, in)
	q.mu.Unlock()
}

// Drain removes and returns every queued input, oldest first.
func (q *InputQueue) Drain() []tetris.Input {
	q.mu.Lock()
	defer q.mu.Unlock()
	pending := q.pending
	q.pending = nil
	return pending
}

func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
