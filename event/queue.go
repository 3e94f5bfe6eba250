package event

import "sync"

// EventQueue is a FIFO of pending signals
// Producers are pipeline systems; the single consumer is the match dispatcher after each tick
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]GameEvent, 0, 64)}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
