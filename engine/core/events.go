package core

// EventQueue buffers events emitted by the window during PollEvents until the
// frame loop drains them. Single-threaded usage.
type EventQueue struct {
	pending []Event
}

func NewEventQueue() *EventQueue { return &EventQueue{pending: make([]Event, 0, 16)} }

func (q *EventQueue) Push(ev Event) { q.pending = append(q.pending, ev) }

func (q *EventQueue) Len() int { return len(q.pending) }

// Drain hands queued events to f in arrival order until f returns false.
// The queue is empty afterwards; events after the stopping one are dropped.
func (q *EventQueue) Drain(f func(Event) bool) {
	for _, ev := range q.pending {
		if !f(ev) {
			break
		}
	}
	clear(q.pending)
	q.pending = q.pending[:0]
}
