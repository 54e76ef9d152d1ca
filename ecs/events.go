package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventClick = "click"

// ClickEvent is emitted when the pointer is pressed over an entity's bounds.
type ClickEvent struct {
	Entity Entity
	X, Y   float64
}

// EventQueue is a FIFO queue cleared at the end of every frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events of type typ and removes them from the queue.
// An empty typ drains everything.
func (q *EventQueue) Drain(typ string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	if typ == "" {
		out := q.items
		q.items = nil
		return out
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	clear(q.items[len(kept):])
	q.items = kept
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
