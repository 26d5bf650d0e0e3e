package ecs

// Pop asks for a ball to be split on the next drain
type Pop struct {
	Ball EntityID
}

// PopQueue is a FIFO of pop requests. Detection pushes while walking a
// snapshot of the world; ConsumePops drains once per tick, so new child
// balls never appear under an iteration that is still running.
type PopQueue struct {
	items []Pop
}

// Push adds a request
func (q *PopQueue) Push(p Pop) {
	if q == nil {
		return
	}
	q.items = append(q.items, p)
}

// Len returns the number of pending requests
func (q *PopQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all requests in push order and clears the queue
func (q *PopQueue) Drain() []Pop {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Reset discards pending requests
func (q *PopQueue) Reset() {
	if q == nil {
		return
	}
	q.items = nil
}
