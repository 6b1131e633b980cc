package particleground

// FrameQueue is a Scheduler driven by the host calling Tick once per refresh.
// It is not safe for concurrent use.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func()
	order   []FrameID
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

// RequestFrame queues fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	id := q.next
	q.pending[id] = fn
	q.order = append(q.order, id)
	return id
}

// CancelFrame drops a queued request. Unknown or already run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if _, ok := q.pending[id]; !ok {
		return
	}
	delete(q.pending, id)
	for i, o := range q.order {
		if o == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}

// Tick runs the callbacks requested before the call, in request order, and
// returns how many ran. Frames requested by those callbacks wait for the
// next tick.
func (q *FrameQueue) Tick() int {
	batch := q.order
	q.order = nil
	n := 0
	for _, id := range batch {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn()
		n++
	}
	return n
}

// Pending returns the number of outstanding requests.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
