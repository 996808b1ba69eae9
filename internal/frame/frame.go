// Package frame provides the "run this before the next paint" primitive the
// render loop is driven by.
package frame

// Handle identifies a scheduled callback.
type Handle uint64

// Scheduler runs callbacks roughly once per display refresh.
// Cancel guarantees a scheduled callback will not run.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// Queue is a Scheduler whose callbacks fire when the host calls Flush,
// once per frame. Callbacks scheduled during a flush wait for the next one.
// It is not safe for concurrent use; everything runs on the frame goroutine.
type Queue struct {
	next    Handle
	pending map[Handle]func()
	order   []Handle
}

var _ Scheduler = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{
		pending: make(map[Handle]func()),
	}
}

func (q *Queue) Schedule(fn func()) Handle {
	q.next++
	h := q.next
	q.pending[h] = fn
	q.order = append(q.order, h)
	return h
}

func (q *Queue) Cancel(h Handle) {
	delete(q.pending, h)
}

// Flush runs the callbacks that were pending when it was called, in
// scheduling order, skipping any cancelled along the way. It returns how
// many ran.
func (q *Queue) Flush() int {
	order := q.order
	q.order = nil

	ran := 0
	for _, h := range order {
		fn, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		fn()
		ran++
	}
	return ran
}

// Len returns the number of callbacks waiting for the next flush.
func (q *Queue) Len() int {
	return len(q.pending)
}
