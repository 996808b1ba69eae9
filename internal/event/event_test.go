package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

type leaver struct {
	d     *Dispatcher
	calls int
}

func (l *leaver) OnEvent(e Event) {
	l.calls++
	l.d.Unsubscribe(e.Type, l)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(Resized, a)
	d.Subscribe(Resized, b)
	d.Subscribe("Other", b)

	d.Dispatch(Event{Type: Resized, Data: 1})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, 1, a.got[0].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(Resized, a)
	d.Subscribe(Resized, b)
	d.Unsubscribe(Resized, a)

	d.Dispatch(Event{Type: Resized})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
	assert.Equal(t, 1, d.Count(Resized))

	// Unknown listener is ignored.
	d.Unsubscribe(Resized, &recorder{})
	assert.Equal(t, 1, d.Count(Resized))
}

func TestUnsubscribeWhileDispatching(t *testing.T) {
	d := NewDispatcher()
	l := &leaver{d: d}
	r := &recorder{}
	d.Subscribe(Resized, l)
	d.Subscribe(Resized, r)

	d.Dispatch(Event{Type: Resized})
	d.Dispatch(Event{Type: Resized})

	assert.Equal(t, 1, l.calls)
	assert.Len(t, r.got, 2)
}
