package event

// EventType names a kind of event.
type EventType string

// Event is one dispatched notification.
type Event struct {
	Type EventType
	Data interface{} // Payload, if any
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans events out to their subscribers.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			d.listeners[eventType] = append(next, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers event to every listener subscribed when the call began.
// Listeners may unsubscribe while being notified.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Count returns the number of listeners for eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}
