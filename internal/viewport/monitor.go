package viewport

import (
	"go.uber.org/zap"

	"github.com/olivierh59500/particle-backdrop/internal/event"
	"github.com/olivierh59500/particle-backdrop/internal/particle"
)

// Monitor tracks the drawing area size and raises event.Resized whenever
// the host reports a different one.
type Monitor struct {
	bounds     particle.Bounds
	dispatcher *event.Dispatcher
	logger     *zap.Logger
}

// NewMonitor starts with the given size.
func NewMonitor(width, height float64, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		bounds:     particle.Bounds{Width: width, Height: height},
		dispatcher: event.NewDispatcher(),
		logger:     logger,
	}
}

// Size returns the current dimensions.
func (m *Monitor) Size() particle.Bounds {
	return m.bounds
}

// Update records the size observed by the host. Listeners are notified only
// when it differs from the previous one. It reports whether it did.
func (m *Monitor) Update(width, height float64) bool {
	b := particle.Bounds{Width: width, Height: height}
	if b == m.bounds {
		return false
	}
	m.logger.Debug("viewport resized",
		zap.Float64("from_width", m.bounds.Width),
		zap.Float64("from_height", m.bounds.Height),
		zap.Float64("width", width),
		zap.Float64("height", height))
	m.bounds = b
	m.dispatcher.Dispatch(event.Event{Type: event.Resized, Data: b})
	return true
}

// OnResize calls fn with the new bounds after every change. The returned
// func detaches it; calling it more than once is harmless.
func (m *Monitor) OnResize(fn func(particle.Bounds)) (detach func()) {
	l := &resizeListener{fn: fn}
	m.dispatcher.Subscribe(event.Resized, l)
	return func() {
		m.dispatcher.Unsubscribe(event.Resized, l)
	}
}

// Listeners returns the number of attached resize listeners.
func (m *Monitor) Listeners() int {
	return m.dispatcher.Count(event.Resized)
}

type resizeListener struct {
	fn func(particle.Bounds)
}

func (l *resizeListener) OnEvent(e event.Event) {
	if b, ok := e.Data.(particle.Bounds); ok {
		l.fn(b)
	}
}
