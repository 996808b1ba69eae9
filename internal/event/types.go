package event

const (
	Resized EventType = "Resized" // Viewport size changed; Data is the new particle.Bounds
)
