package particle

// Bounds is the size of the drawing area a field lives in.
type Bounds struct {
	Width, Height float64
}

// Particle is a single dot of the backdrop. It is a plain value: the step
// function returns an updated copy instead of mutating shared state.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, only ever sign-flipped after creation
	Radius float64
}

// Step advances p by one tick inside b.
//
// The position moves first and the velocity flips afterwards, so a particle
// crossing an edge may sit outside b for one tick before it comes back.
// Nothing is clamped.
func Step(p Particle, b Bounds) Particle {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > b.Width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > b.Height {
		p.VY = -p.VY
	}
	return p
}
