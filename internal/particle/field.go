package particle

// Source draws the random numbers used at creation time.
type Source interface {
	Range(min, max float64) float64
}

// Ranges bounds the random draws made for each new particle.
type Ranges struct {
	Velocity  float64 // Half-width of the per-axis velocity range
	RadiusMin float64
	RadiusMax float64
}

// DefaultRanges matches the slow, small dots of the page background.
var DefaultRanges = Ranges{
	Velocity:  0.25,
	RadiusMin: 1,
	RadiusMax: 3,
}

// Field is the full particle set for one viewport size.
type Field struct {
	Bounds    Bounds
	Particles []Particle
}

// Populate builds a brand new field of count particles spread uniformly over
// [0,width) x [0,height). Zero or negative sizes collapse the position range
// to zero instead of failing.
func Populate(rng Source, b Bounds, count int, r Ranges) *Field {
	if count < 0 {
		count = 0
	}
	b.Width = max(b.Width, 0)
	b.Height = max(b.Height, 0)

	f := &Field{
		Bounds:    b,
		Particles: make([]Particle, count),
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:      rng.Range(0, b.Width),
			Y:      rng.Range(0, b.Height),
			VX:     rng.Range(-r.Velocity, r.Velocity),
			VY:     rng.Range(-r.Velocity, r.Velocity),
			Radius: rng.Range(r.RadiusMin, r.RadiusMax),
		}
	}
	return f
}

// Step advances every particle by one tick. Particles do not interact, so
// the order is irrelevant.
func (f *Field) Step() {
	for i := range f.Particles {
		f.Particles[i] = Step(f.Particles[i], f.Bounds)
	}
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.Particles)
}
