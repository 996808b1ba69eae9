package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand generator so a run can be replayed
// from its seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator for the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a number in [min, max). An empty or inverted range yields min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}
