package mobility

import (
	"math/rand"
	"time"
)

const (
	// DefaultMaxStep is the largest distance a node can travel in one tick.
	DefaultMaxStep = 10
)

// Source is the random source used to draw movement steps.
// *rand.Rand satisfies it; tests can inject a fixed sequence.
type Source interface {
	// Intn returns an integer in [0, n).
	Intn(n int) int
}

// Model represents a 1-D random walk with a bounded step per tick.
type Model struct {
	// MaxStep bounds each step to the closed interval [-MaxStep, MaxStep].
	MaxStep int
}

// NewRandomWalk creates a random walk with the given maximum step.
func NewRandomWalk(maxStep int) *Model {
	if maxStep < 0 {
		maxStep = -maxStep
	}
	return &Model{MaxStep: maxStep}
}

// NewStationary creates a model in which nodes never move.
func NewStationary() *Model {
	return &Model{MaxStep: 0}
}

// NewSource returns a random source seeded with seed.
// A zero seed falls back to the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Step draws one step uniformly from [-MaxStep, MaxStep].
func (m *Model) Step(rng Source) int {
	if m.MaxStep <= 0 {
		return 0
	}
	return rng.Intn(2*m.MaxStep+1) - m.MaxStep
}

// Advance moves every position by an independent step, in order.
func (m *Model) Advance(positions []int, rng Source) {
	for i := range positions {
		positions[i] += m.Step(rng)
	}
}
