package grid

import "math/rand/v2"

// DefaultDensity is the historical one-in-five fill probability used when
// seeding a board at random.
const DefaultDensity = 0.2

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding of random fills.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// RandomFill sets each cell alive independently with probability pAlive
// and dead otherwise. Replays are deterministic for a fixed seed; callers
// wanting varied boards seed from the wall clock.
func (g *Grid) RandomFill(rng *RNG, pAlive float64) {
	src := rng.Source()
	for i := range g.data {
		if src.Float64() < pAlive {
			g.data[i] = Alive
		} else {
			g.data[i] = Dead
		}
	}
}
