package simulation

import (
	"fmt"
	"math/rand/v2"
)

// Rand is the single seedable random source of a simulation session. Every
// probabilistic choice (stock levels, prices, expiry, order contents,
// delivery lead times) routes through it, so a fixed seed replays a run
// exactly. The underlying PCG state can be captured into a snapshot and
// restored, letting a resumed session continue the same sequence.
type Rand struct {
	*rand.Rand
	src *rand.PCG
}

// NewRand creates a seeded random source
func NewRand(seed uint64) *Rand {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Rand{Rand: rand.New(src), src: src}
}

// State returns the serialized generator state
func (r *Rand) State() ([]byte, error) {
	state, err := r.src.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal rng state: %w", err)
	}
	return state, nil
}

// Restore replaces the generator state with a previously captured one
func (r *Rand) Restore(state []byte) error {
	if err := r.src.UnmarshalBinary(state); err != nil {
		return fmt.Errorf("restore rng state: %w", err)
	}
	return nil
}
