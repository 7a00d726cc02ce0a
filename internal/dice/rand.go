package dice

import "math/rand/v2"

// randSource draws from a PCG generator. It satisfies Source and never
// returns an error.
type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded from the process-wide generator.
func NewSource() Source {
	return NewSeededSource(rand.Uint64(), rand.Uint64())
}

// NewSeededSource returns a deterministic Source. Two sources built with
// the same seeds produce the same draw sequence.
func NewSeededSource(hi, lo uint64) Source {
	return &randSource{rng: rand.New(rand.NewPCG(hi, lo))}
}

func (s *randSource) Next(min, max int) (int, error) {
	return min + s.rng.IntN(max-min+1), nil
}
