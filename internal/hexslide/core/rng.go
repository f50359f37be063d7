package core

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
// Every random draw in the engine goes through one of these so a seed
// reproduces the whole pipeline, fallback included.
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *SimpleRNG) Float() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Chance returns true with probability p.
func (r *SimpleRNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float() < p
}

// Dir returns a uniformly random direction.
func (r *SimpleRNG) Dir() Dir {
	return Dir(r.Intn(int(DirCount)))
}

// Fork derives an independent generator for a sub-task, e.g. one build
// attempt, without disturbing this generator's sequence more than one draw.
func (r *SimpleRNG) Fork() *SimpleRNG {
	return NewRNG(r.Next() | 1)
}
