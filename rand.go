package main

// Rand is a deterministic pseudo-random generator with value semantics.
// Copying a Rand copies its entire state, so a copy produces the same
// sequence as the original from the point of the copy onwards. This matters
// because generators fix their random choices (voxel heights, arrow dropout)
// at layout time and must be exactly reproducible from a seed.
//
// The implementation is xorshift64*, which is plenty for visual variety.
type Rand struct {
	state uint64
}

func NewRand(seed int64) Rand {
	// A zero state would make xorshift emit zeros forever.
	if seed == 0 {
		seed = -0x61C8864680B583EB // uint64(seed) == 0x9E3779B97F4A7C15
	}
	return Rand{state: uint64(seed)}
}

func (r *Rand) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

// RInt returns a pseudo-random integer in [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	return min + int64(r.next()%uint64(max-min+1))
}

// RFloat returns a pseudo-random float in [min, max).
func (r *Rand) RFloat(min float64, max float64) float64 {
	unit := float64(r.next()>>11) / (1 << 53)
	return min + unit*(max-min)
}

// globalRand backs the package-level convenience functions. Prefer a local
// Rand in anything that needs reproducibility independent of call order.
var globalRand = NewRand(0)

func RSeed(seed int64) {
	globalRand = NewRand(seed)
}

func RInt(min int64, max int64) int64 {
	return globalRand.RInt(min, max)
}

func RFloat(min float64, max float64) float64 {
	return globalRand.RFloat(min, max)
}
