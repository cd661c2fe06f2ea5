package vmath

import "time"

// FastRand is a xorshift64 generator, not safe for concurrent use
// Owned by the game loop; deterministic for a given seed
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, seed 0 selects a time based seed
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a value in [lo, hi] inclusive
func (r *FastRand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// Weighted picks an index proportionally to weights
// Rolls in [1, total] and walks the cumulative sum; -1 when no weight is positive
func (r *FastRand) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	roll := r.Range(1, total)
	acc := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if roll <= acc {
			return i
		}
	}
	return len(weights) - 1
}

// Pick returns a random rune of charset
func (r *FastRand) Pick(charset string) rune {
	runes := []rune(charset)
	if len(runes) == 0 {
		return ' '
	}
	return runes[r.Intn(len(runes))]
}
