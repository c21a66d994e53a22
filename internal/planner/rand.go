package planner

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness the orchestrator consumes. It is injected so
// tests can pin the weighted selection.
type Rand interface {
	Float64() float64
}

// NewRequestRand returns a fresh request-scoped source. Plans for
// identical requests are intentionally not deterministic.
func NewRequestRand() Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now<<1|1))
}

// weightedPick chooses an index in [0, n) with weight 1/(i+1), so the
// best-ranked candidates dominate without making the choice a foregone
// conclusion.
func weightedPick(r Rand, n int) int {
	if n <= 1 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += 1.0 / float64(i+1)
	}
	x := r.Float64() * total
	for i := 0; i < n; i++ {
		x -= 1.0 / float64(i+1)
		if x < 0 {
			return i
		}
	}
	return n - 1
}
