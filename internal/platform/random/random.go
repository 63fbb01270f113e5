// Package random provides the seedable choice source behind simulated
// voice commands, brain readings and fallback coaching messages.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source is safe for concurrent use. A zero seed uses the runtime's
// global source.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Source {
	if seed == 0 {
		return &Source{}
	}
	return &Source{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

func (s *Source) IntN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
