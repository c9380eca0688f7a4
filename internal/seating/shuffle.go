package seating

import (
	"math/rand/v2"
	"sync"
)

// Source is the uniform random source the shuffle draws from.
// IntN returns a value in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a reproducible source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a source seeded from the runtime's random state.
func NewRandomSource() Source {
	return NewSource(rand.Uint64())
}

// LockedSource makes a Source safe to share between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Shuffle returns the numbers 1..n in a uniformly random order using a
// Fisher-Yates pass from the back of the slice.
func Shuffle(n int, src Source) []int {
	numbers := make([]int, n)
	for i := range numbers {
		numbers[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}
	return numbers
}
