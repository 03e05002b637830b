package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/lexgo/core"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// SortedDocs generates n strictly increasing doc ids starting at or
// above 0, with gaps of at most maxGap between consecutive ids.
func (r *RNG) SortedDocs(n, maxGap int) []core.DocID {
	docs := make([]core.DocID, n)
	doc := core.DocID(-1)
	for i := range docs {
		doc += core.DocID(1 + r.Intn(maxGap))
		docs[i] = doc
	}
	return docs
}
