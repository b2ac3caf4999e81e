package pkg

import (
	"encoding/binary"
	"sync"

	"lukechampine.com/frand"
)

const (
	seededBufSize = 1024
	seededRounds  = 20
)

// Source is the randomness every game decision draws from.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

type globalSource struct{}

// NewSource returns a source backed by the process-wide frand generator.
// It is safe for concurrent use.
func NewSource() Source {
	return globalSource{}
}

func (globalSource) Intn(n int) int {
	return frand.Intn(n)
}

func (globalSource) Float64() float64 {
	return frand.Float64()
}

type seededSource struct {
	mu  sync.Mutex
	rng *frand.RNG
}

// NewSeededSource returns a reproducible source: equal seeds yield equal streams.
func NewSeededSource(seed uint64) Source {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)

	return &seededSource{rng: frand.NewCustom(key, seededBufSize, seededRounds)}
}

func (that *seededSource) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}

func (that *seededSource) Float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Float64()
}
