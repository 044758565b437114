// Package random provides the uniform integer source used to sample simulated
// component values. A single default source is created per process and is safe
// for concurrent use; independent streams can be created with New.
package random

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// ErrInvalidConfig is returned when a source configuration is invalid.
var ErrInvalidConfig = errors.New("random: invalid configuration")

// Source produces uniformly distributed integers.
type Source interface {
	// Intn returns a value in [0, n). Implementations return 0 when n <= 0.
	Intn(n int) int
}

// FakerSource is a Source backed by a gofakeit Faker over a PCG stream.
// The Faker is created in lock mode, so a FakerSource may be shared between goroutines.
type FakerSource struct {
	faker *gofakeit.Faker
	seed  uint64
}

// New creates a source seeded with seed. A zero seed is replaced by one derived
// from the current time.
func New(seed uint64) *FakerSource {
	if seed == 0 {
		seed = clockSeed()
	}
	return &FakerSource{
		faker: gofakeit.NewFaker(rand.NewPCG(seed, seed), true),
		seed:  seed,
	}
}

// Intn returns a uniformly distributed value in [0, n).
func (s *FakerSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.faker.Number(0, n-1)
}

// Seed returns the seed the source was created with.
func (s *FakerSource) Seed() uint64 {
	return s.seed
}

func clockSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		return 1
	}
	return seed
}

var (
	defaultMu     sync.RWMutex
	defaultSource Source
)

// Default returns the process-wide source, creating a clock-seeded one on first use.
func Default() Source {
	defaultMu.RLock()
	src := defaultSource
	defaultMu.RUnlock()
	if src != nil {
		return src
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSource == nil {
		defaultSource = New(0)
	}
	return defaultSource
}

// SetDefault replaces the process-wide source. It is meant to be called once at
// start-up, before any sampling happens.
func SetDefault(src Source) error {
	if src == nil {
		return fmt.Errorf("%w: source is nil", ErrInvalidConfig)
	}
	defaultMu.Lock()
	defaultSource = src
	defaultMu.Unlock()
	return nil
}

// Seeded installs a new default source with the given seed and returns it.
func Seeded(seed uint64) *FakerSource {
	src := New(seed)
	defaultMu.Lock()
	defaultSource = src
	defaultMu.Unlock()
	return src
}
