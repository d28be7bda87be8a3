// Package textutil provides random string generation and Fisher-Yates string
// shuffling backed by a seedable, concurrency-safe random source.
package textutil

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Alphabet is the character set RandomString samples from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength is the conventional length of a random string.
const DefaultLength = 5

// ErrNegativeLength is returned when a random string of negative length is requested.
var ErrNegativeLength = errors.New("length must not be negative")

// Source is a seeded random source safe for concurrent use.
// The zero value is not usable; create one with NewSource.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed. A zero seed means the
// current time is used.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

var defaultSource = NewSource(0)

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// RandomString returns length characters drawn uniformly from Alphabet,
// with replacement. A negative length returns ErrNegativeLength.
func (s *Source) RandomString(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("random string: %w (got %d)", ErrNegativeLength, length)
	}

	buf := make([]byte, length)

	s.mu.Lock()
	for i := range buf {
		buf[i] = Alphabet[s.rng.Intn(len(Alphabet))]
	}
	s.mu.Unlock()

	return string(buf), nil
}

// RandomString returns a random string from the default source.
func RandomString(length int) (string, error) {
	return defaultSource.RandomString(length)
}
