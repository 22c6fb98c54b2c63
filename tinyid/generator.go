package tinyid

import (
	"crypto/rand"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"sync"
)

// DefaultMaxAttempts bounds GenerateUnique retries.
const DefaultMaxAttempts = 100

// Lookup reports whether an ID is already taken.
type Lookup interface {
	Contains(id ID) bool
}

// Generator draws IDs from a random byte source. It is safe for concurrent
// use even when the underlying source is not.
type Generator struct {
	mu          sync.Mutex
	random      io.Reader
	maxAttempts int
}

// Option configures a Generator.
type Option func(g *Generator)

// WithRandom sets the random byte source.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

// WithSeed uses a deterministic ChaCha8 stream, so the same seed always
// yields the same sequence of IDs.
func WithSeed(seed [32]byte) Option {
	return func(g *Generator) {
		g.random = mrand.NewChaCha8(seed)
	}
}

// WithMaxAttempts overrides DefaultMaxAttempts for GenerateUnique.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

// NewGenerator creates a generator reading from crypto/rand unless another
// source is supplied.
func NewGenerator(options ...Option) *Generator {
	ret := &Generator{}
	for _, option := range options {
		option(ret)
	}
	if ret.random == nil {
		ret.random = rand.Reader
	}
	if ret.maxAttempts <= 0 {
		ret.maxAttempts = DefaultMaxAttempts
	}
	return ret
}

// MaxAttempts returns the GenerateUnique retry bound.
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// NewRandom draws a fresh ID, returning any error from the random source.
func (g *Generator) NewRandom() (ID, error) {
	var id ID
	g.mu.Lock()
	_, err := io.ReadFull(g.random, id[:])
	g.mu.Unlock()
	if err != nil {
		return Nil, fmt.Errorf("tinyid: failed to read random source: %w", err)
	}
	return id, nil
}

// Generate draws a fresh ID. Uniqueness is probabilistic only; use
// GenerateUnique when the ID must not collide with an existing collection.
// Generate panics if the random source fails, which crypto/rand never does.
func (g *Generator) Generate() ID {
	id, err := g.NewRandom()
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateUnique draws IDs until one is neither Nil nor contained in
// existing. It gives up after MaxAttempts draws with ErrExhaustedIDSpace.
func (g *Generator) GenerateUnique(existing Lookup) (ID, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		id, err := g.NewRandom()
		if err != nil {
			return Nil, err
		}
		if id.IsNil() {
			continue
		}
		if existing != nil && existing.Contains(id) {
			continue
		}
		return id, nil
	}
	return Nil, fmt.Errorf("%w: no free id after %d attempts", ErrExhaustedIDSpace, g.maxAttempts)
}

func (g *Generator) setRandom(r io.Reader) {
	if r == nil {
		r = rand.Reader
	}
	g.mu.Lock()
	g.random = r
	g.mu.Unlock()
}

var defaultGenerator = NewGenerator()

// SetRand replaces the source used by the package level functions. Passing
// nil restores crypto/rand.
func SetRand(r io.Reader) {
	defaultGenerator.setRandom(r)
}

// Generate draws an ID from the package level generator.
func Generate() ID {
	return defaultGenerator.Generate()
}

// GenerateUnique draws an ID absent from existing using the package level
// generator.
func GenerateUnique(existing Lookup) (ID, error) {
	return defaultGenerator.GenerateUnique(existing)
}
