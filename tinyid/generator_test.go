package tinyid

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycleReader hands out the same few payloads forever, modelling a
// deliberately tiny id space.
type cycleReader struct {
	payloads []ID
	reads    int
}

func (r *cycleReader) Read(p []byte) (int, error) {
	id := r.payloads[r.reads%len(r.payloads)]
	r.reads++
	return copy(p, id[:]), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestGenerator_Generate_NoDuplicates(t *testing.T) {
	gen := NewGenerator()
	const count = 100_000
	seen := make(Set, count)
	for i := 0; i < count; i++ {
		id := gen.Generate()
		if !seen.Add(id) {
			t.Fatalf("Generate() produced duplicate %s after %d ids", id, i)
		}
	}
	assert.Equal(t, count, seen.Len())
}

func TestGenerator_WithSeed(t *testing.T) {
	first := NewGenerator(WithSeed([32]byte{1, 2, 3}))
	second := NewGenerator(WithSeed([32]byte{1, 2, 3}))
	other := NewGenerator(WithSeed([32]byte{9}))

	var firstIDs, otherIDs []ID
	for i := 0; i < 10; i++ {
		a, b := first.Generate(), second.Generate()
		assert.Equal(t, a, b)
		firstIDs = append(firstIDs, a)
		otherIDs = append(otherIDs, other.Generate())
	}
	assert.NotEqual(t, firstIDs, otherIDs)
}

func TestGenerator_GenerateUnique_AvoidsExisting(t *testing.T) {
	seed := [32]byte{42}
	replay := NewGenerator(WithSeed(seed))
	existing := NewSet()
	for i := 0; i < 50; i++ {
		existing.Add(replay.Generate())
	}
	expected := replay.Generate()

	gen := NewGenerator(WithSeed(seed))
	id, err := gen.GenerateUnique(existing)
	require.NoError(t, err)
	assert.False(t, existing.Contains(id))
	assert.Equal(t, expected, id, "the first 50 draws collide, the 51st must be returned")
}

func TestGenerator_GenerateUnique_Exhausted(t *testing.T) {
	tiny := []ID{FromUint64(1), FromUint64(2), FromUint64(3)}
	testCases := []struct {
		description   string
		maxAttempts   int
		expectedReads int
	}{
		{description: "default bound", expectedReads: DefaultMaxAttempts},
		{description: "custom bound", maxAttempts: 5, expectedReads: 5},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			reader := &cycleReader{payloads: tiny}
			gen := NewGenerator(WithRandom(reader), WithMaxAttempts(testCase.maxAttempts))
			id, err := gen.GenerateUnique(NewSet(tiny...))
			assert.ErrorIs(t, err, ErrExhaustedIDSpace)
			assert.Equal(t, Nil, id)
			assert.Equal(t, testCase.expectedReads, reader.reads)
		})
	}
}

func TestGenerator_GenerateUnique_SkipsNil(t *testing.T) {
	reader := &cycleReader{payloads: []ID{Nil, Nil, FromUint64(7)}}
	gen := NewGenerator(WithRandom(reader))
	id, err := gen.GenerateUnique(nil)
	require.NoError(t, err)
	assert.Equal(t, FromUint64(7), id)
	assert.Equal(t, 3, reader.reads)
}

func TestGenerator_GenerateUnique_FindsLastFreeSlot(t *testing.T) {
	tiny := []ID{FromUint64(1), FromUint64(2), FromUint64(3)}
	gen := NewGenerator(WithRandom(&cycleReader{payloads: tiny}))
	id, err := gen.GenerateUnique(NewSet(tiny[0], tiny[1]))
	require.NoError(t, err)
	assert.Equal(t, tiny[2], id)
}

func TestGenerator_SourceFailure(t *testing.T) {
	gen := NewGenerator(WithRandom(failingReader{}))

	_, err := gen.NewRandom()
	assert.ErrorContains(t, err, "entropy unavailable")

	_, err = gen.GenerateUnique(NewSet())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrExhaustedIDSpace)

	assert.Panics(t, func() { gen.Generate() })
}

func TestGenerator_Defaults(t *testing.T) {
	gen := NewGenerator(WithMaxAttempts(-1), WithRandom(nil))
	assert.Equal(t, DefaultMaxAttempts, gen.MaxAttempts())
	assert.False(t, gen.Generate().IsNil())
}

func TestGenerator_Concurrent(t *testing.T) {
	// ChaCha8 is not safe for concurrent use; the generator must serialise draws.
	gen := NewGenerator(WithSeed([32]byte{5}))
	const goroutines = 50
	const perGoroutine = 200

	results := make(chan ID, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				results <- gen.Generate()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(Set, goroutines*perGoroutine)
	for id := range results {
		if !seen.Add(id) {
			t.Fatalf("concurrent duplicate: %s", id)
		}
	}
}

func TestSetRand(t *testing.T) {
	SetRand(&cycleReader{payloads: []ID{FromUint64(11)}})
	defer SetRand(nil)

	assert.Equal(t, FromUint64(11), Generate())
	id, err := GenerateUnique(NewSet(FromUint64(12)))
	require.NoError(t, err)
	assert.Equal(t, FromUint64(11), id)

	_, err = GenerateUnique(NewSet(FromUint64(11)))
	assert.ErrorIs(t, err, ErrExhaustedIDSpace)
}
