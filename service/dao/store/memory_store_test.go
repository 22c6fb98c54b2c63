package store

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/noted/service/dao"
)

type item struct {
	Key   string
	Value int
}

func newStore(options ...Option[string, item]) *MemoryStore[string, item] {
	return NewMemoryStore[string, item](func(i *item) string { return i.Key }, options...)
}

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	require.NoError(t, s.Save(ctx, &item{Key: "a", Value: 1}))
	require.NoError(t, s.Save(ctx, &item{Key: "a", Value: 2}))
	assert.ErrorIs(t, s.Save(ctx, nil), dao.ErrNilEntity)

	actual, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, actual.Value)
	assert.True(t, s.Contains("a"))
	assert.Equal(t, 1, s.Len())

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	require.NoError(t, s.Delete(ctx, "a"))
	assert.ErrorIs(t, s.Delete(ctx, "a"), dao.ErrNotFound)
	assert.False(t, s.Contains("a"))
}

func TestMemoryStore_Insert(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Insert(&item{Key: "a"}))
	err := s.Insert(&item{Key: "a", Value: 9})
	assert.ErrorIs(t, err, dao.ErrDuplicateID)
	assert.ErrorIs(t, s.Insert(nil), dao.ErrNilEntity)

	actual, err := s.Load(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 0, actual.Value)
}

func TestMemoryStore_Order(t *testing.T) {
	s := newStore(WithOrder[string, item](strings.Compare))
	for _, key := range []string{"c", "a", "d", "b"} {
		require.NoError(t, s.Save(context.Background(), &item{Key: key}))
	}
	values, err := s.List(context.Background())
	require.NoError(t, err)
	var keys []string
	for _, v := range values {
		keys = append(keys, v.Key)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}

func TestMemoryStore_Replace(t *testing.T) {
	testCases := []struct {
		description string
		values      []*item
		expectErr   error
		expectLen   int
	}{
		{description: "empty", values: nil, expectLen: 0},
		{description: "distinct", values: []*item{{Key: "x"}, {Key: "y"}}, expectLen: 2},
		{description: "duplicate", values: []*item{{Key: "x"}, {Key: "x"}}, expectErr: dao.ErrDuplicateID, expectLen: 1},
		{description: "nil entry", values: []*item{{Key: "x"}, nil}, expectErr: dao.ErrNilEntity, expectLen: 1},
	}

	for _, testCase := range testCases {
		s := newStore()
		require.NoError(t, s.Save(context.Background(), &item{Key: "old"}))
		err := s.Replace(testCase.values)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			assert.True(t, s.Contains("old"), testCase.description)
		} else {
			assert.NoError(t, err, testCase.description)
			assert.False(t, s.Contains("old"), testCase.description)
		}
		assert.Equal(t, testCase.expectLen, s.Len(), testCase.description)
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := newStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Save(context.Background(), &item{Key: string(rune('A' + i)), Value: i})
			_ = s.Values()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
