package tinyid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(FromUint64(3), FromUint64(1))
	assert.True(t, set.Add(FromUint64(2)))
	assert.False(t, set.Add(FromUint64(2)))
	assert.True(t, set.Contains(FromUint64(1)))
	assert.Equal(t, 3, set.Len())

	assert.Equal(t, []ID{FromUint64(1), FromUint64(2), FromUint64(3)}, set.Sorted())

	set.Remove(FromUint64(1))
	assert.False(t, set.Contains(FromUint64(1)))
	assert.Equal(t, 2, set.Len())
}

func TestSort_ByteOrderNotStringOrder(t *testing.T) {
	ids := []ID{{0xff}, {0x00, 0x01}, {0x7f, 0xff}, Nil}
	Sort(ids)
	assert.Equal(t, []ID{Nil, {0x00, 0x01}, {0x7f, 0xff}, {0xff}}, ids)
	for i := 1; i < len(ids); i++ {
		assert.True(t, ids[i-1].Less(ids[i]))
	}
}
