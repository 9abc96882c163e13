package id

import (
	"testing"

	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(7)
	seen := make(map[uint64]struct{}, 100)
	var last uint64
	for i := 0; i < 100; i++ {
		id, err := gen.NextID()
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
		seen[id] = struct{}{}
		assert.Equal(t, uint64(7), sonyflake.Decompose(id)["machine-id"])
	}
	assert.Len(t, seen, 100)
}
