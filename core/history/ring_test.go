package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingInsertionOrder(t *testing.T) {
	for n := 1; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			ring := NewRing(10)
			for i := 1; i <= n; i++ {
				ring.Append(fmt.Sprintf("cmd%d", i))
			}

			got := ring.List()
			assert.Len(t, got, n)
			for i, e := range got {
				assert.Equal(t, uint64(i+1), e.ID)
				assert.Equal(t, fmt.Sprintf("cmd%d", i+1), e.Line)
			}
		})
	}
}

func TestRingOverwritesOldest(t *testing.T) {
	ring := NewRing(10)
	for i := 1; i <= 11; i++ {
		ring.Append(fmt.Sprintf("cmd%d", i))
	}

	got := ring.List()
	assert.Len(t, got, 10)
	assert.Equal(t, uint64(2), got[0].ID, "id 1 should have been evicted")
	for i, e := range got {
		assert.Equal(t, uint64(i+2), e.ID)
	}
	assert.Equal(t, uint64(12), ring.NextID())
}

func TestRingSkipsWhitespace(t *testing.T) {
	ring := NewRing(10)
	ring.Append("")
	ring.Append("   ")
	ring.Append("\t")
	assert.Empty(t, ring.List())
	assert.Equal(t, uint64(1), ring.NextID(), "ids are only spent on recorded lines")

	ring.Append("ls")
	assert.Equal(t, []Entry{{ID: 1, Line: "ls"}}, ring.List())
}

func TestRingFindByID(t *testing.T) {
	ring := NewRing(3)
	for i := 1; i <= 5; i++ {
		ring.Append(fmt.Sprintf("cmd%d", i))
	}

	// 1 and 2 were overwritten by 4 and 5.
	for _, purged := range []uint64{0, 1, 2, 6, 100} {
		_, ok := ring.FindByID(purged)
		assert.False(t, ok, "id %d should not be found", purged)
	}
	for _, alive := range []uint64{3, 4, 5} {
		line, ok := ring.FindByID(alive)
		assert.True(t, ok)
		assert.Equal(t, fmt.Sprintf("cmd%d", alive), line)
	}
}

func TestRingClearKeepsIDCounter(t *testing.T) {
	ring := NewRing(10)
	ring.Append("one")
	ring.Append("two")
	ring.Clear()

	assert.Empty(t, ring.List())
	assert.Equal(t, uint64(3), ring.NextID())

	ring.Append("three")
	assert.Equal(t, []Entry{{ID: 3, Line: "three"}}, ring.List())
}

func TestRingTinyCapacity(t *testing.T) {
	ring := NewRing(0) // clamped to 1
	assert.Equal(t, 1, ring.Cap())
	ring.Append("a")
	ring.Append("b")
	assert.Equal(t, []Entry{{ID: 2, Line: "b"}}, ring.List())
}
