package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_Next(t *testing.T) {
	t.Run("Monotonically Decreasing", func(t *testing.T) {
		alloc := NewAllocator()

		first := alloc.Next(KindAsset)
		second := alloc.Next(KindAsset)
		third := alloc.Next(KindAsset)

		assert.Equal(t, int64(-4000), first)
		assert.Equal(t, int64(-4001), second)
		assert.Equal(t, int64(-4002), third)
	})

	t.Run("Independent Counters Per Kind", func(t *testing.T) {
		alloc := NewAllocator()

		assert.Equal(t, int64(-1000), alloc.Next(KindBudget))
		assert.Equal(t, int64(-2000), alloc.Next(KindCampaign))
		assert.Equal(t, int64(-3000), alloc.Next(KindAssetGroup))
		assert.Equal(t, int64(-1001), alloc.Next(KindBudget))
	})

	t.Run("No Reuse Across Kinds", func(t *testing.T) {
		alloc := NewAllocator()
		seen := make(map[int64]bool)

		for i := 0; i < 100; i++ {
			for _, kind := range []Kind{KindBudget, KindCampaign, KindAssetGroup, KindAsset, KindSitelink} {
				id := alloc.Next(kind)
				assert.False(t, seen[id], "id %d issued twice", id)
				assert.Negative(t, id)
				seen[id] = true
			}
		}
	})

	t.Run("Fresh Allocators Are Independent", func(t *testing.T) {
		a := NewAllocator()
		b := NewAllocator()

		assert.Equal(t, a.Next(KindAsset), b.Next(KindAsset))
	})
}
