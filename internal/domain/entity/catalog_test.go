package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotion_IsCurrentlyActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	promo := &Promotion{
		IsActive:  true,
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
	}
	assert.True(t, promo.IsCurrentlyActive(now))

	t.Run("inactive flag wins regardless of window", func(t *testing.T) {
		off := *promo
		off.IsActive = false
		assert.False(t, off.IsCurrentlyActive(now))
	})

	t.Run("before start", func(t *testing.T) {
		assert.False(t, promo.IsCurrentlyActive(promo.StartDate.Add(-time.Second)))
	})

	t.Run("after end", func(t *testing.T) {
		assert.False(t, promo.IsCurrentlyActive(promo.EndDate.Add(time.Second)))
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		assert.True(t, promo.IsCurrentlyActive(promo.StartDate))
		assert.True(t, promo.IsCurrentlyActive(promo.EndDate))
	})
}
