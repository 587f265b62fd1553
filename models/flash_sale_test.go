package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectivelyActive(t *testing.T) {
	now := time.Now()
	window := FlashSale{
		IsActive:  true,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	}
	assert.True(t, window.EffectivelyActive(now))

	// La borne de début est incluse, celle de fin exclue.
	assert.True(t, window.EffectivelyActive(window.StartDate))
	assert.False(t, window.EffectivelyActive(window.EndDate))

	flagged := window
	flagged.IsActive = false
	assert.False(t, flagged.EffectivelyActive(now))

	early := window
	early.StartDate = now.Add(time.Minute)
	assert.False(t, early.EffectivelyActive(now))
}

func TestExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, (&FlashSale{EndDate: now.Add(-time.Second)}).Expired(now))
	assert.False(t, (&FlashSale{EndDate: now}).Expired(now))
	assert.False(t, (&FlashSale{EndDate: now.Add(time.Second)}).Expired(now))
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, DefaultSortOrder, (&FlashSale{}).SortOrder())
	assert.Equal(t, 1, (&FlashSale{Order: 1}).SortOrder())
}
