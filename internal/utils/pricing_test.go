package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clubcourt-backend/internal/domain"
)

func TestBookingCost(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("WholeHours", func(t *testing.T) {
		cost, err := BookingCost(1500, start, start.Add(2*time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, int64(3000), cost)
	})

	t.Run("HalfHourStaysExact", func(t *testing.T) {
		cost, err := BookingCost(1000, start, start.Add(90*time.Minute))
		assert.NoError(t, err)
		assert.Equal(t, int64(1500), cost)
	})

	t.Run("SubCentRoundsHalfUp", func(t *testing.T) {
		// 99 cents/hour for 50 minutes is 82.5 cents.
		cost, err := BookingCost(99, start, start.Add(50*time.Minute))
		assert.NoError(t, err)
		assert.Equal(t, int64(83), cost)
	})

	t.Run("SubCentRoundsDown", func(t *testing.T) {
		// 100 cents/hour for 20 minutes is 33.33 cents.
		cost, err := BookingCost(100, start, start.Add(20*time.Minute))
		assert.NoError(t, err)
		assert.Equal(t, int64(33), cost)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := BookingCost(1000, start, start.Add(-time.Hour))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("EndEqualsStart", func(t *testing.T) {
		_, err := BookingCost(1000, start, start)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("SubMinuteDurationRejected", func(t *testing.T) {
		_, err := BookingCost(1000, start, start.Add(time.Hour+30*time.Second))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
