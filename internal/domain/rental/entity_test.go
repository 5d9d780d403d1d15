//go:build unit

package rental_test

import (
	"testing"
	"time"

	"riderhub/internal/domain/rental"
	"riderhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		actual := b.BuildDomain()
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.DriverID, actual.DriverID())
		assert.Equal(t, b.MotorcycleID, actual.MotorcycleID())
		assert.False(t, actual.IsClosed())
		assert.Nil(t, actual.ReturnedAt())
	})

	t.Run("start date is the day after creation", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
		actual := builder.NewRentalBuilder().WithNow(now).BuildDomain()

		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), actual.StartDate())
		assert.Equal(t, time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), actual.ExpectedReturnDate())
	})

	t.Run("end date starts as the expected return date", func(t *testing.T) {
		actual := builder.NewRentalBuilder().WithPlan(15, 2800).BuildDomain()

		assert.Equal(t, actual.ExpectedReturnDate(), actual.EndDate())
		assert.Equal(t, int32(15), actual.PlanDays())
		assert.Equal(t, int64(2800), actual.DailyRate().Cents())
	})
}

func TestRentalClose(t *testing.T) {
	now := time.Date(2025, 3, 25, 10, 0, 0, 0, time.UTC)

	t.Run("close rewrites the end date", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()
		returned := r.StartDate().AddDate(0, 0, 4)

		require.NoError(t, r.Close(returned, now))
		assert.True(t, r.IsClosed())
		assert.Equal(t, returned, r.EndDate())
		require.NotNil(t, r.ReturnedAt())
		assert.Equal(t, now, *r.ReturnedAt())
	})

	t.Run("close again with the same date is a no-op", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()
		returned := r.StartDate().AddDate(0, 0, 4)

		require.NoError(t, r.Close(returned, now))
		require.NoError(t, r.Close(returned, now.Add(time.Hour)))
		assert.Equal(t, now, *r.ReturnedAt())
	})

	t.Run("close again with a different date is rejected", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()
		returned := r.StartDate().AddDate(0, 0, 4)

		require.NoError(t, r.Close(returned, now))
		err := r.Close(returned.AddDate(0, 0, 1), now)
		assert.ErrorIs(t, err, rental.ErrAlreadyClosed)
	})

	t.Run("return before start is rejected", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()

		err := r.Close(r.StartDate().AddDate(0, 0, -1), now)
		assert.ErrorIs(t, err, rental.ErrReturnBeforeStart)
		assert.False(t, r.IsClosed())
	})

	t.Run("return on the start date closes with zero used days", func(t *testing.T) {
		r := builder.NewRentalBuilder().BuildDomain()

		require.NoError(t, r.Close(r.StartDate(), now))
		assert.Equal(t, r.StartDate(), r.EndDate())
	})
}
