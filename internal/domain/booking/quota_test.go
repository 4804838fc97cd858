//go:build unit

package booking_test

import (
	"testing"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestQuota(t *testing.T) {
	q := booking.NewQuota(booking.DefaultQuotaLimit)

	assert.NoError(t, q.Check(0))
	assert.NoError(t, q.Check(1))

	err := q.Check(2)
	assert.ErrorIs(t, err, booking.ErrQuotaExceeded)
	assert.True(t, errs.Is(err, errs.ErrQuota))
	assert.EqualError(t, err, "You have already reached the maximum of 2 bookings.")
	assert.ErrorIs(t, q.Check(5), booking.ErrQuotaExceeded)

	assert.Equal(t, "You have already reached the maximum of 2 bookings.", q.Message())
}

func TestNewQuotaFallsBackToDefault(t *testing.T) {
	fallback := booking.NewQuota(0)
	assert.NoError(t, fallback.Check(booking.DefaultQuotaLimit-1))
	assert.ErrorIs(t, fallback.Check(booking.DefaultQuotaLimit), booking.ErrQuotaExceeded)
	assert.Equal(t, "You have already reached the maximum of 1 booking.", booking.NewQuota(1).Message())
}
