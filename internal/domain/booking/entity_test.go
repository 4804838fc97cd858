//go:build unit

package booking_test

import (
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var later = time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	b := builder.NewBookingBuilder()
	contact, err := booking.NewContact(b.FullName, nil, b.Telephone, b.Email, nil)
	require.NoError(t, err)
	price, err := booking.NewMoney(b.PriceCents)
	require.NoError(t, err)

	actual := booking.NewBooking(uuid.Nil, b.ResourceID, contact, mustRange(t, 10, 12), price, b.CreatedAt)

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, booking.StatusPending, actual.Status())
	assert.Nil(t, actual.ContractReference())
	assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	assert.Equal(t, 3, actual.Period().Days())
}

func TestBookingTransitionTo(t *testing.T) {
	t.Run("pending to accepted", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain()
		require.NoError(t, b.TransitionTo(booking.StatusAccepted, later))
		assert.True(t, b.IsAccepted())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("pending to rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().MustBuildDomain()
		require.NoError(t, b.TransitionTo(booking.StatusRejected, later))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("terminal states do not move", func(t *testing.T) {
		for _, st := range []booking.Status{booking.StatusAccepted, booking.StatusRejected} {
			b := builder.NewBookingBuilder().WithStatus(st).MustBuildDomain()
			for _, target := range []booking.Status{booking.StatusPending, booking.StatusAccepted, booking.StatusRejected} {
				err := b.TransitionTo(target, later)
				assert.ErrorIs(t, err, booking.ErrInvalidTransition, "%s -> %s", st, target)
				assert.True(t, errs.Is(err, errs.ErrConflict))
				assert.Equal(t, st, b.Status())
			}
		}
	})
}

func TestBookingApplyExtension(t *testing.T) {
	t.Run("accepted booking is extended", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithPeriod(day(10), day(20)).AsAccepted().MustBuildDomain()
		plan, err := booking.PlanExtension(b.Period(), booking.DurationTwoDays)
		require.NoError(t, err)

		require.NoError(t, b.ApplyExtension(plan, later))
		assert.Equal(t, day(10), b.Period().Start())
		assert.Equal(t, day(22), b.Period().End())
	})

	t.Run("rejected booking is refused", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithPeriod(day(10), day(20)).AsRejected().MustBuildDomain()
		plan, err := booking.PlanExtension(b.Period(), booking.DurationDaily)
		require.NoError(t, err)

		assert.ErrorIs(t, b.ApplyExtension(plan, later), booking.ErrInvalidTransition)
		assert.Equal(t, day(20), b.Period().End())
	})
}

func TestBookingAttachContract(t *testing.T) {
	b := builder.NewBookingBuilder().AsAccepted().MustBuildDomain()

	assert.ErrorIs(t, b.AttachContract("   ", later), booking.ErrEmptyContractReference)
	assert.Nil(t, b.ContractReference())

	require.NoError(t, b.AttachContract(" contracts/2025/abc.pdf ", later))
	require.NotNil(t, b.ContractReference())
	assert.Equal(t, "contracts/2025/abc.pdf", *b.ContractReference())
}
