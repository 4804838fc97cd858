//go:build unit

package booking_test

import (
	"testing"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasConflict(t *testing.T) {
	resourceID := uuid.New()
	accepted := builder.NewBookingBuilder().WithResourceID(resourceID).WithPeriod(day(10), day(15)).AsAccepted().MustBuildDomain()
	pending := builder.NewBookingBuilder().WithResourceID(resourceID).WithPeriod(day(1), day(31)).MustBuildDomain()
	rejected := builder.NewBookingBuilder().WithResourceID(resourceID).WithPeriod(day(1), day(31)).AsRejected().MustBuildDomain()
	candidates := []*booking.Booking{pending, rejected, accepted}

	tests := []struct {
		name       string
		start, end int
		exclude    uuid.UUID
		conflict   bool
	}{
		{"inside accepted range", 11, 12, uuid.Nil, true},
		{"touches first day", 5, 10, uuid.Nil, true},
		{"touches last day", 15, 20, uuid.Nil, true},
		{"ends the day before", 5, 9, uuid.Nil, false},
		{"starts the day after", 16, 20, uuid.Nil, false},
		{"accepted booking excluded", 11, 12, accepted.ID(), false},
		{"other booking excluded", 11, 12, pending.ID(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, ok := booking.HasConflict(candidates, mustRange(t, tt.start, tt.end), tt.exclude)
			assert.Equal(t, tt.conflict, ok)
			if tt.conflict {
				require.NotNil(t, found)
				assert.Equal(t, accepted.ID(), found.ID())
			} else {
				assert.Nil(t, found)
			}
		})
	}
}

func TestHasConflictIgnoresNonAccepted(t *testing.T) {
	pending := builder.NewBookingBuilder().WithPeriod(day(1), day(31)).MustBuildDomain()
	rejected := builder.NewBookingBuilder().WithPeriod(day(1), day(31)).AsRejected().MustBuildDomain()

	_, ok := booking.HasConflict([]*booking.Booking{pending, rejected, nil}, mustRange(t, 5, 6), uuid.Nil)
	assert.False(t, ok)

	_, ok = booking.HasConflict(nil, mustRange(t, 5, 6), uuid.Nil)
	assert.False(t, ok)
}
