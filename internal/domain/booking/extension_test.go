//go:build unit

package booking_test

import (
	"testing"

	"workspace-booking/internal/domain/booking"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanExtension(t *testing.T) {
	current := mustRange(t, 1, 10)

	tests := []struct {
		tag        string
		newEnd     civil.Date
		checkStart civil.Date
	}{
		{"daily", day(11), day(11)},
		{"2-day", day(12), day(11)},
		{"weekly", day(17), day(11)},
		{"monthly", civil.Date{Year: 2025, Month: 4, Day: 9}, day(11)},
		{"yearly", civil.Date{Year: 2026, Month: 3, Day: 10}, day(11)},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			tag, err := booking.ParseDurationTag(tt.tag)
			require.NoError(t, err)

			plan, err := booking.PlanExtension(current, tag)
			require.NoError(t, err)

			assert.Equal(t, current.Start(), plan.NewPeriod.Start())
			assert.Equal(t, tt.newEnd, plan.NewPeriod.End())
			assert.Equal(t, tt.checkStart, plan.Check.Start())
			assert.Equal(t, tt.newEnd, plan.Check.End())
			assert.Equal(t, tag.Days(), plan.Check.Days())
		})
	}
}

func TestPlanExtensionCheckExcludesCurrentPeriod(t *testing.T) {
	current := mustRange(t, 1, 10)
	plan, err := booking.PlanExtension(current, booking.DurationWeekly)
	require.NoError(t, err)

	assert.False(t, plan.Check.Overlaps(current))
}

func TestParseDurationTagUnknown(t *testing.T) {
	for _, s := range []string{"", "fortnightly", "Daily", "3-day"} {
		_, err := booking.ParseDurationTag(s)
		assert.ErrorIs(t, err, booking.ErrUnknownDurationTag, "tag %q", s)
	}

	_, err := booking.PlanExtension(mustRange(t, 1, 2), booking.DurationTag("hourly"))
	assert.ErrorIs(t, err, booking.ErrUnknownDurationTag)
}

func TestOptions(t *testing.T) {
	opts := booking.Options()
	require.Len(t, opts, 5)

	labels := make([]string, 0, len(opts))
	for _, o := range opts {
		labels = append(labels, o.Label)
	}
	assert.Equal(t, []string{"+1 Day", "+2 Days", "+1 Week", "+1 Month", "+1 Year"}, labels)
	assert.Equal(t, booking.DurationDaily, opts[0].Tag)
	assert.Equal(t, 365, opts[4].Days)
}
