//go:build unit

package clock_test

import (
	"testing"
	"time"

	"workspace-booking/internal/pkg/clock"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	// 20:00 UTC is already the next day in Colombo (+05:30).
	c := clock.NewMockClock(time.Date(2025, time.May, 1, 20, 0, 0, 0, time.UTC))
	colombo := time.FixedZone("Asia/Colombo", 19800)

	assert.Equal(t, civil.Date{Year: 2025, Month: time.May, Day: 1}, clock.Today(c, time.UTC))
	assert.Equal(t, civil.Date{Year: 2025, Month: time.May, Day: 2}, clock.Today(c, colombo))

	c.Add(6 * time.Hour)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.May, Day: 2}, clock.Today(c, time.UTC))
}
