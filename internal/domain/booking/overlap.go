package booking

import "github.com/google/uuid"

// HasConflict reports the first accepted candidate, other than exclude,
// whose period shares at least one day with r. Pending and rejected
// bookings never block.
func HasConflict(candidates []*Booking, r DateRange, exclude uuid.UUID) (*Booking, bool) {
	for _, c := range candidates {
		if c == nil || c.id == exclude || c.status != StatusAccepted {
			continue
		}
		if c.period.Overlaps(r) {
			return c, true
		}
	}
	return nil, false
}
