package booking

import (
	"fmt"

	"workspace-booking/internal/pkg/errs"
)

const DefaultQuotaLimit = 2

// Quota caps how many bookings one requester may hold. Every associated
// booking counts, whatever its status.
type Quota struct {
	limit int
}

func NewQuota(limit int) Quota {
	if limit < 1 {
		limit = DefaultQuotaLimit
	}
	return Quota{limit: limit}
}

// Check refuses a requester already holding limit bookings. The returned
// error reads as Message and matches ErrQuotaExceeded.
func (q Quota) Check(held int) error {
	if held >= q.limit {
		return errs.WithKind(errs.New(q.Message()), ErrQuotaExceeded)
	}
	return nil
}

// Message is the text shown to a requester who hit the cap.
func (q Quota) Message() string {
	noun := "bookings"
	if q.limit == 1 {
		noun = "booking"
	}
	return fmt.Sprintf("You have already reached the maximum of %d %s.", q.limit, noun)
}
