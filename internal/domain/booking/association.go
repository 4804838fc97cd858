package booking

import (
	"github.com/google/uuid"
	"workspace-booking/internal/pkg/ptr"
)

// Association links an account to a booking. There is at most one per
// (booking, account) pair; attaching again replaces the details.
type Association struct {
	bookingID uuid.UUID
	accountID uuid.UUID
	nicNumber *string
	company   *string
}

func NewAssociation(bookingID, accountID uuid.UUID, nicNumber, company *string) (Association, error) {
	if bookingID == uuid.Nil || accountID == uuid.Nil {
		return Association{}, ErrMissingParty
	}
	a := Association{
		bookingID: bookingID,
		accountID: accountID,
		nicNumber: ptr.NonEmpty(nicNumber),
		company:   ptr.NonEmpty(company),
	}
	if a.nicNumber != nil && len([]rune(*a.nicNumber)) > MaxNICLength {
		return Association{}, ErrNICTooLong
	}
	if a.company != nil && len([]rune(*a.company)) > MaxCompanyLength {
		return Association{}, ErrAssociationCompanyLong
	}
	return a, nil
}

func (a Association) BookingID() uuid.UUID { return a.bookingID }
func (a Association) AccountID() uuid.UUID { return a.accountID }
func (a Association) NICNumber() *string   { return a.nicNumber }
func (a Association) Company() *string     { return a.company }
