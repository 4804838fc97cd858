package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	contact     Contact
	period      DateRange
	price       Money
	status      Status
	contractRef *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a pending booking. A nil id is replaced with a fresh one.
func NewBooking(id, resourceID uuid.UUID, contact Contact, period DateRange, price Money, now time.Time) *Booking {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Booking{
		id:         id,
		resourceID: resourceID,
		contact:    contact,
		period:     period,
		price:      price,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructBooking(
	id, resourceID uuid.UUID,
	contact Contact,
	period DateRange,
	price Money,
	status Status,
	contractRef *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		resourceID:  resourceID,
		contact:     contact,
		period:      period,
		price:       price,
		status:      status,
		contractRef: contractRef,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) TransitionTo(target Status, now time.Time) error {
	if !CanTransition(b.status, target) {
		return ErrInvalidTransition
	}
	b.status = target
	b.updatedAt = now
	return nil
}

// ApplyExtension moves the end date to the planned one. Rejected bookings
// can never become active again, so they cannot be extended either.
func (b *Booking) ApplyExtension(plan ExtensionPlan, now time.Time) error {
	if b.status == StatusRejected {
		return ErrInvalidTransition
	}
	b.period = plan.NewPeriod
	b.updatedAt = now
	return nil
}

func (b *Booking) AttachContract(reference string, now time.Time) error {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return ErrEmptyContractReference
	}
	if len(ref) > MaxContractLength {
		return ErrContractTooLong
	}
	b.contractRef = &ref
	b.updatedAt = now
	return nil
}

func (b *Booking) IsAccepted() bool { return b.status == StatusAccepted }

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) ResourceID() uuid.UUID      { return b.resourceID }
func (b *Booking) Contact() Contact           { return b.contact }
func (b *Booking) Period() DateRange          { return b.period }
func (b *Booking) Price() Money               { return b.price }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) ContractReference() *string { return b.contractRef }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
