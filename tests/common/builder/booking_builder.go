//go:build unit || integration

package builder

import (
	"time"

	"workspace-booking/internal/domain/booking"
	reqdto "workspace-booking/internal/handler/dto/request"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	FullName    string
	CompanyName *string
	Telephone   string
	Email       string
	Address     *string
	Start       civil.Date
	End         civil.Date
	PriceCents  int64
	Status      booking.Status
	ContractRef *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		ResourceID: uuid.New(),
		FullName:   "Nimal Perera",
		Telephone:  "0771234567",
		Email:      "nimal@example.com",
		Start:      civil.Date{Year: 2025, Month: 3, Day: 10},
		End:        civil.Date{Year: 2025, Month: 3, Day: 20},
		PriceCents: 2500000,
		Status:     booking.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	contact, err := booking.NewContact(b.FullName, b.CompanyName, b.Telephone, b.Email, b.Address)
	if err != nil {
		return nil, err
	}
	period, err := booking.NewDateRange(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		b.ID, b.ResourceID, contact, period, price, b.Status, b.ContractRef, b.CreatedAt, b.UpdatedAt,
	), nil
}

// MustBuildDomain panics on invalid builder state; use it for fixtures only.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildInfra returns the row shape the store scans bookings into.
func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:                b.ID,
		ResourceID:        b.ResourceID,
		FullName:          b.FullName,
		CompanyName:       pgconv.StringPtrToPgtype(b.CompanyName),
		Telephone:         b.Telephone,
		Email:             b.Email,
		Address:           pgconv.StringPtrToPgtype(b.Address),
		StartDate:         pgconv.DateToPgtype(b.Start),
		EndDate:           pgconv.DateToPgtype(b.End),
		Price:             pgconv.CentsToNumeric(b.PriceCents),
		Status:            b.Status.String(),
		ContractReference: pgconv.StringPtrToPgtype(b.ContractRef),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID:  b.ResourceID,
		FullName:    b.FullName,
		CompanyName: b.CompanyName,
		Telephone:   b.Telephone,
		Email:       b.Email,
		Address:     b.Address,
		StartDate:   b.Start,
		EndDate:     b.End,
		PriceCents:  b.PriceCents,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                b.ID,
		ResourceID:        b.ResourceID,
		FullName:          b.FullName,
		CompanyName:       b.CompanyName,
		Telephone:         b.Telephone,
		Email:             b.Email,
		Address:           b.Address,
		StartDate:         b.Start,
		EndDate:           b.End,
		PriceCents:        b.PriceCents,
		Status:            b.Status.String(),
		ContractReference: b.ContractRef,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithResourceID(id uuid.UUID) *BookingBuilder {
	b.ResourceID = id
	return b
}

func (b *BookingBuilder) WithPeriod(start, end civil.Date) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithContractRef(ref string) *BookingBuilder {
	b.ContractRef = &ref
	return b
}

func (b *BookingBuilder) AsAccepted() *BookingBuilder {
	b.Status = booking.StatusAccepted
	return b
}

func (b *BookingBuilder) AsRejected() *BookingBuilder {
	b.Status = booking.StatusRejected
	return b
}
