package queries

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type BookingView struct {
	ID                uuid.UUID          `json:"id"`
	ResourceID        uuid.UUID          `json:"resource_id"`
	ResourceName      string             `json:"resource_name,omitempty"`
	FullName          string             `json:"full_name"`
	CompanyName       *string            `json:"company_name,omitempty"`
	Telephone         string             `json:"telephone"`
	Email             string             `json:"email"`
	Address           *string            `json:"address,omitempty"`
	StartDate         civil.Date         `json:"start_date"`
	EndDate           civil.Date         `json:"end_date"`
	PriceCents        int64              `json:"price_cents"`
	Status            string             `json:"status"`
	ContractReference *string            `json:"contract_reference,omitempty"`
	Associations      []*AssociationView `json:"associations,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type AssociationView struct {
	AccountID    uuid.UUID `json:"account_id"`
	AccountName  string    `json:"account_name,omitempty"`
	AccountEmail string    `json:"account_email,omitempty"`
	NICNumber    *string   `json:"nic_number,omitempty"`
	Company      *string   `json:"company,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookedRange is the period of one accepted booking.
type BookedRange struct {
	BookingID uuid.UUID  `json:"booking_id"`
	StartDate civil.Date `json:"start_date"`
	EndDate   civil.Date `json:"end_date"`
}

type AvailabilityView struct {
	ResourceID uuid.UUID     `json:"resource_id"`
	StartDate  civil.Date    `json:"start_date"`
	EndDate    civil.Date    `json:"end_date"`
	Available  bool          `json:"available"`
	Conflicts  []BookedRange `json:"conflicts"`
}

type ResourceView struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Capacity     int32         `json:"capacity"`
	Description  *string       `json:"description,omitempty"`
	BookedRanges []BookedRange `json:"booked_ranges"`
	Deleted      bool          `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ResourceReportView sums the accepted bookings of one live resource.
type ResourceReportView struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Capacity      int32          `json:"capacity"`
	AcceptedCount int            `json:"accepted_count"`
	BookedDays    int            `json:"booked_days"`
	RevenueCents  int64          `json:"revenue_cents"`
	Bookings      []*BookingView `json:"bookings"`
}
