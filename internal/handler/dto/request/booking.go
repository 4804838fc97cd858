package request

import (
	"workspace-booking/internal/usecase/commands"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Dates are ISO calendar dates ("2025-05-01"); both ends are booked.
type CreateBookingRequest struct {
	ResourceID  uuid.UUID  `json:"resource_id" binding:"required"`
	FullName    string     `json:"full_name" binding:"required,max=255"`
	CompanyName *string    `json:"company_name" binding:"omitempty,max=255"`
	Telephone   string     `json:"telephone" binding:"required,max=32"`
	Email       string     `json:"email" binding:"required,max=255"`
	Address     *string    `json:"address" binding:"omitempty,max=500"`
	StartDate   civil.Date `json:"start_date"`
	EndDate     civil.Date `json:"end_date"`
	PriceCents  int64      `json:"price_cents" binding:"gt=0"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ResourceID:  r.ResourceID,
		FullName:    r.FullName,
		CompanyName: r.CompanyName,
		Telephone:   r.Telephone,
		Email:       r.Email,
		Address:     r.Address,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		PriceCents:  r.PriceCents,
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ExtendBookingRequest struct {
	Duration string `json:"duration" binding:"required"`
}

type AttachDetailsRequest struct {
	NICNumber *string `json:"nic_number"`
	Company   *string `json:"company"`
}

func (r *AttachDetailsRequest) ToInput(bookingID, accountID uuid.UUID) commands.AttachDetailsInput {
	return commands.AttachDetailsInput{
		BookingID: bookingID,
		AccountID: accountID,
		NICNumber: r.NICNumber,
		Company:   r.Company,
	}
}

type AttachContractRequest struct {
	ContractReference string `json:"contract_reference" binding:"required"`
}
