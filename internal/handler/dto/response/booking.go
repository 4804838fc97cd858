package response

import (
	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID                string                 `json:"id"`
	ResourceID        string                 `json:"resource_id"`
	ResourceName      string                 `json:"resource_name,omitempty"`
	FullName          string                 `json:"full_name"`
	CompanyName       *string                `json:"company_name,omitempty"`
	Telephone         string                 `json:"telephone"`
	Email             string                 `json:"email"`
	Address           *string                `json:"address,omitempty"`
	StartDate         string                 `json:"start_date"`
	EndDate           string                 `json:"end_date"`
	Price             string                 `json:"price"`
	PriceCents        int64                  `json:"price_cents"`
	Status            string                 `json:"status"`
	ContractReference *string                `json:"contract_reference,omitempty"`
	Associations      []*AssociationResponse `json:"associations,omitempty"`
	CreatedAt         int64                  `json:"created_at"`
	UpdatedAt         int64                  `json:"updated_at"`
}

type AssociationResponse struct {
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name,omitempty"`
	AccountEmail string  `json:"account_email,omitempty"`
	NICNumber    *string `json:"nic_number,omitempty"`
	Company      *string `json:"company,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

type ExtensionOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

type AttachDetailsResponse struct {
	BookingID string `json:"booking_id"`
	AccountID string `json:"account_id"`
	Created   bool   `json:"created"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	contact := b.Contact()
	return &BookingResponse{
		ID:                b.ID().String(),
		ResourceID:        b.ResourceID().String(),
		FullName:          contact.FullName(),
		CompanyName:       contact.CompanyName(),
		Telephone:         contact.Telephone(),
		Email:             contact.Email(),
		Address:           contact.Address(),
		StartDate:         b.Period().Start().String(),
		EndDate:           b.Period().End().String(),
		Price:             b.Price().String(),
		PriceCents:        b.Price().Cents(),
		Status:            b.Status().String(),
		ContractReference: b.ContractReference(),
		CreatedAt:         b.CreatedAt().Unix(),
		UpdatedAt:         b.UpdatedAt().Unix(),
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	price, _ := booking.NewMoney(v.PriceCents)
	res := &BookingResponse{
		ID:                v.ID.String(),
		ResourceID:        v.ResourceID.String(),
		ResourceName:      v.ResourceName,
		FullName:          v.FullName,
		CompanyName:       v.CompanyName,
		Telephone:         v.Telephone,
		Email:             v.Email,
		Address:           v.Address,
		StartDate:         v.StartDate.String(),
		EndDate:           v.EndDate.String(),
		Price:             price.String(),
		PriceCents:        v.PriceCents,
		Status:            v.Status,
		ContractReference: v.ContractReference,
		CreatedAt:         v.CreatedAt.Unix(),
		UpdatedAt:         v.UpdatedAt.Unix(),
	}
	for _, a := range v.Associations {
		res.Associations = append(res.Associations, &AssociationResponse{
			AccountID:    a.AccountID.String(),
			AccountName:  a.AccountName,
			AccountEmail: a.AccountEmail,
			NICNumber:    a.NICNumber,
			Company:      a.Company,
			CreatedAt:    a.CreatedAt.Unix(),
		})
	}
	return res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

func FromBookingPage(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: FromBookingViews(views)}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

func FromExtensionOptions(opts []booking.ExtensionOption) []*ExtensionOptionResponse {
	res := make([]*ExtensionOptionResponse, len(opts))
	for i, o := range opts {
		res[i] = &ExtensionOptionResponse{Value: o.Tag.String(), Label: o.Label, Days: o.Days}
	}
	return res
}
