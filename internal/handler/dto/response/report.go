package response

import (
	"fmt"

	"workspace-booking/internal/usecase/queries"
)

type ResourceReportResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Capacity      int32              `json:"capacity"`
	AcceptedCount int                `json:"accepted_count"`
	BookedDays    int                `json:"booked_days"`
	Revenue       string             `json:"revenue"`
	RevenueCents  int64              `json:"revenue_cents"`
	Bookings      []*BookingResponse `json:"bookings"`
}

func FromResourceReports(views []*queries.ResourceReportView) []*ResourceReportResponse {
	res := make([]*ResourceReportResponse, len(views))
	for i, v := range views {
		res[i] = &ResourceReportResponse{
			ID:            v.ID.String(),
			Name:          v.Name,
			Capacity:      v.Capacity,
			AcceptedCount: v.AcceptedCount,
			BookedDays:    v.BookedDays,
			// A sum can outgrow Money, so it is formatted here.
			Revenue:      fmt.Sprintf("%d.%02d", v.RevenueCents/100, v.RevenueCents%100),
			RevenueCents: v.RevenueCents,
			Bookings:     FromBookingViews(v.Bookings),
		}
	}
	return res
}
