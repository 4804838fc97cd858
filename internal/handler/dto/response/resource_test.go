//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromResourceView(t *testing.T) {
	created := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	desc := "Corner office"
	bookingID := uuid.New()
	view := &queries.ResourceView{
		ID:          uuid.New(),
		Name:        "Suite B",
		Capacity:    4,
		Description: &desc,
		BookedRanges: []queries.BookedRange{{
			BookingID: bookingID,
			StartDate: civil.Date{Year: 2025, Month: 6, Day: 1},
			EndDate:   civil.Date{Year: 2025, Month: 6, Day: 14},
		}},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	got, err := resdto.FromResourceView(view)
	require.NoError(t, err)

	want := &resdto.ResourceResponse{
		ID:          view.ID.String(),
		Name:        "Suite B",
		Capacity:    4,
		Description: &desc,
		BookedRanges: []resdto.BookedRangeResponse{{
			BookingID: bookingID.String(),
			StartDate: "2025-06-01",
			EndDate:   "2025-06-14",
		}},
		CreatedAt: created.Unix(),
		UpdatedAt: created.Add(time.Hour).Unix(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromResourceView() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAvailabilityView_EmptyConflicts(t *testing.T) {
	id := uuid.New()
	got, err := resdto.FromAvailabilityView(&queries.AvailabilityView{
		ResourceID: id,
		StartDate:  civil.Date{Year: 2025, Month: 7, Day: 1},
		EndDate:    civil.Date{Year: 2025, Month: 7, Day: 3},
		Available:  true,
	})
	require.NoError(t, err)

	want := &resdto.AvailabilityResponse{
		ResourceID: id.String(),
		StartDate:  "2025-07-01",
		EndDate:    "2025-07-03",
		Available:  true,
		Conflicts:  []resdto.BookedRangeResponse{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromAvailabilityView() mismatch (-want +got):\n%s", diff)
	}
}
