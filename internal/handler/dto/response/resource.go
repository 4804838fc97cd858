package response

import (
	"time"

	"workspace-booking/internal/domain/resource"
	"workspace-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Capacity     int32                 `json:"capacity"`
	Description  *string               `json:"description,omitempty"`
	BookedRanges []BookedRangeResponse `json:"booked_ranges"`
	CreatedAt    int64                 `json:"created_at"`
	UpdatedAt    int64                 `json:"updated_at"`
}

type BookedRangeResponse struct {
	BookingID string `json:"booking_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AvailabilityResponse struct {
	ResourceID string                `json:"resource_id"`
	StartDate  string                `json:"start_date"`
	EndDate    string                `json:"end_date"`
	Available  bool                  `json:"available"`
	Conflicts  []BookedRangeResponse `json:"conflicts"`
}

// viewCopyOption converts the read-model field types to their wire form.
var viewCopyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: civil.Date{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(civil.Date).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func FromResourceView(v *queries.ResourceView) (*ResourceResponse, error) {
	res := &ResourceResponse{}
	if err := copier.CopyWithOption(res, v, viewCopyOption); err != nil {
		return nil, err
	}
	if res.BookedRanges == nil {
		res.BookedRanges = []BookedRangeResponse{}
	}
	return res, nil
}

func FromResourceViews(views []*queries.ResourceView) ([]*ResourceResponse, error) {
	res := make([]*ResourceResponse, len(views))
	for i, v := range views {
		r, err := FromResourceView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	res := &AvailabilityResponse{}
	if err := copier.CopyWithOption(res, v, viewCopyOption); err != nil {
		return nil, err
	}
	if res.Conflicts == nil {
		res.Conflicts = []BookedRangeResponse{}
	}
	return res, nil
}

// FromResource renders a resource returned by an admin command; those carry no
// booked ranges.
func FromResource(r *resource.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:           r.ID().String(),
		Name:         r.Name(),
		Capacity:     int32(r.Capacity()),
		Description:  r.Description(),
		BookedRanges: []BookedRangeResponse{},
		CreatedAt:    r.CreatedAt().Unix(),
		UpdatedAt:    r.UpdatedAt().Unix(),
	}
}
