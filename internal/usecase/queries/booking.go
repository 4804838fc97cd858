package queries

import (
	"context"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.WithKind(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingAccess    = errs.WithKind(errs.New("booking access denied"), errs.ErrForbidden)
	ErrResourceNotFound = errs.WithKind(errs.New("resource not found"), errs.ErrNotFound)
	ErrInvalidCursor    = errs.WithKind(errs.New("invalid cursor"), errs.ErrValidation)
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAssociations(ctx context.Context, bookingID uuid.UUID) ([]*AssociationView, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*BookingView, error)
	ListByAccountFirstPage(ctx context.Context, accountID uuid.UUID, limit int32) ([]*BookingView, error)
	ListByAccountKeyset(ctx context.Context, accountID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	ListAcceptedOverlapping(ctx context.Context, resourceID uuid.UUID, start, end civil.Date) ([]BookedRange, error)
	ListAllFirstPage(ctx context.Context, limit int32) ([]*BookingView, error)
	ListAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindAssociationsByBookings(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]*AssociationView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingView, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*BookingView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListAll(ctx context.Context, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	CheckAvailability(ctx context.Context, resourceID uuid.UUID, start, end civil.Date) (*AvailabilityView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	resources ResourceReadStore
}

func NewBookingQueries(bookings BookingReadStore, resources ResourceReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, resources: resources}
}

// GetByID returns the booking with its associations. Members only see
// bookings they are associated with.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	associations, err := q.bookings.FindAssociations(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !associatedWith(associations, actor.ID) {
		return nil, ErrBookingAccess
	}

	view.Associations = associations
	return view, nil
}

func (q *bookingQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*BookingView, error) {
	if _, err := q.resources.FindByID(ctx, resourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return q.bookings.ListByResource(ctx, resourceID)
}

// ListByRequester pages the requester's bookings newest first.
func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.bookings.ListByAccountFirstPage(ctx, requesterID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.bookings.ListByAccountKeyset(ctx, requesterID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit)
	return rows, next, nil
}

// ListAll pages every booking newest first for the management view. Each
// booking carries its resource name and the accounts associated with it.
func (q *bookingQueriesImpl) ListAll(ctx context.Context, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.bookings.ListAllFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.bookings.ListAllKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit)

	ids := make([]uuid.UUID, len(rows))
	for i, v := range rows {
		ids[i] = v.ID
	}
	associations, err := q.bookings.FindAssociationsByBookings(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for _, v := range rows {
		v.Associations = associations[v.ID]
	}
	return rows, next, nil
}

// trimPage drops the look-ahead row fetched past limit and turns it into the
// next cursor.
func trimPage(rows []*BookingView, limit int) ([]*BookingView, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	last := rows[limit-1]
	return rows[:limit], &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
}

// CheckAvailability reports whether [start, end] is free of accepted
// bookings. Pending bookings do not block a range.
func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, resourceID uuid.UUID, start, end civil.Date) (*AvailabilityView, error) {
	period, err := booking.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	res, err := q.resources.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if res.Deleted {
		return nil, ErrResourceNotFound
	}

	conflicts, err := q.bookings.ListAcceptedOverlapping(ctx, resourceID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	if conflicts == nil {
		conflicts = []BookedRange{}
	}

	return &AvailabilityView{
		ResourceID: resourceID,
		StartDate:  period.Start(),
		EndDate:    period.End(),
		Available:  len(conflicts) == 0,
		Conflicts:  conflicts,
	}, nil
}

func associatedWith(associations []*AssociationView, accountID uuid.UUID) bool {
	for _, a := range associations {
		if a.AccountID == accountID {
			return true
		}
	}
	return false
}
