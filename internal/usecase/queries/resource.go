package queries

import (
	"context"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type ResourceReadStore interface {
	// FindByID also returns soft-deleted resources; callers check Deleted.
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	ListLive(ctx context.Context, db sqlc.DBTX) ([]*ResourceView, error)
	ListAcceptedRanges(ctx context.Context, db sqlc.DBTX, resourceIDs []uuid.UUID) (map[uuid.UUID][]BookedRange, error)
	ListAcceptedBookings(ctx context.Context, db sqlc.DBTX, resourceIDs []uuid.UUID, from, to *civil.Date) (map[uuid.UUID][]*BookingView, error)
}

type ResourceQueries interface {
	List(ctx context.Context) ([]*ResourceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	AcceptedReport(ctx context.Context, from, to *civil.Date) ([]*ResourceReportView, error)
}

type resourceQueriesImpl struct {
	uow   shared.UnitOfWork
	store ResourceReadStore
}

func NewResourceQueries(uow shared.UnitOfWork, store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{uow: uow, store: store}
}

// List returns live resources with the ranges already taken by accepted
// bookings, read from one snapshot.
func (q *resourceQueriesImpl) List(ctx context.Context) ([]*ResourceView, error) {
	var out []*ResourceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		views, err := q.store.ListLive(ctx, db)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(views))
		for i, v := range views {
			ids[i] = v.ID
		}
		ranges, err := q.store.ListAcceptedRanges(ctx, db, ids)
		if err != nil {
			return err
		}

		for _, v := range views {
			v.BookedRanges = nonNil(ranges[v.ID])
		}
		out = views
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*ResourceView{}
	}
	return out, nil
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if view.Deleted {
		return nil, ErrResourceNotFound
	}

	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		ranges, err := q.store.ListAcceptedRanges(ctx, db, []uuid.UUID{id})
		if err != nil {
			return err
		}
		view.BookedRanges = nonNil(ranges[id])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AcceptedReport lists every live resource with its accepted bookings whose
// start date falls in [from, to]. Either bound may be nil.
func (q *resourceQueriesImpl) AcceptedReport(ctx context.Context, from, to *civil.Date) ([]*ResourceReportView, error) {
	if from != nil && to != nil {
		if _, err := booking.NewDateRange(*from, *to); err != nil {
			return nil, err
		}
	}

	var out []*ResourceReportView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		views, err := q.store.ListLive(ctx, db)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(views))
		for i, v := range views {
			ids[i] = v.ID
		}
		accepted, err := q.store.ListAcceptedBookings(ctx, db, ids, from, to)
		if err != nil {
			return err
		}

		out = make([]*ResourceReportView, 0, len(views))
		for _, v := range views {
			report, err := summarize(v, accepted[v.ID])
			if err != nil {
				return err
			}
			out = append(out, report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func summarize(res *ResourceView, bookings []*BookingView) (*ResourceReportView, error) {
	report := &ResourceReportView{
		ID:            res.ID,
		Name:          res.Name,
		Capacity:      res.Capacity,
		AcceptedCount: len(bookings),
		Bookings:      bookings,
	}
	if report.Bookings == nil {
		report.Bookings = []*BookingView{}
	}
	for _, b := range bookings {
		period, err := booking.NewDateRange(b.StartDate, b.EndDate)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", b.ID)
		}
		report.BookedDays += period.Days()
		report.RevenueCents += b.PriceCents
	}
	return report, nil
}

func nonNil(r []BookedRange) []BookedRange {
	if r == nil {
		return []BookedRange{}
	}
	return r
}
