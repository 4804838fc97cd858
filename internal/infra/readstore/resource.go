package readstore

import (
	"context"

	"workspace-booking/internal/infra"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	ListLiveResources(ctx context.Context, db sqlc.DBTX) ([]sqlc.Resources, error)
	ListAcceptedRangesByResources(ctx context.Context, db sqlc.DBTX, resourceIds []uuid.UUID) ([]sqlc.ListAcceptedRangesByResourcesRow, error)
	ListAcceptedBookingsByResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAcceptedBookingsByResourcesParams) ([]sqlc.Bookings, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resource by id", err)
	}
	return toResourceView(row), nil
}

func (r *ResourceReadStore) ListLive(ctx context.Context, db sqlc.DBTX) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListLiveResources(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}

	out := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		out[i] = toResourceView(row)
	}
	return out, nil
}

// ListAcceptedRanges groups accepted booking periods by resource, ordered by
// start date.
func (r *ResourceReadStore) ListAcceptedRanges(ctx context.Context, db sqlc.DBTX, resourceIDs []uuid.UUID) (map[uuid.UUID][]queries.BookedRange, error) {
	out := make(map[uuid.UUID][]queries.BookedRange, len(resourceIDs))
	if len(resourceIDs) == 0 {
		return out, nil
	}

	rows, err := r.queries.ListAcceptedRangesByResources(ctx, db, resourceIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accepted ranges", err)
	}

	for _, row := range rows {
		br, err := toBookedRange(row.ID, row.StartDate, row.EndDate)
		if err != nil {
			return nil, err
		}
		out[row.ResourceID] = append(out[row.ResourceID], br)
	}
	return out, nil
}

// ListAcceptedBookings groups accepted bookings by resource. A nil bound
// leaves that side of the start date window open.
func (r *ResourceReadStore) ListAcceptedBookings(ctx context.Context, db sqlc.DBTX, resourceIDs []uuid.UUID, from, to *civil.Date) (map[uuid.UUID][]*queries.BookingView, error) {
	out := make(map[uuid.UUID][]*queries.BookingView, len(resourceIDs))
	if len(resourceIDs) == 0 {
		return out, nil
	}

	params := sqlc.ListAcceptedBookingsByResourcesParams{ResourceIds: resourceIDs}
	if from != nil {
		params.RangeStart = pgconv.DateToPgtype(*from)
	}
	if to != nil {
		params.RangeEnd = pgconv.DateToPgtype(*to)
	}
	rows, err := r.queries.ListAcceptedBookingsByResources(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accepted bookings", err)
	}

	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		out[row.ResourceID] = append(out[row.ResourceID], v)
	}
	return out, nil
}

func toResourceView(row sqlc.Resources) *queries.ResourceView {
	return &queries.ResourceView{
		ID:          row.ID,
		Name:        row.Name,
		Capacity:    row.Capacity,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Deleted:     row.DeletedAt.Valid,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toBookedRange(id uuid.UUID, start, end pgtype.Date) (queries.BookedRange, error) {
	s, err := pgconv.DateFromPgtype(start)
	if err != nil {
		return queries.BookedRange{}, infra.WrapRepoErr("invalid booked range start", err, infra.KindDBFailure)
	}
	e, err := pgconv.DateFromPgtype(end)
	if err != nil {
		return queries.BookedRange{}, infra.WrapRepoErr("invalid booked range end", err, infra.KindDBFailure)
	}
	return queries.BookedRange{BookingID: id, StartDate: s, EndDate: e}, nil
}
