package readstore

import (
	"context"
	"time"

	"workspace-booking/internal/infra"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListAssociationsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingAssociations, error)
	ListBookingsByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.Bookings, error)
	ListBookingsByAccountFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByAccountFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsByAccountKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByAccountKeysetParams) ([]sqlc.Bookings, error)
	ListAcceptedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAcceptedOverlappingParams) ([]sqlc.Bookings, error)
	ListAllBookingsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListAllBookingsFirstPageRow, error)
	ListAllBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAllBookingsKeysetParams) ([]sqlc.ListAllBookingsKeysetRow, error)
	ListAssociationAccountsByBookings(ctx context.Context, db sqlc.DBTX, bookingIds []uuid.UUID) ([]sqlc.ListAssociationAccountsByBookingsRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) FindAssociations(ctx context.Context, bookingID uuid.UUID) ([]*queries.AssociationView, error) {
	rows, err := r.queries.ListAssociationsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking associations", err)
	}

	out := make([]*queries.AssociationView, len(rows))
	for i, row := range rows {
		out[i] = &queries.AssociationView{
			AccountID: row.AccountID,
			NICNumber: pgconv.StringPtrFromPgtype(row.NicNumber),
			Company:   pgconv.StringPtrFromPgtype(row.Company),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return out, nil
}

func (r *BookingReadStore) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByResource(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by resource", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) ListByAccountFirstPage(ctx context.Context, accountID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsByAccountFirstPageParams{AccountID: accountID, Limit: limit}
	rows, err := r.queries.ListBookingsByAccountFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings first page by account", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) ListByAccountKeyset(ctx context.Context, accountID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsByAccountKeysetParams{
		AccountID: accountID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	}
	rows, err := r.queries.ListBookingsByAccountKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings keyset by account", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) ListAllFirstPage(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListAllBookingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings first page", err)
	}

	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row.Bookings)
		if err != nil {
			return nil, err
		}
		v.ResourceName = row.ResourceName
		out = append(out, v)
	}
	return out, nil
}

func (r *BookingReadStore) ListAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListAllBookingsKeyset(ctx, r.db, sqlc.ListAllBookingsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings keyset", err)
	}

	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row.Bookings)
		if err != nil {
			return nil, err
		}
		v.ResourceName = row.ResourceName
		out = append(out, v)
	}
	return out, nil
}

// FindAssociationsByBookings groups associations with the account name and
// email by booking.
func (r *BookingReadStore) FindAssociationsByBookings(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]*queries.AssociationView, error) {
	out := make(map[uuid.UUID][]*queries.AssociationView, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return out, nil
	}

	rows, err := r.queries.ListAssociationAccountsByBookings(ctx, r.db, bookingIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list associated accounts", err)
	}
	for _, row := range rows {
		out[row.BookingID] = append(out[row.BookingID], &queries.AssociationView{
			AccountID:    row.AccountID,
			AccountName:  row.AccountName,
			AccountEmail: row.AccountEmail,
			NICNumber:    pgconv.StringPtrFromPgtype(row.NicNumber),
			Company:      pgconv.StringPtrFromPgtype(row.Company),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}

func (r *BookingReadStore) ListAcceptedOverlapping(ctx context.Context, resourceID uuid.UUID, start, end civil.Date) ([]queries.BookedRange, error) {
	rows, err := r.queries.ListAcceptedOverlapping(ctx, r.db, sqlc.ListAcceptedOverlappingParams{
		ResourceID: resourceID,
		RangeStart: pgconv.DateToPgtype(start),
		RangeEnd:   pgconv.DateToPgtype(end),
		ExcludeID:  uuid.Nil,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}

	out := make([]queries.BookedRange, 0, len(rows))
	for _, row := range rows {
		br, err := toBookedRange(row.ID, row.StartDate, row.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, br)
	}
	return out, nil
}

func toBookingViews(rows []sqlc.Bookings) ([]*queries.BookingView, error) {
	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toBookingView(row sqlc.Bookings) (*queries.BookingView, error) {
	start, err := pgconv.DateFromPgtype(row.StartDate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking start date", err, infra.KindDBFailure)
	}
	end, err := pgconv.DateFromPgtype(row.EndDate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking end date", err, infra.KindDBFailure)
	}
	cents, err := pgconv.CentsFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking price", err, infra.KindDBFailure)
	}

	return &queries.BookingView{
		ID:                row.ID,
		ResourceID:        row.ResourceID,
		FullName:          row.FullName,
		CompanyName:       pgconv.StringPtrFromPgtype(row.CompanyName),
		Telephone:         row.Telephone,
		Email:             row.Email,
		Address:           pgconv.StringPtrFromPgtype(row.Address),
		StartDate:         start,
		EndDate:           end,
		PriceCents:        cents,
		Status:            row.Status,
		ContractReference: pgconv.StringPtrFromPgtype(row.ContractReference),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
