package repository

import (
	"context"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/repository/converter"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	ListAcceptedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAcceptedOverlappingParams) ([]sqlc.Bookings, error)
	AcquireAccountQuotaLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
	CountBookingsByAccount(ctx context.Context, db sqlc.DBTX, accountID uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ListAcceptedOverlapping(
	ctx context.Context,
	tx sqlc.DBTX,
	resourceID uuid.UUID,
	period booking.DateRange,
	exclude uuid.UUID,
) ([]*booking.Booking, error) {
	rows, err := r.queries.ListAcceptedOverlapping(ctx, tx, sqlc.ListAcceptedOverlappingParams{
		ResourceID: resourceID,
		RangeStart: pgconv.DateToPgtype(period.Start()),
		RangeEnd:   pgconv.DateToPgtype(period.End()),
		ExcludeID:  exclude,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}

	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map booking rows", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *BookingRepository) LockRequester(ctx context.Context, tx sqlc.DBTX, accountID uuid.UUID) error {
	if err := r.queries.AcquireAccountQuotaLock(ctx, tx, QuotaLockKey(accountID)); err != nil {
		return infra.WrapRepoErr("failed to acquire quota lock", err)
	}
	return nil
}

func (r *BookingRepository) CountByAccount(ctx context.Context, tx sqlc.DBTX, accountID uuid.UUID) (int, error) {
	count, err := r.queries.CountBookingsByAccount(ctx, tx, accountID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings by account", err)
	}
	return int(count), nil
}

// QuotaLockKey is hashed into the advisory lock id; the prefix keeps it apart
// from any other advisory lock keyed by the same account.
func QuotaLockKey(accountID uuid.UUID) string {
	return "quota:" + accountID.String()
}
