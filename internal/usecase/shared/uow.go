package shared

import (
	"context"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/resource"
	sqlc "workspace-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Associations() AssociationRepository
	Resources() ResourceRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// FindForUpdate row-locks the booking until the transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// ListAcceptedOverlapping must run after ResourceRepository.Lock in the same
	// transaction, otherwise a concurrent accept can slip in between.
	ListAcceptedOverlapping(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, r booking.DateRange, exclude uuid.UUID) ([]*booking.Booking, error)
	// LockRequester serializes quota checks per account for the transaction.
	LockRequester(ctx context.Context, tx sqlc.DBTX, accountID uuid.UUID) error
	CountByAccount(ctx context.Context, tx sqlc.DBTX, accountID uuid.UUID) (int, error)
}

type AssociationRepository interface {
	// Upsert reports whether a new association row was inserted.
	Upsert(ctx context.Context, tx sqlc.DBTX, a booking.Association) (bool, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *resource.Resource) error
	Update(ctx context.Context, tx sqlc.DBTX, r *resource.Resource) error
	SoftDelete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error)
	// Lock takes the per-resource write lock used for overlap checks.
	Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ResourceLock, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, attempts int32, lastError string, runAt time.Time) error
}
