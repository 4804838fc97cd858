//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/repository"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/tests/common/builder"
	repositorymock "workspace-booking/tests/mock/repository"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	row := builder.NewBookingBuilder().AsAccepted().BuildInfra()

	corrupt := row
	corrupt.Status = "archived"

	tests := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				m.EXPECT().GetBookingForUpdate(ctx, gomock.Any(), row.ID).Return(row, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				m.EXPECT().GetBookingForUpdate(ctx, gomock.Any(), row.ID).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "unknown status in row",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				m.EXPECT().GetBookingForUpdate(ctx, gomock.Any(), row.ID).Return(corrupt, nil)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "database error",
			setupMock: func(m *repositorymock.MockBookingWriteQueries) {
				m.EXPECT().GetBookingForUpdate(ctx, gomock.Any(), row.ID).Return(sqlc.Bookings{}, assert.AnError)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queries := repositorymock.NewMockBookingWriteQueries(ctrl)
			tt.setupMock(queries)
			repo := repository.NewBookingRepository(queries, nil)

			got, err := repo.FindForUpdate(ctx, nil, row.ID)

			if tt.expectKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID())
			assert.Equal(t, booking.StatusAccepted, got.Status())
			assert.Equal(t, civil.Date{Year: 2025, Month: time.March, Day: 20}, got.Period().End())
			assert.Equal(t, int64(2500000), got.Price().Cents())
		})
	}
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().AsAccepted().WithContractRef("CTR-2025-001").MustBuildDomain()

	t.Run("writes mutable columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockBookingWriteQueries(ctrl)
		queries.EXPECT().UpdateBooking(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error) {
				assert.Equal(t, b.ID(), arg.ID)
				assert.Equal(t, "accepted", arg.Status)
				assert.Equal(t, "CTR-2025-001", arg.ContractReference.String)
				assert.True(t, arg.EndDate.Valid)
				return 1, nil
			})

		err := repository.NewBookingRepository(queries, nil).Update(ctx, nil, b)
		require.NoError(t, err)
	})

	t.Run("no row updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockBookingWriteQueries(ctrl)
		queries.EXPECT().UpdateBooking(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repository.NewBookingRepository(queries, nil).Update(ctx, nil, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("exclusion constraint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockBookingWriteQueries(ctrl)
		queries.EXPECT().UpdateBooking(ctx, gomock.Any(), gomock.Any()).
			Return(int64(0), &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"})

		err := repository.NewBookingRepository(queries, nil).Update(ctx, nil, b)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Equal(t, "bookings_no_overlap", infra.ConstraintName(err))
	})
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().MustBuildDomain()

	tests := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "unknown resource", dbErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "check constraint", dbErr: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindCheckViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queries := repositorymock.NewMockBookingWriteQueries(ctrl)
			queries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "pending", arg.Status)
					assert.Equal(t, "nimal@example.com", arg.Email)
					return tt.dbErr
				})

			err := repository.NewBookingRepository(queries, nil).Create(ctx, nil, b)

			if tt.expectKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.expectKind))
		})
	}
}

func TestBookingRepository_ListAcceptedOverlapping(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	exclude := uuid.New()
	period, err := booking.NewDateRange(
		civil.Date{Year: 2025, Month: time.March, Day: 15},
		civil.Date{Year: 2025, Month: time.March, Day: 18},
	)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockBookingWriteQueries(ctrl)
	rows := []sqlc.Bookings{
		builder.NewBookingBuilder().WithResourceID(resourceID).AsAccepted().BuildInfra(),
	}
	queries.EXPECT().ListAcceptedOverlapping(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListAcceptedOverlappingParams) ([]sqlc.Bookings, error) {
			assert.Equal(t, resourceID, arg.ResourceID)
			assert.Equal(t, exclude, arg.ExcludeID)
			assert.Equal(t, 15, arg.RangeStart.Time.Day())
			assert.Equal(t, 18, arg.RangeEnd.Time.Day())
			return rows, nil
		})

	got, err := repository.NewBookingRepository(queries, nil).ListAcceptedOverlapping(ctx, nil, resourceID, period, exclude)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rows[0].ID, got[0].ID())
}

func TestBookingRepository_Quota(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockBookingWriteQueries(ctrl)
	gomock.InOrder(
		queries.EXPECT().AcquireAccountQuotaLock(ctx, gomock.Any(), "quota:"+accountID.String()).Return(nil),
		queries.EXPECT().CountBookingsByAccount(ctx, gomock.Any(), accountID).Return(int64(2), nil),
	)
	repo := repository.NewBookingRepository(queries, nil)

	require.NoError(t, repo.LockRequester(ctx, nil, accountID))
	count, err := repo.CountByAccount(ctx, nil, accountID)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
