//go:build unit

package queries_test

import (
	"context"
	"testing"

	"workspace-booking/internal/domain/booking"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/queries"
	queriesmock "workspace-booking/tests/mock/queries"
	sharedmock "workspace-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newResourceQueries(t *testing.T) (queries.ResourceQueries, *sharedmock.MockUnitOfWork, *queriesmock.MockResourceReadStore) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	store := queriesmock.NewMockResourceReadStore(ctrl)
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	return queries.NewResourceQueries(uow, store), uow, store
}

func TestResourceQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches accepted ranges per resource", func(t *testing.T) {
		q, _, store := newResourceQueries(t)
		busy := &queries.ResourceView{ID: uuid.New(), Name: "Suite A"}
		idle := &queries.ResourceView{ID: uuid.New(), Name: "Suite B"}
		booked := queries.BookedRange{BookingID: uuid.New(), StartDate: may(1), EndDate: may(4)}

		store.EXPECT().ListLive(ctx, gomock.Any()).Return([]*queries.ResourceView{busy, idle}, nil)
		store.EXPECT().ListAcceptedRanges(ctx, gomock.Any(), []uuid.UUID{busy.ID, idle.ID}).
			Return(map[uuid.UUID][]queries.BookedRange{busy.ID: {booked}}, nil)

		got, err := q.List(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []queries.BookedRange{booked}, got[0].BookedRanges)
		assert.NotNil(t, got[1].BookedRanges)
		assert.Empty(t, got[1].BookedRanges)
	})

	t.Run("no resources", func(t *testing.T) {
		q, _, store := newResourceQueries(t)
		store.EXPECT().ListLive(ctx, gomock.Any()).Return(nil, nil)
		store.EXPECT().ListAcceptedRanges(ctx, gomock.Any(), []uuid.UUID{}).Return(map[uuid.UUID][]queries.BookedRange{}, nil)

		got, err := q.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestResourceQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted resources are hidden", func(t *testing.T) {
		q, _, store := newResourceQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(&queries.ResourceView{ID: id, Deleted: true}, nil)

		_, err := q.GetByID(ctx, id)

		assert.ErrorIs(t, err, queries.ErrResourceNotFound)
	})

	t.Run("live resource with ranges", func(t *testing.T) {
		q, _, store := newResourceQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(&queries.ResourceView{ID: id}, nil)
		store.EXPECT().ListAcceptedRanges(ctx, gomock.Any(), []uuid.UUID{id}).Return(nil, nil)

		got, err := q.GetByID(ctx, id)

		require.NoError(t, err)
		assert.NotNil(t, got.BookedRanges)
	})
}

func TestResourceQueries_AcceptedReport(t *testing.T) {
	ctx := context.Background()
	from := may(1)
	to := may(31)

	t.Run("sums days and revenue per resource", func(t *testing.T) {
		q, _, store := newResourceQueries(t)
		busy := &queries.ResourceView{ID: uuid.New(), Name: "Suite A", Capacity: 4}
		idle := &queries.ResourceView{ID: uuid.New(), Name: "Suite B", Capacity: 2}
		accepted := []*queries.BookingView{
			{ID: uuid.New(), StartDate: may(1), EndDate: may(3), PriceCents: 1500000},
			{ID: uuid.New(), StartDate: may(10), EndDate: may(10), PriceCents: 250050},
		}

		store.EXPECT().ListLive(ctx, gomock.Any()).Return([]*queries.ResourceView{busy, idle}, nil)
		store.EXPECT().ListAcceptedBookings(ctx, gomock.Any(), []uuid.UUID{busy.ID, idle.ID}, &from, &to).
			Return(map[uuid.UUID][]*queries.BookingView{busy.ID: accepted}, nil)

		got, err := q.AcceptedReport(ctx, &from, &to)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Suite A", got[0].Name)
		assert.Equal(t, int32(4), got[0].Capacity)
		assert.Equal(t, 2, got[0].AcceptedCount)
		assert.Equal(t, 4, got[0].BookedDays)
		assert.Equal(t, int64(1750050), got[0].RevenueCents)
		assert.Len(t, got[0].Bookings, 2)

		assert.Equal(t, 0, got[1].AcceptedCount)
		assert.Zero(t, got[1].RevenueCents)
		assert.NotNil(t, got[1].Bookings)
		assert.Empty(t, got[1].Bookings)
	})

	t.Run("open window", func(t *testing.T) {
		q, _, store := newResourceQueries(t)
		store.EXPECT().ListLive(ctx, gomock.Any()).Return(nil, nil)
		store.EXPECT().ListAcceptedBookings(ctx, gomock.Any(), []uuid.UUID{}, nil, nil).
			Return(map[uuid.UUID][]*queries.BookingView{}, nil)

		got, err := q.AcceptedReport(ctx, nil, nil)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("start after end is refused before reading", func(t *testing.T) {
		q, _, _ := newResourceQueries(t)

		_, err := q.AcceptedReport(ctx, &to, &from)

		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
