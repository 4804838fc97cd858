//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"workspace-booking/internal/domain/account"
	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/internal/usecase/shared"
	queriesmock "workspace-booking/tests/mock/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func may(day int) civil.Date {
	return civil.Date{Year: 2025, Month: time.May, Day: day}
}

func newBookingQueries(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore, *queriesmock.MockResourceReadStore) {
	ctrl := gomock.NewController(t)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)
	resources := queriesmock.NewMockResourceReadStore(ctrl)
	return queries.NewBookingQueries(bookings, resources), bookings, resources
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	member := shared.Actor{ID: uuid.New(), Role: account.RoleMember}
	admin := shared.Actor{ID: uuid.New(), Role: account.RoleAdmin}

	testCases := []struct {
		name      string
		actor     shared.Actor
		setupMock func(*queriesmock.MockBookingReadStore)
		wantErr   error
	}{
		{
			name:  "success: associated member",
			actor: member,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bookingID).Return(&queries.BookingView{ID: bookingID}, nil)
				m.EXPECT().FindAssociations(ctx, bookingID).Return([]*queries.AssociationView{{AccountID: member.ID}}, nil)
			},
		},
		{
			name:  "success: admin sees any booking",
			actor: admin,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bookingID).Return(&queries.BookingView{ID: bookingID}, nil)
				m.EXPECT().FindAssociations(ctx, bookingID).Return([]*queries.AssociationView{{AccountID: uuid.New()}}, nil)
			},
		},
		{
			name:  "error: member not associated",
			actor: member,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bookingID).Return(&queries.BookingView{ID: bookingID}, nil)
				m.EXPECT().FindAssociations(ctx, bookingID).Return([]*queries.AssociationView{{AccountID: uuid.New()}}, nil)
			},
			wantErr: queries.ErrBookingAccess,
		},
		{
			name:  "error: not found",
			actor: admin,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bookingID).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, bookings, _ := newBookingQueries(t)
			tc.setupMock(bookings)

			view, err := q.GetByID(ctx, bookingID, tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Len(t, view.Associations, 1)
		})
	}
}

func TestBookingQueries_ListByRequester(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()
	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	views := func(n int) []*queries.BookingView {
		out := make([]*queries.BookingView, n)
		for i := range out {
			out[i] = &queries.BookingView{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
		}
		return out
	}

	t.Run("first page returns a cursor when more rows exist", func(t *testing.T) {
		q, bookings, _ := newBookingQueries(t)
		rows := views(3)
		bookings.EXPECT().ListByAccountFirstPage(ctx, requesterID, int32(3)).Return(rows, nil)

		got, next, err := q.ListByRequester(ctx, requesterID, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(createdAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		q, bookings, _ := newBookingQueries(t)
		bookings.EXPECT().ListByAccountFirstPage(ctx, requesterID, int32(queries.DefaultListLimit+1)).Return(views(1), nil)

		got, next, err := q.ListByRequester(ctx, requesterID, nil, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("cursor continues with keyset", func(t *testing.T) {
		q, bookings, _ := newBookingQueries(t)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, lastID)}
		bookings.EXPECT().ListByAccountKeyset(ctx, requesterID, gomock.Any(), lastID, int32(11)).Return(views(2), nil)

		got, next, err := q.ListByRequester(ctx, requesterID, cursor, 10)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		q, _, _ := newBookingQueries(t)

		_, _, err := q.ListByRequester(ctx, requesterID, &queries.Cursor{After: "%%%"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestBookingQueries_ListAll(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	views := func(n int) []*queries.BookingView {
		out := make([]*queries.BookingView, n)
		for i := range out {
			out[i] = &queries.BookingView{ID: uuid.New(), ResourceName: "Suite A", CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
		}
		return out
	}

	t.Run("attaches associated accounts to the page only", func(t *testing.T) {
		q, bookings, _ := newBookingQueries(t)
		rows := views(3)
		account := &queries.AssociationView{AccountID: uuid.New(), AccountName: "Kasun", AccountEmail: "kasun@example.com"}
		bookings.EXPECT().ListAllFirstPage(ctx, int32(3)).Return(rows, nil)
		bookings.EXPECT().FindAssociationsByBookings(ctx, []uuid.UUID{rows[0].ID, rows[1].ID}).
			Return(map[uuid.UUID][]*queries.AssociationView{rows[1].ID: {account}}, nil)

		got, next, err := q.ListAll(ctx, nil, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)
		assert.Empty(t, got[0].Associations)
		assert.Equal(t, []*queries.AssociationView{account}, got[1].Associations)

		_, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
	})

	t.Run("cursor continues with keyset", func(t *testing.T) {
		q, bookings, _ := newBookingQueries(t)
		lastID := uuid.New()
		rows := views(1)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, lastID)}
		bookings.EXPECT().ListAllKeyset(ctx, gomock.Any(), lastID, int32(queries.DefaultListLimit+1)).Return(rows, nil)
		bookings.EXPECT().FindAssociationsByBookings(ctx, []uuid.UUID{rows[0].ID}).Return(map[uuid.UUID][]*queries.AssociationView{}, nil)

		got, next, err := q.ListAll(ctx, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		q, _, _ := newBookingQueries(t)

		_, _, err := q.ListAll(ctx, &queries.Cursor{After: "not-a-cursor"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("association lookup fails", func(t *testing.T) {
		q, bookings, _ := newBookingQueries(t)
		bookings.EXPECT().ListAllFirstPage(ctx, gomock.Any()).Return(views(1), nil)
		bookings.EXPECT().FindAssociationsByBookings(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list associated accounts", nil, infra.KindDBFailure))

		_, _, err := q.ListAll(ctx, nil, 5)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	t.Run("free range", func(t *testing.T) {
		q, bookings, resources := newBookingQueries(t)
		resources.EXPECT().FindByID(ctx, resourceID).Return(&queries.ResourceView{ID: resourceID}, nil)
		bookings.EXPECT().ListAcceptedOverlapping(ctx, resourceID, may(1), may(3)).Return(nil, nil)

		got, err := q.CheckAvailability(ctx, resourceID, may(1), may(3))

		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.Conflicts)
	})

	t.Run("boundary day already taken", func(t *testing.T) {
		q, bookings, resources := newBookingQueries(t)
		taken := queries.BookedRange{BookingID: uuid.New(), StartDate: may(10), EndDate: may(12)}
		resources.EXPECT().FindByID(ctx, resourceID).Return(&queries.ResourceView{ID: resourceID}, nil)
		bookings.EXPECT().ListAcceptedOverlapping(ctx, resourceID, may(5), may(10)).Return([]queries.BookedRange{taken}, nil)

		got, err := q.CheckAvailability(ctx, resourceID, may(5), may(10))

		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, []queries.BookedRange{taken}, got.Conflicts)
	})

	t.Run("inverted range", func(t *testing.T) {
		q, _, _ := newBookingQueries(t)

		_, err := q.CheckAvailability(ctx, resourceID, may(9), may(2))

		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("deleted resource", func(t *testing.T) {
		q, _, resources := newBookingQueries(t)
		resources.EXPECT().FindByID(ctx, resourceID).Return(&queries.ResourceView{ID: resourceID, Deleted: true}, nil)

		_, err := q.CheckAvailability(ctx, resourceID, may(1), may(2))

		assert.ErrorIs(t, err, queries.ErrResourceNotFound)
	})
}
