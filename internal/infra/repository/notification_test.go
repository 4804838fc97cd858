//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/repository"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/shared"
	repositorymock "workspace-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)
	payload := []byte(`{"booking_id":"x"}`)

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	queries.EXPECT().CreateNotificationJob(ctx, gomock.Any(), sqlc.CreateNotificationJobParams{
		Kind:    "email",
		Topic:   "booking.confirmed",
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.NotificationStatusQueued,
	}).Return(nil)

	err := repository.NewNotificationRepository(queries, nil).CreateJob(ctx, nil, "email", "booking.confirmed", payload, runAt)
	require.NoError(t, err)
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)
	jobID := uuid.New()

	t.Run("maps claimed rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		queries.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), sqlc.ClaimDueNotificationJobsParams{
			RunAt: pgconv.TimeToPgtype(now),
			Limit: 25,
		}).Return([]sqlc.NotificationJobs{{
			ID:       jobID,
			Kind:     "email",
			Topic:    "contract.attached",
			Payload:  []byte(`{}`),
			Attempts: 2,
			RunAt:    pgconv.TimeToPgtype(now.Add(-time.Minute)),
		}}, nil)

		jobs, err := repository.NewNotificationRepository(queries, nil).ClaimDue(ctx, nil, now, 25)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobID, jobs[0].ID)
		assert.Equal(t, "contract.attached", jobs[0].Topic)
		assert.Equal(t, int32(2), jobs[0].Attempts)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		queries.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := repository.NewNotificationRepository(queries, nil).ClaimDue(ctx, nil, now, 25)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_Reschedule(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 4, 20, 10, 5, 0, 0, time.UTC)
	jobID := uuid.New()

	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	queries.EXPECT().RescheduleNotificationJob(ctx, gomock.Any(), sqlc.RescheduleNotificationJobParams{
		ID:        jobID,
		Status:    shared.NotificationStatusFailed,
		Attempts:  5,
		LastError: pgconv.StringToPgtype("broker unreachable"),
		RunAt:     pgconv.TimeToPgtype(runAt),
	}).Return(nil)
	queries.EXPECT().UpdateNotificationJobStatus(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error {
			assert.Equal(t, shared.NotificationStatusSent, arg.Status)
			assert.False(t, arg.LastError.Valid)
			return nil
		})
	repo := repository.NewNotificationRepository(queries, nil)

	require.NoError(t, repo.Reschedule(ctx, nil, jobID, shared.NotificationStatusFailed, 5, "broker unreachable", runAt))
	require.NoError(t, repo.MarkSent(ctx, nil, jobID))
}
