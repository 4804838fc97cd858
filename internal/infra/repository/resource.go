package repository

import (
	"context"
	"time"

	"workspace-booking/internal/domain/resource"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/repository/converter"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) (sqlc.Resources, error)
	UpdateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceParams) (int64, error)
	SoftDeleteResource(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteResourceParams) (int64, error)
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	LockResource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockResourceRow, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	if _, err := r.queries.CreateResource(ctx, tx, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	affected, err := r.queries.UpdateResource(ctx, tx, converter.ResourceToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update resource", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) SoftDelete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	affected, err := r.queries.SoftDeleteResource(ctx, tx, sqlc.SoftDeleteResourceParams{
		ID:        id,
		DeletedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete resource", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resource", err)
	}
	return converter.ResourceFromRow(row), nil
}

func (r *ResourceRepository) Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.ResourceLock, error) {
	row, err := r.queries.LockResource(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}
	return &shared.ResourceLock{ID: row.ID, Deleted: row.DeletedAt.Valid}, nil
}
