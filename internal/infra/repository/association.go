package repository

import (
	"context"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/repository/converter"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/clock"
)

type AssociationWriteQueries interface {
	UpsertAssociation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAssociationParams) (sqlc.UpsertAssociationRow, error)
}

type AssociationRepository struct {
	queries AssociationWriteQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewAssociationRepository(queries AssociationWriteQueries, db sqlc.DBTX, clk clock.Clock) *AssociationRepository {
	return &AssociationRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *AssociationRepository) Upsert(ctx context.Context, tx sqlc.DBTX, a booking.Association) (bool, error) {
	row, err := r.queries.UpsertAssociation(ctx, tx, converter.AssociationToUpsertParams(a, r.clock.Now()))
	if err != nil {
		return false, infra.WrapRepoErr("failed to upsert booking association", err)
	}
	return row.Inserted, nil
}
