package converter

import (
	"workspace-booking/internal/domain/resource"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"
)

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Capacity:    pgconv.IntToInt32(r.Capacity()),
		Description: pgconv.StringPtrToPgtype(r.Description()),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ResourceToUpdateParams(r *resource.Resource) sqlc.UpdateResourceParams {
	return sqlc.UpdateResourceParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Capacity:    pgconv.IntToInt32(r.Capacity()),
		Description: pgconv.StringPtrToPgtype(r.Description()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceFromRow(row sqlc.Resources) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.Name,
		int(row.Capacity),
		pgconv.StringPtrFromPgtype(row.Description),
		pgconv.TimePtrFromPgtype(row.DeletedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
