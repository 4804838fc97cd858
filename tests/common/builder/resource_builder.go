//go:build unit || integration

package builder

import (
	"time"

	"workspace-booking/internal/domain/resource"
	sqlc "workspace-booking/internal/infra/sqlc/generated"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID          uuid.UUID
	Name        string
	Capacity    int
	Description *string
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	desc := "Private office with meeting corner"
	return &ResourceBuilder{
		ID:          uuid.New(),
		Name:        "Executive Suite A",
		Capacity:    6,
		Description: &desc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ResourceBuilder) WithID(id uuid.UUID) *ResourceBuilder {
	b.ID = id
	return b
}

func (b *ResourceBuilder) WithName(name string) *ResourceBuilder {
	b.Name = name
	return b
}

func (b *ResourceBuilder) WithCapacity(capacity int) *ResourceBuilder {
	b.Capacity = capacity
	return b
}

func (b *ResourceBuilder) AsDeleted(at time.Time) *ResourceBuilder {
	b.DeletedAt = &at
	return b
}

func (b *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(b.ID, b.Name, b.Capacity, b.Description, b.DeletedAt, b.CreatedAt, b.UpdatedAt)
}

func (b *ResourceBuilder) BuildInfra() sqlc.Resources {
	return sqlc.Resources{
		ID:          b.ID,
		Name:        b.Name,
		Capacity:    pgconv.IntToInt32(b.Capacity),
		Description: pgconv.StringPtrToPgtype(b.Description),
		DeletedAt:   pgconv.TimePtrToPgtype(b.DeletedAt),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt),
	}
}
