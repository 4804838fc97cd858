package commands

import (
	"context"

	"workspace-booking/internal/domain/resource"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/patch"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResourceInput struct {
	Name        string
	Capacity    int
	Description *string
}

// UpdateResourceInput is a partial update; nil fields keep their value and a
// blank description clears it.
type UpdateResourceInput struct {
	Name        *string
	Capacity    *int
	Description *string
}

type ResourceCommands interface {
	Create(ctx context.Context, in CreateResourceInput) (*resource.Resource, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateResourceInput) (*resource.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewResourceCommands(uow shared.UnitOfWork, clk clock.Clock) ResourceCommands {
	return &resourceCommandsImpl{uow: uow, clock: clk}
}

func (c *resourceCommandsImpl) Create(ctx context.Context, in CreateResourceInput) (*resource.Resource, error) {
	res, err := resource.NewResource(uuid.Nil, in.Name, in.Capacity, in.Description, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapResourceWriteErr(tx.Resources().Create(ctx, tx.DB(), res))
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *resourceCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateResourceInput) (*resource.Resource, error) {
	var updated *resource.Resource
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapResourceWriteErr(err)
		}
		if res.IsDeleted() {
			return ErrResourceNotFound
		}

		err = res.Update(
			patch.Coalesce(in.Name, res.Name()),
			patch.Coalesce(in.Capacity, res.Capacity()),
			patch.Nullable(in.Description, res.Description()),
			c.clock.Now(),
		)
		if err != nil {
			return err
		}
		if err := mapResourceWriteErr(tx.Resources().Update(ctx, tx.DB(), res)); err != nil {
			return err
		}

		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete soft-deletes the resource. Its bookings stay untouched.
func (c *resourceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapResourceWriteErr(err)
		}

		now := c.clock.Now()
		if err := res.Delete(now); err != nil {
			return ErrResourceNotFound
		}
		return mapResourceWriteErr(tx.Resources().SoftDelete(ctx, tx.DB(), id, now))
	})
}

func mapResourceWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrResourceNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateResourceName
	default:
		return checkViolation(err)
	}
}
