package commands

import (
	"context"
	"encoding/json"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	NotificationKindEmail = "email"

	TopicBookingConfirmed = "booking.confirmed"
	TopicContractAttached = "contract.attached"
)

type CreateBookingInput struct {
	ResourceID  uuid.UUID
	FullName    string
	CompanyName *string
	Telephone   string
	Email       string
	Address     *string
	StartDate   civil.Date
	EndDate     civil.Date
	PriceCents  int64
}

type AttachDetailsInput struct {
	BookingID uuid.UUID
	AccountID uuid.UUID
	NICNumber *string
	Company   *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, requesterID uuid.UUID, in CreateBookingInput) (*booking.Booking, error)
	SetStatus(ctx context.Context, bookingID uuid.UUID, target string) (*booking.Booking, error)
	ExtendBooking(ctx context.Context, bookingID uuid.UUID, tag string) (*booking.Booking, error)
	// AttachDetails reports whether a new association was created.
	AttachDetails(ctx context.Context, in AttachDetailsInput) (bool, error)
	AttachContract(ctx context.Context, bookingID uuid.UUID, reference string) (*booking.Booking, error)
	ExtensionOptions() []booking.ExtensionOption
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	quota  booking.Quota
	tracer trace.Tracer
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, quota booking.Quota, tracer trace.Tracer) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		quota:  quota,
		tracer: tracer,
	}
}

// bookingEvent is the outbox payload for booking notifications.
type bookingEvent struct {
	BookingID         uuid.UUID  `json:"booking_id"`
	ResourceID        uuid.UUID  `json:"resource_id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email"`
	StartDate         civil.Date `json:"start_date"`
	EndDate           civil.Date `json:"end_date"`
	Status            string     `json:"status"`
	ContractReference *string    `json:"contract_reference,omitempty"`
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, requesterID uuid.UUID, in CreateBookingInput) (b *booking.Booking, err error) {
	ctx, span := c.tracer.Start(ctx, "BookingCommands.CreateBooking", trace.WithAttributes(
		attribute.String("requester.id", requesterID.String()),
		attribute.String("resource.id", in.ResourceID.String()),
	))
	defer func() { endSpan(span, err) }()

	period, err := booking.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("booking.period", period.String()),
		attribute.Int("booking.days", period.Days()),
	)
	contact, err := booking.NewContact(in.FullName, in.CompanyName, in.Telephone, in.Email, in.Address)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(in.PriceCents)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockRequester(ctx, tx.DB(), requesterID); err != nil {
			return err
		}
		held, err := tx.Bookings().CountByAccount(ctx, tx.DB(), requesterID)
		if err != nil {
			return err
		}
		if err := c.quota.Check(held); err != nil {
			return err
		}

		res, err := tx.Reads().ResourceByID(ctx, in.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if res.Deleted {
			return ErrResourceNotFound
		}

		created := booking.NewBooking(uuid.Nil, in.ResourceID, contact, period, price, c.clock.Now())
		if err := tx.Bookings().Create(ctx, tx.DB(), created); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrResourceNotFound
			}
			return checkViolation(err)
		}

		assoc, err := booking.NewAssociation(created.ID(), requesterID, nil, nil)
		if err != nil {
			return err
		}
		if _, err := tx.Associations().Upsert(ctx, tx.DB(), assoc); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrAccountNotFound
			}
			return err
		}

		b = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *bookingCommandsImpl) SetStatus(ctx context.Context, bookingID uuid.UUID, target string) (b *booking.Booking, err error) {
	ctx, span := c.tracer.Start(ctx, "BookingCommands.SetStatus", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
		attribute.String("booking.target_status", target),
	))
	defer func() { endSpan(span, err) }()

	next, err := booking.ParseStatus(target)
	if err != nil {
		return nil, errs.Wrap(booking.ErrInvalidTransition, err.Error())
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if err := current.TransitionTo(next, c.clock.Now()); err != nil {
			return err
		}
		if current.IsAccepted() {
			if err := c.ensureFree(ctx, tx, current.ResourceID(), current.Period(), current.ID(), ErrApprovalConflict); err != nil {
				return err
			}
		}
		if err := c.update(ctx, tx, current, ErrApprovalConflict); err != nil {
			return err
		}

		if current.IsAccepted() {
			if err := c.enqueue(ctx, tx, TopicBookingConfirmed, current); err != nil {
				return err
			}
		}

		b = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ExtendBooking only checks the days added by the extension; the current
// period of an accepted booking is already free of conflicts.
func (c *bookingCommandsImpl) ExtendBooking(ctx context.Context, bookingID uuid.UUID, tag string) (b *booking.Booking, err error) {
	ctx, span := c.tracer.Start(ctx, "BookingCommands.ExtendBooking", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
		attribute.String("booking.extension", tag),
	))
	defer func() { endSpan(span, err) }()

	duration, err := booking.ParseDurationTag(tag)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		plan, err := booking.PlanExtension(current.Period(), duration)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.String("booking.extension.check", plan.Check.String()))
		if err := current.ApplyExtension(plan, c.clock.Now()); err != nil {
			return err
		}
		if err := c.ensureFree(ctx, tx, current.ResourceID(), plan.Check, current.ID(), ErrExtensionUnavailable); err != nil {
			return err
		}
		if err := c.update(ctx, tx, current, ErrExtensionUnavailable); err != nil {
			return err
		}

		b = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *bookingCommandsImpl) AttachDetails(ctx context.Context, in AttachDetailsInput) (inserted bool, err error) {
	ctx, span := c.tracer.Start(ctx, "BookingCommands.AttachDetails", trace.WithAttributes(
		attribute.String("booking.id", in.BookingID.String()),
		attribute.String("account.id", in.AccountID.String()),
	))
	defer func() { endSpan(span, err) }()

	assoc, err := booking.NewAssociation(in.BookingID, in.AccountID, in.NICNumber, in.Company)
	if err != nil {
		return false, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.findForUpdate(ctx, tx, in.BookingID); err != nil {
			return err
		}

		created, err := tx.Associations().Upsert(ctx, tx.DB(), assoc)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrAccountNotFound
			}
			return err
		}
		inserted = created
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (c *bookingCommandsImpl) AttachContract(ctx context.Context, bookingID uuid.UUID, reference string) (b *booking.Booking, err error) {
	ctx, span := c.tracer.Start(ctx, "BookingCommands.AttachContract", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
	))
	defer func() { endSpan(span, err) }()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if err := current.AttachContract(reference, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), current); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if err := c.enqueue(ctx, tx, TopicContractAttached, current); err != nil {
			return err
		}

		b = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *bookingCommandsImpl) ExtensionOptions() []booking.ExtensionOption {
	return booking.Options()
}

func (c *bookingCommandsImpl) findForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ensureFree locks the resource and then looks for accepted bookings on
// period. The lock has to come first so a concurrent accept on the same
// resource waits for this transaction.
func (c *bookingCommandsImpl) ensureFree(
	ctx context.Context,
	tx shared.Tx,
	resourceID uuid.UUID,
	period booking.DateRange,
	exclude uuid.UUID,
	conflictErr error,
) error {
	if _, err := tx.Resources().Lock(ctx, tx.DB(), resourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResourceNotFound
		}
		return err
	}

	candidates, err := tx.Bookings().ListAcceptedOverlapping(ctx, tx.DB(), resourceID, period, exclude)
	if err != nil {
		return err
	}
	if _, found := booking.HasConflict(candidates, period, exclude); found {
		return conflictErr
	}
	return nil
}

// update persists b. The exclusion constraint on accepted ranges surfaces as
// conflictErr if the lock was somehow bypassed.
func (c *bookingCommandsImpl) update(ctx context.Context, tx shared.Tx, b *booking.Booking, conflictErr error) error {
	if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return conflictErr
		case infra.IsKind(err, infra.KindNotFound):
			return ErrBookingNotFound
		}
		return checkViolation(err)
	}
	return nil
}

func (c *bookingCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking) error {
	payload, err := json.Marshal(bookingEvent{
		BookingID:         b.ID(),
		ResourceID:        b.ResourceID(),
		FullName:          b.Contact().FullName(),
		Email:             b.Contact().Email(),
		StartDate:         b.Period().Start(),
		EndDate:           b.Period().End(),
		Status:            b.Status().String(),
		ContractReference: b.ContractReference(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindEmail, topic, payload, c.clock.Now())
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
