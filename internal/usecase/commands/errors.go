package commands

import (
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.WithKind(errs.New("booking not found"), errs.ErrNotFound)
	ErrResourceNotFound = errs.WithKind(errs.New("resource not found"), errs.ErrNotFound)
	ErrAccountNotFound  = errs.WithKind(errs.New("account not found"), errs.ErrNotFound)

	// ErrBookingConflict is matched by every overlap refusal.
	ErrBookingConflict      = errs.WithKind(errs.New("booking conflict"), errs.ErrConflict)
	ErrApprovalConflict     = errs.WithKind(errs.New("Booking cannot be approved because the selected date range is already reserved."), ErrBookingConflict)
	ErrExtensionUnavailable = errs.WithKind(errs.New("The extension period is not available."), ErrBookingConflict)

	ErrDuplicateResourceName = errs.WithKind(errs.New("a resource with this name already exists"), errs.ErrConflict)

	// ErrConstraintViolated reports a value the domain accepted but a schema
	// CHECK refused.
	ErrConstraintViolated = errs.WithKind(errs.New("value rejected by the database"), errs.ErrValidation)
)

// checkViolation turns a CHECK violation into a validation error naming the
// constraint. Other errors pass through unchanged.
func checkViolation(err error) error {
	if !infra.IsKind(err, infra.KindCheckViolated) {
		return err
	}
	if name := infra.ConstraintName(err); name != "" {
		return errs.WithKind(errs.Newf("value rejected by constraint %s", name), ErrConstraintViolated)
	}
	return ErrConstraintViolated
}
