package booking

import "workspace-booking/internal/pkg/errs"

const (
	MaxFullNameLength  = 255
	MaxCompanyLength   = 255
	MaxTelephoneLength = 32
	MaxEmailLength     = 255
	MaxAddressLength   = 500
	MaxNICLength       = 12
	MaxContractLength  = 1024

	// MaxPriceCents is the largest amount a numeric(10,2) column holds.
	MaxPriceCents int64 = 9_999_999_999
)

var (
	ErrInvalidDateRange       = errs.WithKind(errs.New("start date must not be after end date"), errs.ErrValidation)
	ErrMissingContactField    = errs.WithKind(errs.New("contact field is required"), errs.ErrValidation)
	ErrContactFieldTooLong    = errs.WithKind(errs.New("contact field is too long"), errs.ErrValidation)
	ErrInvalidEmail           = errs.WithKind(errs.New("email address is not valid"), errs.ErrValidation)
	ErrNonPositivePrice       = errs.WithKind(errs.New("price must be greater than zero"), errs.ErrValidation)
	ErrPriceTooLarge          = errs.WithKind(errs.New("price is too large (max 99999999.99)"), errs.ErrValidation)
	ErrInvalidStatus          = errs.WithKind(errs.New("invalid booking status"), errs.ErrValidation)
	ErrInvalidTransition      = errs.WithKind(errs.New("booking status transition is not allowed"), errs.ErrConflict)
	ErrUnknownDurationTag     = errs.WithKind(errs.New("unknown extension duration"), errs.ErrValidation)
	ErrEmptyContractReference = errs.WithKind(errs.New("contract reference cannot be empty"), errs.ErrValidation)
	ErrContractTooLong        = errs.WithKind(errs.New("contract reference is too long"), errs.ErrValidation)
	ErrNICTooLong             = errs.WithKind(errs.New("NIC number is too long (max 12 characters)"), errs.ErrValidation)
	ErrAssociationCompanyLong = errs.WithKind(errs.New("association company is too long"), errs.ErrValidation)
	ErrMissingParty           = errs.WithKind(errs.New("booking and account are required"), errs.ErrValidation)
	ErrQuotaExceeded          = errs.WithKind(errs.New("booking quota exceeded"), errs.ErrQuota)
)
