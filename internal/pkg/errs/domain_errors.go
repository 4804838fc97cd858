package errs

// Error kinds shared by the usecase layer. Command and query packages
// mark their specific sentinels with one of these so handlers can map a
// whole family of failures to a single HTTP status.
var (
	ErrValidation = New("validation failed")
	ErrNotFound   = New("not found")
	ErrConflict   = New("conflict")
	ErrQuota      = New("quota exceeded")
	ErrForbidden  = New("forbidden")

	ErrDatabaseOperationFailed = New("database operation failed")
)
