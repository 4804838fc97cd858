package shared

import (
	"time"

	"workspace-booking/internal/domain/account"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command or query.
type Actor struct {
	ID   uuid.UUID
	Role account.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == account.RoleAdmin
}

// Minimal snapshot for command read operations
type ResourceSnapshot struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	Deleted  bool
}

type ResourceLock struct {
	ID      uuid.UUID
	Deleted bool
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}
