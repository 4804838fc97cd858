package resource

import (
	"strings"
	"time"

	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName      = errs.WithKind(errs.New("resource name cannot be empty"), errs.ErrValidation)
	ErrResourceNameTooLong    = errs.WithKind(errs.New("resource name is too long (max 255 characters)"), errs.ErrValidation)
	ErrInvalidCapacity        = errs.WithKind(errs.New("capacity must be between 1 and 100000"), errs.ErrValidation)
	ErrDescriptionTooLong     = errs.WithKind(errs.New("description is too long (max 1000 characters)"), errs.ErrValidation)
	ErrResourceAlreadyDeleted = errs.WithKind(errs.New("resource is already deleted"), errs.ErrNotFound)
)

const (
	MaxResourceNameLength = 255
	MaxDescriptionLength  = 1000
	MaxCapacity           = 100_000
)

// Resource is a bookable office or seat package. Deleting only stamps
// deletedAt so historical bookings keep their reference.
type Resource struct {
	id          uuid.UUID
	name        string
	capacity    int
	description *string
	deletedAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewResource(id uuid.UUID, name string, capacity int, description *string, now time.Time) (*Resource, error) {
	r := &Resource{id: id, createdAt: now}
	if r.id == uuid.Nil {
		r.id = uuid.New()
	}
	if err := r.Update(name, capacity, description, now); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructResource(
	id uuid.UUID,
	name string,
	capacity int,
	description *string,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:          id,
		name:        name,
		capacity:    capacity,
		description: description,
		deletedAt:   deletedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Resource) Update(name string, capacity int, description *string, now time.Time) error {
	name = strings.TrimSpace(name)
	if err := validateResourceName(name); err != nil {
		return err
	}
	if capacity < 1 || capacity > MaxCapacity {
		return ErrInvalidCapacity
	}
	description = ptr.NonEmpty(description)
	if description != nil && len([]rune(*description)) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	r.name = name
	r.capacity = capacity
	r.description = description
	r.updatedAt = now
	return nil
}

func (r *Resource) Delete(now time.Time) error {
	if r.IsDeleted() {
		return ErrResourceAlreadyDeleted
	}
	r.deletedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Resource) IsDeleted() bool {
	return r.deletedAt != nil
}

func validateResourceName(name string) error {
	if name == "" {
		return ErrEmptyResourceName
	}
	if len([]rune(name)) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID         { return r.id }
func (r *Resource) Name() string          { return r.name }
func (r *Resource) Capacity() int         { return r.capacity }
func (r *Resource) Description() *string  { return r.description }
func (r *Resource) DeletedAt() *time.Time { return r.deletedAt }
func (r *Resource) CreatedAt() time.Time  { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time  { return r.updatedAt }
