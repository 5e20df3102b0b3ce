package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]*domain.Participant, error)
}

// VendorFilter narrows vendor listings. Zero values mean "no filter".
type VendorFilter struct {
	Category  string
	Location  string
	MinRating float64
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	List(ctx context.Context, filter VendorFilter) ([]*domain.Vendor, error)
	Search(ctx context.Context, query string) ([]*domain.Vendor, error)
}

type Repositories struct {
	User        UserRepository
	Event       EventRepository
	Participant ParticipantRepository
	Vendor      VendorRepository
}
