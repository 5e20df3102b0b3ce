package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ParticipantService struct {
	participantRepo repository.ParticipantRepository
	eventRepo       repository.EventRepository
}

func NewParticipantService(participantRepo repository.ParticipantRepository, eventRepo repository.EventRepository) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
	}
}

type AddParticipantInput struct {
	Email        string
	Name         string
	Availability datatypes.JSONMap
}

func (s *ParticipantService) Add(ctx context.Context, eventID uuid.UUID, input AddParticipantInput) (*domain.Participant, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	participant := &domain.Participant{
		ID:           uuid.New(),
		EventID:      eventID,
		Email:        input.Email,
		Name:         input.Name,
		Status:       domain.ParticipantStatusPending,
		Availability: input.Availability,
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *ParticipantService) ListForEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Participant, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return s.participantRepo.GetByEventID(ctx, eventID)
}
