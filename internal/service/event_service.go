package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository"
	"gorm.io/gorm"
)

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventInput struct {
	Title       string
	Description string
	EventType   string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
	Location    string
	Budget      float64
	Status      domain.EventStatus
}

func (s *EventService) Create(ctx context.Context, userID uuid.UUID, input CreateEventInput) (*domain.Event, error) {
	status := input.Status
	if status == "" {
		status = domain.EventStatusDraft
	}
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidEventStatus
	}

	event := &domain.Event{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		EventType:   input.EventType,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Timezone:    input.Timezone,
		Location:    input.Location,
		Budget:      input.Budget,
		UserID:      userID,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error) {
	return s.eventRepo.GetByUserID(ctx, userID)
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	EventType   *string
	StartTime   *time.Time
	EndTime     *time.Time
	Timezone    *string
	Location    *string
	Budget      *float64
	Status      *domain.EventStatus
}

func (s *EventService) Update(ctx context.Context, id uuid.UUID, input UpdateEventInput) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventType != nil {
		event.EventType = *input.EventType
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}
	if input.Timezone != nil {
		event.Timezone = *input.Timezone
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Budget != nil {
		event.Budget = *input.Budget
	}
	if input.Status != nil {
		if !domain.ValidStatus(*input.Status) {
			return nil, domain.ErrInvalidEventStatus
		}
		event.Status = *input.Status
	}
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.eventRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrEventNotFound
	}
	return err
}
