package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *participantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}
