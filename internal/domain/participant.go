package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
	ParticipantStatusDeclined ParticipantStatus = "declined"
)

type Participant struct {
	ID      uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID uuid.UUID         `json:"eventId" gorm:"type:uuid;not null;index"`
	Email   string            `json:"email" gorm:"not null"`
	Name    string            `json:"name"`
	Status  ParticipantStatus `json:"status" gorm:"not null;default:'pending'"`
	// Availability maps a day to the time slots the participant is free,
	// e.g. {"monday": ["09:00-12:00", "14:00-17:00"]}.
	Availability datatypes.JSONMap `json:"availability"`
}
