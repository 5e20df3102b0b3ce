package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusDraft      EventStatus = "draft"
	EventStatusScheduled  EventStatus = "scheduled"
	EventStatusInProgress EventStatus = "in-progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known event statuses.
// Transitions between statuses are not constrained.
func ValidStatus(s EventStatus) bool {
	switch s {
	case EventStatusDraft, EventStatusScheduled, EventStatusInProgress,
		EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description"`
	EventType   string      `json:"eventType"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	Timezone    string      `json:"timezone"`
	Location    string      `json:"location"`
	Budget      float64     `json:"budget"`
	UserID      uuid.UUID   `json:"userId" gorm:"type:uuid;not null;index"`
	Status      EventStatus `json:"status" gorm:"not null;default:'draft'"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`

	// Relations
	Owner        *User         `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:EventID"`
}

var EventTypes = []string{
	"Wedding",
	"Conference",
	"Meeting",
	"Birthday Party",
	"Corporate Event",
	"Networking",
	"Workshop",
	"Seminar",
	"Product Launch",
	"Team Building",
	"Other",
}

var Timezones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Asia/Tokyo",
	"Asia/Singapore",
	"Australia/Sydney",
}

var BudgetCategories = []string{
	"Venue",
	"Food & Beverage",
	"Entertainment",
	"Decorations",
	"Staff",
	"Marketing",
	"Technology",
	"Transportation",
	"Miscellaneous",
}
