package service

import (
	"github.com/ria/event-planner-website/internal/config"
	"github.com/ria/event-planner-website/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Event       *EventService
	Participant *ParticipantService
	Vendor      *VendorService
	AI          *AIService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		Event:       NewEventService(repos.Event),
		Participant: NewParticipantService(repos.Participant, repos.Event),
		Vendor:      NewVendorService(repos.Vendor),
		AI:          NewAIService(repos.Event, cfg),
	}
}
