package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/service"
	"gorm.io/datatypes"
)

type ParticipantHandler struct {
	participantService *service.ParticipantService
}

func NewParticipantHandler(participantService *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService}
}

type AddParticipantRequest struct {
	Email        string            `json:"email"`
	Name         string            `json:"name"`
	Availability datatypes.JSONMap `json:"availability"`
}

func (h *ParticipantHandler) Add(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	participant, err := h.participantService.Add(r.Context(), eventID, service.AddParticipantInput{
		Email:        req.Email,
		Name:         req.Name,
		Availability: req.Availability,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [participant.Add] failed to add participant: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(participant)
}

func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	participants, err := h.participantService.ListForEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [participant.List] failed to list participants: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if participants == nil {
		participants = []*domain.Participant{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(participants)
}
