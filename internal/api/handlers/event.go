package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/api/middleware"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type CreateEventRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	EventType   string             `json:"eventType"`
	StartTime   time.Time          `json:"startTime"`
	EndTime     time.Time          `json:"endTime"`
	Timezone    string             `json:"timezone"`
	Location    string             `json:"location"`
	Budget      float64            `json:"budget"`
	Status      domain.EventStatus `json:"status"`
}

type UpdateEventRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	EventType   *string             `json:"eventType"`
	StartTime   *time.Time          `json:"startTime"`
	EndTime     *time.Time          `json:"endTime"`
	Timezone    *string             `json:"timezone"`
	Location    *string             `json:"location"`
	Budget      *float64            `json:"budget"`
	Status      *domain.EventStatus `json:"status"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.Create(r.Context(), userID, service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventType:   req.EventType,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Timezone:    req.Timezone,
		Location:    req.Location,
		Budget:      req.Budget,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEventStatus) {
			http.Error(w, "Invalid event status", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [event.Create] failed to create event: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	events, err := h.eventService.ListForUser(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [event.List] failed to list events: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if events == nil {
		events = []*domain.Event{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [event.Get] failed to get event: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.Update(r.Context(), id, service.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventType:   req.EventType,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Timezone:    req.Timezone,
		Location:    req.Location,
		Budget:      req.Budget,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			http.Error(w, "Event not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidEventStatus):
			http.Error(w, "Invalid event status", http.StatusBadRequest)
		default:
			log.Printf("ERROR [event.Update] failed to update event: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [event.Delete] failed to delete event: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
