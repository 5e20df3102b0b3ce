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
)

type AIHandler struct {
	aiService *service.AIService
}

func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (h *AIHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	var constraints domain.ScheduleConstraints
	if err := json.NewDecoder(r.Body).Decode(&constraints); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	suggestions, err := h.aiService.GenerateSchedule(r.Context(), eventID, constraints)
	if err != nil {
		h.writeError(w, "ai.GenerateSchedule", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(suggestions)
}

func (h *AIHandler) RecommendVendors(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	var criteria domain.VendorCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	vendors, err := h.aiService.RecommendVendors(r.Context(), eventID, criteria)
	if err != nil {
		h.writeError(w, "ai.RecommendVendors", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendors)
}

func (h *AIHandler) OptimizeBudget(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	var req domain.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := h.aiService.OptimizeBudget(r.Context(), eventID, req)
	if err != nil {
		h.writeError(w, "ai.OptimizeBudget", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// writeError distinguishes missing events, an unreachable recommendation
// service, and everything else. An empty result set never reaches here.
func (h *AIHandler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		http.Error(w, "Event not found", http.StatusNotFound)
	case errors.Is(err, service.ErrAIUnavailable):
		log.Printf("ERROR [%s] recommendation service unavailable: %v", op, err)
		http.Error(w, "Recommendation service unavailable", http.StatusBadGateway)
	default:
		log.Printf("ERROR [%s] %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
