package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/config"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository"
	"gorm.io/gorm"
)

// ErrAIUnavailable indicates the recommendation service could not be
// reached or returned a non-success status. Distinct from an empty result,
// which is a normal response.
var ErrAIUnavailable = errors.New("recommendation service unavailable")

// AIService forwards schedule, vendor and budget requests to the external
// recommendation service. No recommendation logic lives here; the service
// only serializes the typed contracts and relays results.
type AIService struct {
	eventRepo repository.EventRepository
	baseURL   string
	apiKey    string
	client    *http.Client
}

func NewAIService(eventRepo repository.EventRepository, cfg *config.Config) *AIService {
	return &AIService{
		eventRepo: eventRepo,
		baseURL:   cfg.AIServiceURL,
		apiKey:    cfg.AIServiceKey,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *AIService) GenerateSchedule(ctx context.Context, eventID uuid.UUID, constraints domain.ScheduleConstraints) ([]domain.ScheduleSuggestion, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Event       *domain.Event              `json:"event"`
		Constraints domain.ScheduleConstraints `json:"constraints"`
	}{event, constraints}

	suggestions := []domain.ScheduleSuggestion{}
	if err := s.post(ctx, "/v1/schedule", payload, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *AIService) RecommendVendors(ctx context.Context, eventID uuid.UUID, criteria domain.VendorCriteria) ([]domain.Vendor, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Event    *domain.Event         `json:"event"`
		Criteria domain.VendorCriteria `json:"criteria"`
	}{event, criteria}

	vendors := []domain.Vendor{}
	if err := s.post(ctx, "/v1/vendors", payload, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *AIService) OptimizeBudget(ctx context.Context, eventID uuid.UUID, req domain.BudgetRequest) (*domain.BudgetPlan, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if req.TotalBudget == 0 {
		req.TotalBudget = event.Budget
	}

	payload := struct {
		Event  *domain.Event        `json:"event"`
		Budget domain.BudgetRequest `json:"budget"`
	}{event, req}

	var plan domain.BudgetPlan
	if err := s.post(ctx, "/v1/budget", payload, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *AIService) getEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// post sends a JSON body and decodes the response into out. The request is
// bound to ctx so an abandoned caller cancels the outbound call.
func (s *AIService) post(ctx context.Context, path string, body, out interface{}) error {
	if s.baseURL == "" {
		return ErrAIUnavailable
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrAIUnavailable, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
