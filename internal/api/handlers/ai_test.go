package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAIServer stands in for the external recommendation service.
func fakeAIServer(t *testing.T, suggestions []domain.ScheduleSuggestion) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suggestions)
	})
	mux.HandleFunc("/v1/vendors", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.Vendor{})
	})
	mux.HandleFunc("/v1/budget", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.BudgetPlan{
			TotalBudget: 1000,
			Allocations: []domain.BudgetAllocation{{Category: "Venue", Amount: 400}},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestAIHandler_GenerateSchedule(t *testing.T) {
	suggestions := []domain.ScheduleSuggestion{
		{
			StartTime:               "2026-10-01T14:00:00Z",
			EndTime:                 "2026-10-01T16:00:00Z",
			Confidence:              0.82,
			Reason:                  "Most participants are free",
			ParticipantAvailability: 0.9,
		},
	}
	ai := fakeAIServer(t, suggestions)

	cfg := testutil.TestConfig()
	cfg.AIServiceURL = ai.URL
	ts := testutil.NewTestServerWithConfig(t, cfg)

	auth := testutil.RegisterUser(t, ts, "ai@example.com")
	event := testutil.NewEventBuilder(mustParse(t, auth.User.ID)).Build(t, ts.DB.DB)

	body := domain.ScheduleConstraints{DurationMinutes: 120}
	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/ai/events/"+event.ID.String()+"/schedule"), body, auth.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result []domain.ScheduleSuggestion
	testutil.AssertJSONResponse(t, resp, &result)
	require.Len(t, result, 1)
	assert.Equal(t, 0.82, result[0].Confidence)

	t.Run("unknown event", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/ai/events/00000000-0000-0000-0000-000000000000/schedule"), body, auth.Token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// An empty result is a normal 200, not an error.
func TestAIHandler_EmptyResultIsNotAnError(t *testing.T) {
	ai := fakeAIServer(t, []domain.ScheduleSuggestion{})

	cfg := testutil.TestConfig()
	cfg.AIServiceURL = ai.URL
	ts := testutil.NewTestServerWithConfig(t, cfg)

	auth := testutil.RegisterUser(t, ts, "ai-empty@example.com")
	event := testutil.NewEventBuilder(mustParse(t, auth.User.ID)).Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/ai/events/"+event.ID.String()+"/vendors"), domain.VendorCriteria{}, auth.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var vendors []domain.Vendor
	testutil.AssertJSONResponse(t, resp, &vendors)
	assert.Empty(t, vendors)
}

// Transport failure surfaces as 502, distinct from an empty result.
func TestAIHandler_UnreachableServiceIsBadGateway(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.AIServiceURL = "http://127.0.0.1:1" // nothing listens here
	ts := testutil.NewTestServerWithConfig(t, cfg)

	auth := testutil.RegisterUser(t, ts, "ai-down@example.com")
	event := testutil.NewEventBuilder(mustParse(t, auth.User.ID)).Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/ai/events/"+event.ID.String()+"/schedule"), domain.ScheduleConstraints{}, auth.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestAIHandler_OptimizeBudget(t *testing.T) {
	ai := fakeAIServer(t, nil)

	cfg := testutil.TestConfig()
	cfg.AIServiceURL = ai.URL
	ts := testutil.NewTestServerWithConfig(t, cfg)

	auth := testutil.RegisterUser(t, ts, "ai-budget@example.com")
	event := testutil.NewEventBuilder(mustParse(t, auth.User.ID)).Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/ai/events/"+event.ID.String()+"/budget"), domain.BudgetRequest{TotalBudget: 1000}, auth.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plan domain.BudgetPlan
	testutil.AssertJSONResponse(t, resp, &plan)
	require.Len(t, plan.Allocations, 1)
	assert.Equal(t, "Venue", plan.Allocations[0].Category)
}
