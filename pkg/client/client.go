package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Errors mapped from API status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrRateLimited  = errors.New("rate limited")
	ErrUnavailable  = errors.New("service unavailable")
	ErrServer       = errors.New("server error")
)

// Client is a typed client for the event planner API. It injects the
// session's bearer token on every request and clears the session when the
// server rejects that token.
type Client struct {
	baseURL string
	session *Session
	http    *http.Client
	group   singleflight.Group
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Session() *Session {
	return c.session
}

// --- auth ---

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type authPayload struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", input, &payload); err != nil {
		return nil, err
	}
	if err := c.session.SetCredentials(payload.User, payload.Token); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &payload); err != nil {
		return nil, err
	}
	if err := c.session.SetCredentials(payload.User, payload.Token); err != nil {
		return nil, err
	}
	return payload.User, nil
}

// LoadProfile fetches the current user when the session is authenticated
// but has no user loaded yet (the app-entry case after Restore). Concurrent
// calls are collapsed into a single request; every caller gets the same
// result instead of racing to write the state last.
func (c *Client) LoadProfile(ctx context.Context) (*domain.User, error) {
	state := c.session.State()
	if !state.Authenticated {
		return nil, ErrUnauthorized
	}
	if state.User != nil {
		return state.User, nil
	}

	v, err, _ := c.group.Do("profile", func() (interface{}, error) {
		c.session.setLoading(true)
		defer c.session.setLoading(false)

		var user domain.User
		if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &user); err != nil {
			return nil, err
		}
		c.session.ProfileLoaded(&user)
		return &user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.User), nil
}

type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", input, &user); err != nil {
		return nil, err
	}
	c.session.ProfileLoaded(&user)
	return &user, nil
}

// --- events ---

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+id.String(), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, input map[string]interface{}) (*domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", input, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id uuid.UUID, input map[string]interface{}) (*domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodPut, "/api/events/"+id.String(), input, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+id.String(), nil, nil)
}

// --- participants ---

func (c *Client) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	var participants []domain.Participant
	path := "/api/events/" + eventID.String() + "/participants"
	if err := c.do(ctx, http.MethodGet, path, nil, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (c *Client) AddParticipant(ctx context.Context, eventID uuid.UUID, input map[string]interface{}) (*domain.Participant, error) {
	var participant domain.Participant
	path := "/api/events/" + eventID.String() + "/participants"
	if err := c.do(ctx, http.MethodPost, path, input, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

// --- vendors ---

type VendorFilters struct {
	Category  string
	Location  string
	MinRating float64
}

func (c *Client) ListVendors(ctx context.Context, filters VendorFilters) ([]domain.Vendor, error) {
	q := url.Values{}
	if filters.Category != "" {
		q.Set("category", filters.Category)
	}
	if filters.Location != "" {
		q.Set("location", filters.Location)
	}
	if filters.MinRating > 0 {
		q.Set("minRating", fmt.Sprintf("%g", filters.MinRating))
	}

	path := "/api/vendors"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var vendors []domain.Vendor
	if err := c.do(ctx, http.MethodGet, path, nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *Client) GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := c.do(ctx, http.MethodGet, "/api/vendors/"+id.String(), nil, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Client) SearchVendors(ctx context.Context, query string) ([]domain.Vendor, error) {
	var vendors []domain.Vendor
	path := "/api/vendors/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// --- recommendations ---

func (c *Client) GenerateSchedule(ctx context.Context, eventID uuid.UUID, constraints domain.ScheduleConstraints) ([]domain.ScheduleSuggestion, error) {
	var suggestions []domain.ScheduleSuggestion
	path := "/api/ai/events/" + eventID.String() + "/schedule"
	if err := c.do(ctx, http.MethodPost, path, constraints, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (c *Client) RecommendVendors(ctx context.Context, eventID uuid.UUID, criteria domain.VendorCriteria) ([]domain.Vendor, error) {
	var vendors []domain.Vendor
	path := "/api/ai/events/" + eventID.String() + "/vendors"
	if err := c.do(ctx, http.MethodPost, path, criteria, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *Client) OptimizeBudget(ctx context.Context, eventID uuid.UUID, req domain.BudgetRequest) (*domain.BudgetPlan, error) {
	var plan domain.BudgetPlan
	path := "/api/ai/events/" + eventID.String() + "/budget"
	if err := c.do(ctx, http.MethodPost, path, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// do performs one API call. Requests carry the session token when one is
// held; a 401 on such a request means the token expired or was revoked, and
// the session is cleared on the spot. That reactive check is the only
// expiry detection the client does.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := c.session.token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized && token != "" {
			_ = c.session.ProfileFailed()
		}
		return statusError(resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(code int, msg string) error {
	var base error
	switch code {
	case http.StatusBadRequest:
		base = ErrBadRequest
	case http.StatusUnauthorized:
		base = ErrUnauthorized
	case http.StatusNotFound:
		base = ErrNotFound
	case http.StatusConflict:
		base = ErrConflict
	case http.StatusTooManyRequests:
		base = ErrRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		base = ErrUnavailable
	default:
		base = ErrServer
	}
	if msg == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, msg)
}
