package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthResponse mirrors the handler auth payload for decoding in tests
type AuthResponse struct {
	User struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"user"`
	Token string `json:"token"`
}

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email     string
	firstName string
	lastName  string
	password  string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:     fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		firstName: "Test",
		lastName:  "User",
		password:  "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithName sets the first and last name
func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.firstName = first
	b.lastName = last
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		FirstName:    b.firstName,
		LastName:     b.lastName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// EventBuilder creates test events with a builder pattern
type EventBuilder struct {
	title     string
	eventType string
	status    domain.EventStatus
	userID    uuid.UUID
	startTime time.Time
	budget    float64
}

// NewEventBuilder creates a new EventBuilder with default values
func NewEventBuilder(userID uuid.UUID) *EventBuilder {
	return &EventBuilder{
		title:     fmt.Sprintf("Test Event %s", uuid.New().String()[:8]),
		eventType: "Meeting",
		status:    domain.EventStatusDraft,
		userID:    userID,
		startTime: time.Now().Add(24 * time.Hour),
		budget:    1000,
	}
}

// WithTitle sets the title
func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.title = title
	return b
}

// WithStatus sets the status
func (b *EventBuilder) WithStatus(status domain.EventStatus) *EventBuilder {
	b.status = status
	return b
}

// WithStartTime sets the start time
func (b *EventBuilder) WithStartTime(start time.Time) *EventBuilder {
	b.startTime = start
	return b
}

// Build creates the event in the database
func (b *EventBuilder) Build(t *testing.T, db *gorm.DB) *domain.Event {
	t.Helper()

	event := &domain.Event{
		ID:        uuid.New(),
		Title:     b.title,
		EventType: b.eventType,
		StartTime: b.startTime,
		EndTime:   b.startTime.Add(2 * time.Hour),
		Timezone:  "America/New_York",
		Location:  "Test Venue",
		Budget:    b.budget,
		UserID:    b.userID,
		Status:    b.status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	return event
}

// VendorBuilder creates test vendors with a builder pattern
type VendorBuilder struct {
	name     string
	category string
	location string
	rating   float64
}

// NewVendorBuilder creates a new VendorBuilder with default values
func NewVendorBuilder() *VendorBuilder {
	return &VendorBuilder{
		name:     fmt.Sprintf("Test Vendor %s", uuid.New().String()[:8]),
		category: "Catering",
		location: "New York",
		rating:   4.5,
	}
}

// WithName sets the vendor name
func (b *VendorBuilder) WithName(name string) *VendorBuilder {
	b.name = name
	return b
}

// WithCategory sets the category
func (b *VendorBuilder) WithCategory(category string) *VendorBuilder {
	b.category = category
	return b
}

// WithLocation sets the location
func (b *VendorBuilder) WithLocation(location string) *VendorBuilder {
	b.location = location
	return b
}

// WithRating sets the rating
func (b *VendorBuilder) WithRating(rating float64) *VendorBuilder {
	b.rating = rating
	return b
}

// Build creates the vendor in the database
func (b *VendorBuilder) Build(t *testing.T, db *gorm.DB) *domain.Vendor {
	t.Helper()

	vendor := &domain.Vendor{
		ID:         uuid.New(),
		Name:       b.name,
		Category:   b.category,
		Email:      "vendor@example.com",
		Phone:      "555-0100",
		PriceRange: "$$",
		Rating:     b.rating,
		Location:   b.location,
	}

	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("failed to create vendor: %v", err)
	}

	return vendor
}

// RegisterUser registers a fresh user through the API and returns the token
func RegisterUser(t *testing.T, ts *TestServer, email string) AuthResponse {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  "testpassword123",
	})

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", resp.StatusCode)
	}

	var result AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}
	return result
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
