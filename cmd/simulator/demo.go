package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/config"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository/postgres"
	"github.com/ria/event-planner-website/pkg/client"
)

// runDemo drives the public API the way the browser client would: register,
// create events, attach participants, then read everything back.
func runDemo(apiURL string, eventCount int) error {
	ctx := context.Background()

	store, err := client.NewTokenStore(os.TempDir())
	if err != nil {
		return err
	}
	session := client.NewSession(store)
	c := client.New(apiURL, session)

	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("demo_%s@example.com", suffix)

	fmt.Printf("Registering %s... ", email)
	user, err := c.Register(ctx, client.RegisterInput{
		FirstName: "Demo",
		LastName:  "Planner",
		Email:     email,
		Password:  "demo-password-123",
	})
	if err != nil {
		return err
	}
	fmt.Printf("OK (user: %s)\n", user.ID)

	for i := 0; i < eventCount; i++ {
		start := time.Now().Add(time.Duration(i+7) * 24 * time.Hour)
		fmt.Printf("Creating event %d/%d... ", i+1, eventCount)
		event, err := c.CreateEvent(ctx, map[string]interface{}{
			"title":     fmt.Sprintf("Demo Event %d", i+1),
			"eventType": "Meeting",
			"startTime": start.Format(time.RFC3339),
			"endTime":   start.Add(2 * time.Hour).Format(time.RFC3339),
			"timezone":  "America/New_York",
			"location":  "Main Office",
			"budget":    5000,
		})
		if err != nil {
			return err
		}
		fmt.Printf("OK (%s)\n", event.ID)

		for _, name := range []string{"Ana", "Ben", "Cleo"} {
			_, err := c.AddParticipant(ctx, event.ID, map[string]interface{}{
				"email": fmt.Sprintf("%s_%s@example.com", name, suffix),
				"name":  name,
			})
			if err != nil {
				return err
			}
		}
	}

	events, err := c.ListEvents(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Done: %d event(s) visible for %s\n", len(events), email)
	return nil
}

// runSeedVendors writes straight to the database; the API has no vendor
// creation endpoint.
func runSeedVendors() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	repos := postgres.NewRepositories(db)
	ctx := context.Background()

	vendors := []domain.Vendor{
		{Name: "Harborview Hall", Category: "Venue", Location: "Boston", PriceRange: "$$$", Rating: 4.7, Email: "book@harborview.example.com", Phone: "555-0101"},
		{Name: "Saffron & Sage Catering", Category: "Catering", Location: "Boston", PriceRange: "$$", Rating: 4.5, Email: "hello@saffronsage.example.com", Phone: "555-0102"},
		{Name: "Golden Hour Photo", Category: "Photography", Location: "Cambridge", PriceRange: "$$", Rating: 4.9, Email: "shoot@goldenhour.example.com", Phone: "555-0103"},
		{Name: "Northside AV", Category: "Audio/Visual", Location: "Boston", PriceRange: "$$", Rating: 4.2, Email: "rig@northsideav.example.com", Phone: "555-0104"},
		{Name: "Petal & Stem", Category: "Decoration", Location: "Somerville", PriceRange: "$", Rating: 4.0, Email: "orders@petalstem.example.com", Phone: "555-0105"},
	}

	for i := range vendors {
		vendors[i].ID = uuid.New()
		fmt.Printf("Seeding %s... ", vendors[i].Name)
		if err := repos.Vendor.Create(ctx, &vendors[i]); err != nil {
			return err
		}
		fmt.Println("OK")
	}

	fmt.Printf("Done: %d vendor(s) seeded\n", len(vendors))
	return nil
}
