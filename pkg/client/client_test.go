package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a minimal stand-in for the real server: it issues a fixed
// token on login and serves the profile only to that token.
type fakeAPI struct {
	user         domain.User
	token        string
	profileCalls atomic.Int64
	profileDelay time.Duration
	rejectToken  bool
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  f.user,
			"token": f.token,
		})
	})
	mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		f.profileCalls.Add(1)
		if f.profileDelay > 0 {
			time.Sleep(f.profileDelay)
		}
		if f.rejectToken || r.Header.Get("Authorization") != "Bearer "+f.token {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(f.user)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		user: domain.User{
			ID:        uuid.New(),
			Email:     "client@example.com",
			FirstName: "Client",
			LastName:  "Test",
		},
		token: "issued-token",
	}
}

func TestClient_LoginPersistsToken(t *testing.T) {
	api := newFakeAPI()
	server := api.server(t)

	store := newTestStore(t)
	c := New(server.URL, NewSession(store))

	user, err := c.Login(context.Background(), "client@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, api.user.Email, user.Email)

	state := c.Session().State()
	assert.True(t, state.Authenticated)
	assert.Equal(t, "issued-token", state.Token)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "issued-token", persisted)
}

// Concurrent profile loads during app entry collapse into one request.
func TestClient_LoadProfileDeduplicates(t *testing.T) {
	api := newFakeAPI()
	api.profileDelay = 50 * time.Millisecond
	server := api.server(t)

	store := newTestStore(t)
	require.NoError(t, store.Save(api.token))

	session := NewSession(store)
	require.NoError(t, session.Restore())
	c := New(server.URL, session)

	const callers = 8
	var wg sync.WaitGroup
	users := make([]*domain.User, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			users[i], errs[i] = c.LoadProfile(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, api.user.Email, users[i].Email)
	}
	assert.Equal(t, int64(1), api.profileCalls.Load(), "concurrent loads should share one request")

	// A later call finds the user already loaded and skips the network
	_, err := c.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), api.profileCalls.Load())
}

// An invalid or expired persisted token is the only path that ends a
// session without an explicit sign-out.
func TestClient_RejectedTokenClearsSession(t *testing.T) {
	api := newFakeAPI()
	api.rejectToken = true
	server := api.server(t)

	store := newTestStore(t)
	require.NoError(t, store.Save("stale-token"))

	session := NewSession(store)
	require.NoError(t, session.Restore())
	require.True(t, session.State().Authenticated)

	c := New(server.URL, session)

	_, err := c.LoadProfile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	state := session.State()
	assert.False(t, state.Authenticated)
	assert.Empty(t, state.Token)

	persisted, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, persisted, "rejected token must be removed from storage")
}

func TestClient_LoadProfileWhenSignedOut(t *testing.T) {
	api := newFakeAPI()
	server := api.server(t)

	session := NewSession(newTestStore(t))
	require.NoError(t, session.Restore())

	c := New(server.URL, session)
	_, err := c.LoadProfile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int64(0), api.profileCalls.Load())
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusBadGateway, ErrUnavailable},
		{http.StatusInternalServerError, ErrServer},
	}

	for _, tt := range tests {
		assert.ErrorIs(t, statusError(tt.code, "detail"), tt.want)
	}
}
