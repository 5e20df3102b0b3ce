package client

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *TokenStore {
	t.Helper()
	store, err := NewTokenStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSessionTransitions(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "t@example.com"}

	tests := []struct {
		name  string
		apply func(State) State
		from  State
		want  State
	}{
		{
			name:  "login from empty",
			apply: func(s State) State { return login(s, user, "tok") },
			from:  State{},
			want:  State{User: user, Token: "tok", Authenticated: true},
		},
		{
			name:  "login replaces a stale session",
			apply: func(s State) State { return login(s, user, "tok2") },
			from:  State{Token: "old", Authenticated: true},
			want:  State{User: user, Token: "tok2", Authenticated: true},
		},
		{
			name:  "profile loaded fills in the user",
			apply: func(s State) State { return profileLoaded(s, user) },
			from:  State{Token: "tok", Authenticated: true, Loading: true},
			want:  State{User: user, Token: "tok", Authenticated: true},
		},
		{
			name:  "profile failure clears everything",
			apply: profileFailed,
			from:  State{User: user, Token: "tok", Authenticated: true},
			want:  State{},
		},
		{
			name:  "sign out clears everything",
			apply: signOut,
			from:  State{User: user, Token: "tok", Authenticated: true},
			want:  State{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.apply(tt.from))
		})
	}
}

func TestSession_RestoreFromPersistedToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("persisted-token"))

	session := NewSession(store)
	require.NoError(t, session.Restore())

	state := session.State()
	assert.True(t, state.Authenticated)
	assert.Equal(t, "persisted-token", state.Token)
	assert.Nil(t, state.User, "user is loaded lazily after restore")
}

func TestSession_RestoreWithoutToken(t *testing.T) {
	session := NewSession(newTestStore(t))
	require.NoError(t, session.Restore())

	state := session.State()
	assert.False(t, state.Authenticated)
	assert.Empty(t, state.Token)
}

func TestSession_SignOutClearsPersistedToken(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store)

	user := &domain.User{ID: uuid.New(), Email: "out@example.com"}
	require.NoError(t, session.SetCredentials(user, "live-token"))

	saved, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "live-token", saved)

	require.NoError(t, session.SignOut())

	assert.Equal(t, State{}, session.State())

	// A fresh session over the same store must come up unauthenticated
	reloaded := NewSession(store)
	require.NoError(t, reloaded.Restore())
	assert.False(t, reloaded.State().Authenticated)
}

func TestSession_ProfileFailedClearsPersistedToken(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store)

	require.NoError(t, session.SetCredentials(&domain.User{ID: uuid.New()}, "dying-token"))
	require.NoError(t, session.ProfileFailed())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, State{}, session.State())
}

func TestTokenStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Clear())
	require.NoError(t, store.Save("x"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
