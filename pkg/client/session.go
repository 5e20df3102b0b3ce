package client

import (
	"sync"

	"github.com/ria/event-planner-website/internal/domain"
)

// State is the session snapshot a UI renders from. Values are copies; only
// the Session mutates them.
type State struct {
	User          *domain.User
	Token         string
	Authenticated bool
	Loading       bool
}

// Transition functions. Each is a pure function from the current state to
// the next one, so the lifecycle can be tested without a Session.

func login(_ State, user *domain.User, token string) State {
	return State{User: user, Token: token, Authenticated: true}
}

func profileLoaded(s State, user *domain.User) State {
	s.User = user
	s.Loading = false
	return s
}

// profileFailed terminates the session; an invalid or expired token is the
// only path that ends a session without an explicit sign-out.
func profileFailed(State) State {
	return State{}
}

func signOut(State) State {
	return State{}
}

// Session holds the current State and applies transitions under a lock,
// mirroring every change of Token into the TokenStore.
type Session struct {
	mu    sync.Mutex
	state State
	store *TokenStore
}

func NewSession(store *TokenStore) *Session {
	return &Session{store: store}
}

// State returns a snapshot of the current session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Restore initializes the session from a previously persisted token. With a
// token present the session starts authenticated but without a loaded user;
// the caller is expected to follow up with LoadProfile.
func (s *Session) Restore() error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != "" {
		s.state = State{Token: token, Authenticated: true}
	} else {
		s.state = State{}
	}
	return nil
}

// SetCredentials applies the login transition and persists the token.
func (s *Session) SetCredentials(user *domain.User, token string) error {
	s.mu.Lock()
	s.state = login(s.state, user, token)
	s.mu.Unlock()
	return s.store.Save(token)
}

func (s *Session) ProfileLoaded(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = profileLoaded(s.state, user)
}

// ProfileFailed clears the session and the persisted token.
func (s *Session) ProfileFailed() error {
	s.mu.Lock()
	s.state = profileFailed(s.state)
	s.mu.Unlock()
	return s.store.Clear()
}

// SignOut synchronously clears the session and the persisted token. No
// network call is made; the server keeps no session state to revoke.
func (s *Session) SignOut() error {
	s.mu.Lock()
	s.state = signOut(s.state)
	s.mu.Unlock()
	return s.store.Clear()
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = v
}

func (s *Session) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}
