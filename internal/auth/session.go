package auth

import (
	"github.com/veridian-ai/careers-portal/internal/models"
)

// SessionState is what survives a reload: the signed-in candidate and their
// bearer access token.
type SessionState struct {
	Identity    models.CandidateIdentity `json:"user"`
	AccessToken string                   `json:"accessToken"`
}

// Store persists session state between runs. Adapters are deliberately tiny:
// MemoryStore for tests, FileStore for a real browser-profile analogue.
type Store interface {
	Load() (*SessionState, error)
	Save(SessionState) error
	Clear() error
}

// Session is the explicit session object handed to the wizard and the portal
// client. There is no package-level singleton; whoever needs the session
// receives it.
type Session struct {
	store Store
	state *SessionState
}

// NewSession restores whatever the store holds. A missing or unreadable
// store entry just means signed out; it is never a hard error.
func NewSession(store Store) *Session {
	s := &Session{store: store}
	if state, err := store.Load(); err == nil && state != nil && state.AccessToken != "" {
		s.state = state
	}
	return s
}

// Login records the candidate and token and persists them.
func (s *Session) Login(identity models.CandidateIdentity, accessToken string) error {
	state := SessionState{Identity: identity, AccessToken: accessToken}
	if err := s.store.Save(state); err != nil {
		return err
	}
	s.state = &state
	return nil
}

// Logout drops the in-memory state and the persisted copy.
func (s *Session) Logout() error {
	s.state = nil
	return s.store.Clear()
}

func (s *Session) IsAuthenticated() bool {
	return s.state != nil
}

// Identity returns the signed-in candidate, if any.
func (s *Session) Identity() (models.CandidateIdentity, bool) {
	if s.state == nil {
		return models.CandidateIdentity{}, false
	}
	return s.state.Identity, true
}

// AccessToken returns the bearer token, or "" when signed out.
func (s *Session) AccessToken() string {
	if s.state == nil {
		return ""
	}
	return s.state.AccessToken
}
