package client

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/linguanest/lingua-back/internal/models"
)

// Storage keys, shared with the web admin which keeps the same pair in
// browser storage.
const (
	tokenKey = "adminToken"
	userKey  = "adminUser"
)

// Session owns the admin authentication lifecycle: it hydrates from the
// persisted store at construction, mutates on Login/Logout, and persists
// back on every mutation. It is the TokenSource for its own Client, so the
// token never lives in shared package state.
type Session struct {
	mu     sync.Mutex
	store  Store
	client *Client
	logger *zap.Logger
	token  string
	user   *models.AdminUser
}

// NewSession hydrates a session from store and builds a Client bound to it.
// A persisted user record that fails to parse clears the whole session.
func NewSession(baseURL string, store Store, logger *zap.Logger, opts ...Option) *Session {
	s := &Session{store: store, logger: logger}
	s.client = New(baseURL, append(opts, WithTokenSource(s))...)

	if token, ok := store.Get(tokenKey); ok && token != "" {
		s.token = token
		if raw, ok := store.Get(userKey); ok {
			var user models.AdminUser
			if err := json.Unmarshal([]byte(raw), &user); err != nil {
				logger.Error("failed to parse stored user", zap.Error(err))
				s.clear()
			} else {
				s.user = &user
			}
		}
	}

	return s
}

// Client returns the API client bound to this session.
func (s *Session) Client() *Client { return s.client }

// Token implements TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) User() *models.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated is true iff both token and user are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// Resolve fetches the current user when a token was persisted without a
// user record. A fetch failure is logged but does NOT log the session out:
// the token may still be valid and a transient network error should not
// discard it.
func (s *Session) Resolve(ctx context.Context) error {
	s.mu.Lock()
	needsUser := s.token != "" && s.user == nil
	s.mu.Unlock()
	if !needsUser {
		return nil
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch user for stored token", zap.Error(err))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return s.persistUser(user)
}

// Login authenticates and persists the resulting token and user. On failure
// the session is left untouched.
func (s *Session) Login(ctx context.Context, username, password string) error {
	result, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = result.Token
	s.user = &result.User

	if err := s.store.Set(tokenKey, result.Token); err != nil {
		return err
	}
	return s.persistUser(&result.User)
}

// Logout clears the persisted token and user unconditionally. No backend
// call is made.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

func (s *Session) clear() {
	s.token = ""
	s.user = nil
	if err := s.store.Delete(tokenKey); err != nil {
		s.logger.Warn("failed to clear stored token", zap.Error(err))
	}
	if err := s.store.Delete(userKey); err != nil {
		s.logger.Warn("failed to clear stored user", zap.Error(err))
	}
}

func (s *Session) persistUser(user *models.AdminUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(userKey, string(raw))
}
