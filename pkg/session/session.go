// Package session holds the logged-in identity for one browser-tab-like
// scope. It is an explicit object handed to page handlers, not ambient
// global state, and its role gating is advisory only: the server performs
// no authorization of its own.
package session

import (
	"errors"
	"sync"

	"lifeline-qr-server/pkg/client"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAccessDenied     = errors.New("access denied")
)

// Store is one session scope. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *client.Account
}

func New() *Store {
	return &Store{}
}

// Login records the authenticated account. The account arrives password-free
// from the login endpoint; the session never holds credentials.
func (s *Store) Login(account *client.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = account
}

// Current returns the logged-in account, or nil.
func (s *Store) Current() *client.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) IsLoggedIn() bool {
	return s.Current() != nil
}

func (s *Store) IsRole(role string) bool {
	account := s.Current()
	return account != nil && account.Role == role
}

// Logout destroys the session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// RequireAuth gates a page on any authenticated identity.
func (s *Store) RequireAuth() error {
	if !s.IsLoggedIn() {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireRole gates a page on a specific role.
func (s *Store) RequireRole(role string) error {
	if err := s.RequireAuth(); err != nil {
		return err
	}
	if !s.IsRole(role) {
		return ErrAccessDenied
	}
	return nil
}
