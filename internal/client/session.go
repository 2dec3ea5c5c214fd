package client

import (
	"sync"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
)

// Session holds the signed-in identity of a client. It replaces any
// process-wide token storage: every Client and Dashboard is handed one.
type Session struct {
	mu     sync.RWMutex
	token  string
	userID uint
	role   user.Role
	name   string

	onLogout func(redirect string)
}

// NewSession returns an empty session. onLogout is called with the login
// path whenever the session is cleared; it may be nil.
func NewSession(onLogout func(redirect string)) *Session {
	return &Session{onLogout: onLogout}
}

func (s *Session) Start(token string, userID uint, role user.Role, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
	s.role = role
	s.name = name
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Role() user.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) UserID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Logout clears the session and redirects to the login page.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.userID = 0
	s.role = ""
	s.name = ""
	cb := s.onLogout
	s.mu.Unlock()

	if cb != nil {
		cb(LoginPath)
	}
}
