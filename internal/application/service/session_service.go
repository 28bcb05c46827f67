package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/pkg/apperror"
)

// SessionService tracks active cashier sessions. Each session owns one cart;
// the map only exists so concurrent HTTP requests can find their session,
// the cart itself is never shared between sessions.
type SessionService struct {
	sessions    map[uuid.UUID]*entity.Session
	mu          sync.RWMutex
	idleTTL     time.Duration
	cleanupTick time.Duration
}

// NewSessionService creates a new session service. Sessions idle longer than
// idleTTL are dropped by a background sweep.
func NewSessionService(idleTTL time.Duration) *SessionService {
	s := &SessionService{
		sessions:    make(map[uuid.UUID]*entity.Session),
		idleTTL:     idleTTL,
		cleanupTick: idleTTL / 2,
	}
	if s.idleTTL > 0 {
		go s.cleanupLoop()
	}
	return s
}

// Open creates a new session with an empty cart.
func (s *SessionService) Open() *entity.Session {
	session := entity.NewSession()

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get returns the session with the given ID, marking it active. Last-seen
// bookkeeping happens under the lock: the cleanup sweep reads it there too.
func (s *SessionService) Get(id uuid.UUID) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, apperror.NewNotFoundError("Session")
	}
	session.LastSeen = time.Now()
	return session, nil
}

// Close removes the session. Closing an unknown session is a not-found error.
func (s *SessionService) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[id]; !exists {
		return apperror.NewNotFoundError("Session")
	}
	delete(s.sessions, id)
	return nil
}

// Count returns the number of active sessions.
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *SessionService) cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
