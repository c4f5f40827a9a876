package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Service keeps the live triage sessions of the process in memory.
type Service struct {
	opts Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService bootstraps the in-memory session registry.
func NewService(opts Options) *Service {
	return &Service{
		opts:     opts.withDefaults(),
		sessions: make(map[string]*Session),
	}
}

// CreateSession provisions a new conversation seeded with the welcome message.
func (s *Service) CreateSession(_ context.Context) (*Session, error) {
	session := NewSession("", s.opts)

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()

	s.opts.Logger.Info("session created", "component", "chat", "session", session.ID())
	return session, nil
}

// GetSession retrieves a live session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Submit forwards text to the session. The boolean is false when the session
// refused the submission.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (bool, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return session.Submit(text), nil
}

// LoadTranscript returns the messages of the session in insertion order.
func (s *Service) LoadTranscript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Messages(), nil
}

// DisposeSession tears the session down and forgets it.
func (s *Service) DisposeSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.Dispose()
	s.opts.Logger.Info("session disposed", "component", "chat", "session", sessionID)
	return nil
}

// Sweep disposes sessions with no activity for longer than idle and returns
// how many were removed. Sessions awaiting a reply are kept.
func (s *Service) Sweep(idle time.Duration) int {
	cutoff := s.opts.Now().Add(-idle)

	s.mu.Lock()
	var expired []*Session
	for id, session := range s.sessions {
		if session.IsPending() || session.LastActivity().After(cutoff) {
			continue
		}
		expired = append(expired, session)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Dispose()
	}
	if len(expired) > 0 {
		s.opts.Logger.Info("idle sessions swept", "component", "chat", "count", len(expired))
	}
	return len(expired)
}

// Len returns the number of live sessions.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close disposes every session.
func (s *Service) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Dispose()
	}
}
