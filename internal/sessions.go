package internal

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Session is one remote typing session with its own engine.
type Session struct {
	ID string

	mu      sync.Mutex
	engine  *Engine
	limiter *rate.Limiter
}

// Suggest runs req through the session engine. Calls on one session are
// serialized.
func (s *Session) Suggest(req Request) []Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Suggest(req)
}

// Allow reports whether another request fits the session rate.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

// SessionStore keeps sessions in memory and drops them when idle longer
// than the TTL or when the store is full.
type SessionStore struct {
	sessions  *expirable.LRU[string, *Session]
	newEngine func() *Engine
	rate      rate.Limit
	burst     int
}

// NewSessionStore creates a store holding at most size sessions.
func NewSessionStore(size int, ttl time.Duration, ratePerSecond float64, burst int, newEngine func() *Engine) *SessionStore {
	return &SessionStore{
		sessions:  expirable.NewLRU[string, *Session](size, nil, ttl),
		newEngine: newEngine,
		rate:      rate.Limit(ratePerSecond),
		burst:     burst,
	}
}

// Create starts a new session.
func (s *SessionStore) Create() *Session {
	session := &Session{
		ID:      uuid.New().String(),
		engine:  s.newEngine(),
		limiter: rate.NewLimiter(s.rate, s.burst),
	}
	s.sessions.Add(session.ID, session)
	return session
}

// Get returns the session and renews its TTL.
func (s *SessionStore) Get(id string) (*Session, bool) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s.sessions.Add(id, session)
	return session, true
}

// Delete forgets a session. It reports whether the session existed.
func (s *SessionStore) Delete(id string) bool {
	return s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}
