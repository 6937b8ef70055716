// Package sessions implements the server-side session store behind the
// browser auth gate. Tokens are opaque uuids held in an HttpOnly cookie;
// expiry is enforced on read and swept lazily on writes.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pokedex/internal/server/models"
)

// Store is a concurrency-safe in-process session store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration

	// now is a seam for expiry tests.
	now func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create establishes a session for userID and returns the opaque token.
func (s *Store) Create(userID string) string {
	token := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpiredLocked(now)
	s.sessions[token] = models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	return token
}

// Get returns the active session for the token. Expired sessions are
// removed and reported as absent.
func (s *Store) Get(token string) (models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, false
	}
	if sess.Expired(s.now()) {
		s.Destroy(token)
		return models.Session{}, false
	}
	return sess, true
}

// Destroy removes the session for the token. Destroying an unknown token is
// a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len reports the number of stored sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) evictExpiredLocked(now time.Time) {
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
		}
	}
}
