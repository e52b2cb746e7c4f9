package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/ports"
)

// SessionRepository keeps sessions in process memory. It holds at most
// capacity sessions, dropping the least recently used, and forgets a session
// ttl after it was last saved or read.
type SessionRepository struct {
	cache *expirable.LRU[string, *domain.Session]
}

var _ ports.SessionRepositoryPort = (*SessionRepository)(nil)

func NewSessionRepository(capacity int, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: expirable.NewLRU[string, *domain.Session](capacity, nil, ttl),
	}
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	r.cache.Add(s.ID, s)
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	s, ok := r.cache.Get(id)
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	// Get alone does not move ExpiresAt.
	r.cache.Add(id, s)
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if !r.cache.Remove(id) {
		return ports.ErrSessionNotFound
	}
	return nil
}

// Len counts stored sessions, expired ones not yet purged included.
func (r *SessionRepository) Len() int {
	return r.cache.Len()
}
