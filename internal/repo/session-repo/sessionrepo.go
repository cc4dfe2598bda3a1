package sessionrepo

import (
	"context"
	"sync"
	"time"

	"github.com/fin5/microloan/internal/domain"
)

// Repository keeps page sessions in memory. Nothing here survives a restart:
// a session is the server-side twin of one open browser tab.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func New() *Repository {
	return &Repository{
		sessions: make(map[string]domain.Session),
	}
}

func (r *Repository) Save(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *Repository) FindExpired(ctx context.Context, now time.Time) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var expired []domain.Session
	for _, session := range r.sessions {
		if session.ExpiresAt.Before(now) {
			expired = append(expired, session)
		}
	}
	return expired, nil
}
