package profilerepo

import (
	"context"
	"sync"

	"github.com/fin5/microloan/internal/domain"
)

// Repository keeps the active demo profile per session. At most one profile
// per session; nil means not logged in.
type Repository struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
}

func New() *Repository {
	return &Repository{
		profiles: make(map[string]domain.UserProfile),
	}
}

func (r *Repository) Set(ctx context.Context, sessionID string, profile domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[sessionID] = profile
	return nil
}

func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[sessionID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, sessionID)
	return nil
}
