package applicationrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/fin5/microloan/internal/domain"
)

var ErrUnknownApplication = errors.New("unknown application")

// Repository keeps loan applications in memory, keyed by application ID.
// FindByID hands out copies: the stored record is mutated concurrently by the
// processing pipeline, callers must never see it directly.
type Repository struct {
	mu           sync.RWMutex
	applications map[string]*domain.Application
}

func New() *Repository {
	return &Repository{
		applications: make(map[string]*domain.Application),
	}
}

func (r *Repository) Save(ctx context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneApplication(app)
	r.applications[app.ID] = stored
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.applications[id]
	if !ok {
		return nil, nil
	}
	return cloneApplication(app), nil
}

func (r *Repository) Update(ctx context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[app.ID]; !ok {
		return ErrUnknownApplication
	}
	r.applications[app.ID] = cloneApplication(app)
	return nil
}

func (r *Repository) UpdateStepStatus(ctx context.Context, id string, stepIdx int, status domain.StepStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applications[id]
	if !ok {
		return ErrUnknownApplication
	}
	if stepIdx < 0 || stepIdx >= len(app.Steps) {
		return errors.New("step index out of range")
	}
	app.Steps[stepIdx].Status = status
	return nil
}

func (r *Repository) SetState(ctx context.Context, id string, state domain.ApplicationState, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applications[id]
	if !ok {
		return ErrUnknownApplication
	}
	app.State = state
	app.RejectReason = reason
	return nil
}

func (r *Repository) DeleteBySession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, app := range r.applications {
		if app.SessionID == sessionID {
			delete(r.applications, id)
		}
	}
	return nil
}

func cloneApplication(app *domain.Application) *domain.Application {
	clone := *app
	clone.Steps = make([]domain.ProcessingStep, len(app.Steps))
	copy(clone.Steps, app.Steps)
	return &clone
}
