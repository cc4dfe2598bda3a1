package sessionservice

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/pkg/auth"
)

type Repo interface {
	Save(ctx context.Context, session domain.Session) error
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	FindExpired(ctx context.Context, now time.Time) ([]domain.Session, error)
}

// Greeter seeds a new session's conversation.
type Greeter interface {
	Greet(ctx context.Context, sessionID string) error
}

// Cleaner releases whatever state a component holds for a session, including
// any scheduled timers. Every component owning per-session state registers
// one.
type Cleaner interface {
	DiscardSession(ctx context.Context, sessionID string) error
}

const janitorInterval = time.Minute

type Service struct {
	repo     Repo
	jwt      auth.JWTServiceInterface
	greeter  Greeter
	cleaners []Cleaner
	ttl      time.Duration
	clk      clock.Clock
}

func New(repo Repo, jwt auth.JWTServiceInterface, greeter Greeter, ttl time.Duration, clk clock.Clock, cleaners ...Cleaner) *Service {
	return &Service{
		repo:     repo,
		jwt:      jwt,
		greeter:  greeter,
		cleaners: cleaners,
		ttl:      ttl,
		clk:      clk,
	}
}

// Create opens a page session and returns its bearer token.
func (s *Service) Create(ctx context.Context) (*domain.Session, string, error) {
	now := s.clk.Now()
	session := domain.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.repo.Save(ctx, session); err != nil {
		zap.L().Error("can't save session: ", zap.Error(err))
		return nil, "", err
	}

	if err := s.greeter.Greet(ctx, session.ID); err != nil {
		zap.L().Error("can't seed chat greeting: ", zap.Error(err))
		return nil, "", err
	}

	token, err := s.jwt.GenerateJWT(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, "", err
	}

	return &session, token, nil
}

// Exists reports whether the session is known and not expired.
func (s *Service) Exists(ctx context.Context, id string) bool {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil || session == nil {
		return false
	}
	return session.ExpiresAt.After(s.clk.Now())
}

// Delete discards the session and everything scoped to it: applications and
// their running pipelines, the conversation with a possibly pending reply,
// the profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	for _, cleaner := range s.cleaners {
		if err := cleaner.DiscardSession(ctx, id); err != nil {
			zap.L().Error("can't discard session state", zap.String("session_id", id), zap.Error(err))
		}
	}
	return s.repo.Delete(ctx, id)
}

// Start runs the janitor loop that evicts expired sessions. It blocks until
// the context is canceled.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Session janitor started")
	ticker := s.clk.Ticker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping session janitor")
			return
		case <-ticker.C:
			s.evictExpired(ctx)
		}
	}
}

func (s *Service) evictExpired(ctx context.Context) {
	expired, err := s.repo.FindExpired(ctx, s.clk.Now())
	if err != nil {
		zap.L().Error("Failed to list expired sessions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, session := range expired {
		session := session
		g.Go(func() error {
			return s.Delete(ctx, session.ID)
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error evicting expired sessions", zap.Error(err))
	}
}
