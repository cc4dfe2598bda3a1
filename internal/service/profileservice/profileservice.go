package profileservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/fin5/microloan/internal/domain"
)

type Repo interface {
	Set(ctx context.Context, sessionID string, profile domain.UserProfile) error
	Get(ctx context.Context, sessionID string) (*domain.UserProfile, error)
	Delete(ctx context.Context, sessionID string) error
}

var (
	ErrPhoneRequired = errors.New("phone is required")
	ErrNotLoggedIn   = errors.New("not logged in")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Login is an explicit simulation: any non-blank phone gets a fabricated
// profile with a fixed name and two historical loan records. No password,
// no lookup. Re-login replaces the active profile.
func (s *Service) Login(ctx context.Context, sessionID, phone string) (*domain.UserProfile, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, ErrPhoneRequired
	}

	profile := domain.UserProfile{
		Phone: phone,
		Name:  "Иван Иванов",
		Applications: []domain.LoanRecord{
			{ID: 1, Amount: 25000, Status: "approved", Date: "15.01.2024"},
			{ID: 2, Amount: 15000, Status: "paid", Date: "10.12.2023"},
		},
	}

	if err := s.repo.Set(ctx, sessionID, profile); err != nil {
		zap.L().Error("can't store profile: ", zap.Error(err))
		return nil, err
	}

	return &profile, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	profile, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotLoggedIn
	}
	return profile, nil
}

// Logout clears the active profile. Idempotent.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// DiscardSession drops the profile together with the rest of the session.
func (s *Service) DiscardSession(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}
