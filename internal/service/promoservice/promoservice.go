package promoservice

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/fin5/microloan/internal/domain"
)

const promoTitle = "Первый займ под 0% для новых клиентов"

// Service exposes the current promotion, which runs until the end of the
// calendar month. The countdown itself ticks on the client.
type Service struct {
	clk clock.Clock
}

func New(clk clock.Clock) *Service {
	return &Service{clk: clk}
}

func (s *Service) Current() domain.Promo {
	now := s.clk.Now()
	endOfMonth := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())

	return domain.Promo{
		Title:  promoTitle,
		EndsAt: endOfMonth,
	}
}

// Remaining returns the time left in the promotion window, never negative.
func (s *Service) Remaining() time.Duration {
	remaining := s.Current().EndsAt.Sub(s.clk.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
