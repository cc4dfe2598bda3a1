package pricingservice

import (
	"math"

	"github.com/fin5/microloan/internal/domain"
)

// Loan terms offered by the product. The daily rate is fixed; making it
// configurable is a known extension point.
const (
	MinAmount  = 1000
	MaxAmount  = 50000
	AmountStep = 1000
	MinDays    = 1
	MaxDays    = 30

	DefaultAmount = 15000
	DefaultDays   = 14

	// DailyRatePercent ставка в процентах за день пользования займом.
	DailyRatePercent = 0.08
)

type Service struct{}

func New() *Service {
	return &Service{}
}

// Quote computes the overpayment and total for the given terms. Pure and
// unvalidating: out-of-range input produces a nonsensical quote, clamping is
// the caller's job.
func (s *Service) Quote(amount, days int) domain.Quote {
	overpayment := int(math.Round(float64(amount) * DailyRatePercent / 100 * float64(days)))
	total := amount + overpayment

	return domain.Quote{
		Amount:       amount,
		Days:         days,
		Overpayment:  overpayment,
		Total:        total,
		DailyPayment: int(math.Round(float64(total) / float64(days))),
	}
}

// Clamp snaps terms to the offered bounds and step, the way the calculator
// sliders do.
func (s *Service) Clamp(amount, days int) (int, int) {
	if amount < MinAmount {
		amount = MinAmount
	}
	if amount > MaxAmount {
		amount = MaxAmount
	}
	amount -= amount % AmountStep

	if days < MinDays {
		days = MinDays
	}
	if days > MaxDays {
		days = MaxDays
	}

	return amount, days
}
