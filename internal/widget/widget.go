package widget

import (
	"net/url"
	"strconv"

	"github.com/fin5/microloan/internal/service/pricingservice"
)

// Config is the constant set an embedded third-party calculator works with.
type Config struct {
	DailyRate     float64 `json:"daily_rate"`
	TargetURL     string  `json:"target_url"`
	MinAmount     int     `json:"min_amount"`
	MaxAmount     int     `json:"max_amount"`
	MinDays       int     `json:"min_days"`
	MaxDays       int     `json:"max_days"`
	DefaultAmount int     `json:"default_amount"`
	DefaultDays   int     `json:"default_days"`
}

type Pricing interface {
	Clamp(amount, days int) (int, int)
}

type Service struct {
	targetURL string
	pricing   Pricing
}

func New(targetURL string, pricing Pricing) *Service {
	return &Service{
		targetURL: targetURL,
		pricing:   pricing,
	}
}

func (s *Service) Config() Config {
	return Config{
		DailyRate:     pricingservice.DailyRatePercent,
		TargetURL:     s.targetURL,
		MinAmount:     pricingservice.MinAmount,
		MaxAmount:     pricingservice.MaxAmount,
		MinDays:       pricingservice.MinDays,
		MaxDays:       pricingservice.MaxDays,
		DefaultAmount: pricingservice.DefaultAmount,
		DefaultDays:   pricingservice.DefaultDays,
	}
}

// ApplyURL builds the landing page URL the widget's apply button opens. Terms
// are clamped the same way the widget's sliders clamp them.
func (s *Service) ApplyURL(amount, days int) (string, error) {
	amount, days = s.pricing.Clamp(amount, days)

	u, err := url.Parse(s.targetURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("amount", strconv.Itoa(amount))
	q.Set("days", strconv.Itoa(days))
	q.Set("utm_source", "widget")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
