package service

import (
	"testing"
	"time"

	"github.com/fin5/microloan/internal/config"
	"github.com/fin5/microloan/internal/repo"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Address:    "localhost:8080",
		SiteURL:    "https://fin5.ru",
		SessionTTL: time.Hour,
	}

	services := New(repo.New(), cfg)

	assert.NotNil(t, services.SessionService)
	assert.NotNil(t, services.PricingService)
	assert.NotNil(t, services.ApplicationService)
	assert.NotNil(t, services.ChatService)
	assert.NotNil(t, services.ProfileService)
	assert.NotNil(t, services.PromoService)
	assert.NotNil(t, services.WidgetService)
}
