package service

import (
	"github.com/benbjohnson/clock"

	"github.com/fin5/microloan/internal/config"
	"github.com/fin5/microloan/internal/handlers/applications"
	"github.com/fin5/microloan/internal/handlers/chat"
	"github.com/fin5/microloan/internal/handlers/profile"
	"github.com/fin5/microloan/internal/handlers/promo"
	"github.com/fin5/microloan/internal/handlers/quote"
	widgethandlers "github.com/fin5/microloan/internal/handlers/widget"

	pkgauth "github.com/fin5/microloan/pkg/auth"

	"github.com/fin5/microloan/internal/notify"
	"github.com/fin5/microloan/internal/pipeline"
	"github.com/fin5/microloan/internal/repo"
	applicationservice "github.com/fin5/microloan/internal/service/applicationservice"
	chatservice "github.com/fin5/microloan/internal/service/chatservice"
	"github.com/fin5/microloan/internal/service/pricingservice"
	profileservice "github.com/fin5/microloan/internal/service/profileservice"
	promoservice "github.com/fin5/microloan/internal/service/promoservice"
	sessionservice "github.com/fin5/microloan/internal/service/sessionservice"
	"github.com/fin5/microloan/internal/widget"
)

type Services struct {
	// SessionService stays concrete so the application can start its
	// expiry janitor alongside the HTTP server.
	SessionService     *sessionservice.Service
	PricingService     quote.Service
	ApplicationService applications.Service
	ChatService        chat.Service
	ProfileService     profile.Service
	PromoService       promo.Service
	WidgetService      widgethandlers.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	clk := clock.New()

	pricingService := pricingservice.New()
	chatService := chatservice.New(repo.ChatRepo, clk, chatservice.NewRandomPicker())
	applicationService := applicationservice.New(repo.ApplicationRepo, pricingService, notify.NewLogNotifier(), pipeline.NewRunner(clk), clk)
	profileService := profileservice.New(repo.ProfileRepo)
	sessionService := sessionservice.New(repo.SessionRepo, &pkgauth.JWTService{}, chatService, cfg.SessionTTL, clk,
		applicationService, chatService, profileService)
	promoService := promoservice.New(clk)
	widgetService := widget.New(cfg.SiteURL, pricingService)

	return &Services{
		SessionService:     sessionService,
		PricingService:     pricingService,
		ApplicationService: applicationService,
		ChatService:        chatService,
		ProfileService:     profileService,
		PromoService:       promoService,
		WidgetService:      widgetService,
	}
}
