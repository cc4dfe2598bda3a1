package handlers

import (
	"net/http"

	_ "github.com/fin5/microloan/docs"
	applicationhandlers "github.com/fin5/microloan/internal/handlers/applications"
	chathandlers "github.com/fin5/microloan/internal/handlers/chat"
	profilehandlers "github.com/fin5/microloan/internal/handlers/profile"
	promohandlers "github.com/fin5/microloan/internal/handlers/promo"
	quotehandlers "github.com/fin5/microloan/internal/handlers/quote"
	sessionhandlers "github.com/fin5/microloan/internal/handlers/session"
	widgethandlers "github.com/fin5/microloan/internal/handlers/widget"
	"github.com/fin5/microloan/internal/service"
	"github.com/fin5/microloan/pkg/auth"
	"github.com/fin5/microloan/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type SessionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type QuoteHandler interface {
	GetQuote(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	CreateApplication(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	UpdateApplicant(w http.ResponseWriter, r *http.Request)
	Advance(w http.ResponseWriter, r *http.Request)
	Back(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	GetProcessing(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
	GetMessages(w http.ResponseWriter, r *http.Request)
	GetQuickQuestions(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type PromoHandler interface {
	GetPromo(w http.ResponseWriter, r *http.Request)
}

type WidgetHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SessionHandler     SessionHandler
	QuoteHandler       QuoteHandler
	ApplicationHandler ApplicationHandler
	ChatHandler        ChatHandler
	ProfileHandler     ProfileHandler
	PromoHandler       PromoHandler
	WidgetHandler      WidgetHandler

	sessionService sessionhandlers.Service
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		SessionHandler:     sessionhandlers.New(s.SessionService),
		QuoteHandler:       quotehandlers.New(s.PricingService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		ChatHandler:        chathandlers.New(s.ChatService),
		ProfileHandler:     profilehandlers.New(s.ProfileService),
		PromoHandler:       promohandlers.New(s.PromoService),
		WidgetHandler:      widgethandlers.New(s.WidgetService),
		sessionService:     s.SessionService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/widget", func(r chi.Router) {
		r.Get("/config", h.WidgetHandler.GetConfig)
		r.Get("/apply", h.WidgetHandler.Apply)
	})
	r.Get("/api/quote", h.QuoteHandler.GetQuote)
	r.Get("/api/promo", h.PromoHandler.GetPromo)
	r.Post("/api/session", h.SessionHandler.Create)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware, h.sessionGuard)
		r.Delete("/api/session", h.SessionHandler.Delete)
		r.Route("/api/applications", func(r chi.Router) {
			r.Post("/", h.ApplicationHandler.CreateApplication)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.ApplicationHandler.GetApplication)
				r.Patch("/applicant", h.ApplicationHandler.UpdateApplicant)
				r.Post("/advance", h.ApplicationHandler.Advance)
				r.Post("/back", h.ApplicationHandler.Back)
				r.Post("/submit", h.ApplicationHandler.Submit)
				r.Get("/processing", h.ApplicationHandler.GetProcessing)
			})
		})
		r.Route("/api/chat", func(r chi.Router) {
			r.Post("/messages", h.ChatHandler.SendMessage)
			r.Get("/messages", h.ChatHandler.GetMessages)
			r.Get("/questions", h.ChatHandler.GetQuickQuestions)
		})
		r.Route("/api/profile", func(r chi.Router) {
			r.Get("/", h.ProfileHandler.GetProfile)
			r.Post("/login", h.ProfileHandler.Login)
			r.Post("/logout", h.ProfileHandler.Logout)
		})
	})

	return r
}

// sessionGuard rejects tokens whose session is gone from the store, either
// evicted by the janitor or deleted explicitly. The token itself may still be
// within its validity window.
func (h *Handlers) sessionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := r.Context().Value(auth.SessionIDKey).(string)
		if !ok || !h.sessionService.Exists(r.Context(), sessionID) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Session expired")
			return
		}
		next.ServeHTTP(w, r)
	})
}
