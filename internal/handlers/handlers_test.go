package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/fin5/microloan/docs"
	"github.com/fin5/microloan/internal/config"
	sessionhandlers "github.com/fin5/microloan/internal/handlers/session"
	"github.com/fin5/microloan/internal/repo"
	"github.com/fin5/microloan/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Address:    "localhost:8080",
		SiteURL:    "https://fin5.ru",
		SessionTTL: time.Hour,
	}
	services := service.New(repo.New(), cfg)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionHandler := NewMockSessionHandler(ctrl)
	mockQuoteHandler := NewMockQuoteHandler(ctrl)
	mockApplicationHandler := NewMockApplicationHandler(ctrl)
	mockChatHandler := NewMockChatHandler(ctrl)
	mockProfileHandler := NewMockProfileHandler(ctrl)
	mockPromoHandler := NewMockPromoHandler(ctrl)
	mockWidgetHandler := NewMockWidgetHandler(ctrl)

	mockSessionHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockQuoteHandler.EXPECT().GetQuote(gomock.Any(), gomock.Any()).AnyTimes()
	mockApplicationHandler.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).AnyTimes()
	mockApplicationHandler.EXPECT().GetApplication(gomock.Any(), gomock.Any()).AnyTimes()
	mockApplicationHandler.EXPECT().UpdateApplicant(gomock.Any(), gomock.Any()).AnyTimes()
	mockApplicationHandler.EXPECT().Advance(gomock.Any(), gomock.Any()).AnyTimes()
	mockApplicationHandler.EXPECT().Back(gomock.Any(), gomock.Any()).AnyTimes()
	mockApplicationHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockApplicationHandler.EXPECT().GetProcessing(gomock.Any(), gomock.Any()).AnyTimes()
	mockChatHandler.EXPECT().SendMessage(gomock.Any(), gomock.Any()).AnyTimes()
	mockChatHandler.EXPECT().GetMessages(gomock.Any(), gomock.Any()).AnyTimes()
	mockChatHandler.EXPECT().GetQuickQuestions(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().GetPromo(gomock.Any(), gomock.Any()).AnyTimes()
	mockWidgetHandler.EXPECT().GetConfig(gomock.Any(), gomock.Any()).AnyTimes()
	mockWidgetHandler.EXPECT().Apply(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		SessionHandler:     mockSessionHandler,
		QuoteHandler:       mockQuoteHandler,
		ApplicationHandler: mockApplicationHandler,
		ChatHandler:        mockChatHandler,
		ProfileHandler:     mockProfileHandler,
		PromoHandler:       mockPromoHandler,
		WidgetHandler:      mockWidgetHandler,
		sessionService:     sessionhandlers.NewMockService(ctrl),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/widget/config", http.StatusOK},
		{"GET", "/widget/apply", http.StatusOK},
		{"GET", "/api/quote", http.StatusOK},
		{"GET", "/api/promo", http.StatusOK},
		{"POST", "/api/session", http.StatusOK},
		{"DELETE", "/api/session", http.StatusUnauthorized},
		{"POST", "/api/applications", http.StatusUnauthorized},
		{"GET", "/api/applications/a-1", http.StatusUnauthorized},
		{"PATCH", "/api/applications/a-1/applicant", http.StatusUnauthorized},
		{"POST", "/api/applications/a-1/advance", http.StatusUnauthorized},
		{"POST", "/api/applications/a-1/back", http.StatusUnauthorized},
		{"POST", "/api/applications/a-1/submit", http.StatusUnauthorized},
		{"GET", "/api/applications/a-1/processing", http.StatusUnauthorized},
		{"POST", "/api/chat/messages", http.StatusUnauthorized},
		{"GET", "/api/chat/messages", http.StatusUnauthorized},
		{"GET", "/api/chat/questions", http.StatusUnauthorized},
		{"GET", "/api/profile", http.StatusUnauthorized},
		{"POST", "/api/profile/login", http.StatusUnauthorized},
		{"POST", "/api/profile/logout", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
