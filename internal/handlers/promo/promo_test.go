package promo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PromoHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetPromoHandler(t *testing.T) {
	handler, service := NewMock(t)

	endsAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	service.EXPECT().Current().Return(domain.Promo{
		Title:  "Первый займ под 0% для новых клиентов",
		EndsAt: endsAt,
	})
	service.EXPECT().Remaining().Return(16 * 24 * time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/api/promo", nil)
	w := httptest.NewRecorder()

	handler.GetPromo(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.PromoResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "Первый займ под 0% для новых клиентов", body.Title)
	assert.Equal(t, endsAt.Format(time.RFC3339), body.EndsAt)
	assert.Equal(t, int64(16*24*60*60), body.RemainingSeconds)
}
