package widget

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	innerwidget "github.com/fin5/microloan/internal/widget"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WidgetHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetConfigHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Config().Return(innerwidget.Config{
		DailyRate:     0.08,
		TargetURL:     "https://fin5.ru",
		MinAmount:     1000,
		MaxAmount:     50000,
		MinDays:       1,
		MaxDays:       30,
		DefaultAmount: 15000,
		DefaultDays:   14,
	})

	r := httptest.NewRequest(http.MethodGet, "/widget/config", nil)
	w := httptest.NewRecorder()

	handler.GetConfig(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body innerwidget.Config
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "https://fin5.ru", body.TargetURL)
	assert.Equal(t, 15000, body.DefaultAmount)
	assert.Equal(t, 0.08, body.DailyRate)
}

func TestApplyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name             string
		query            string
		prepareMock      func()
		expectedCode     int
		expectedLocation string
		expectedError    string
	}{
		{
			name:  "Redirect with chosen terms",
			query: "amount=20000&days=10",
			prepareMock: func() {
				service.EXPECT().
					ApplyURL(20000, 10).
					Return("https://fin5.ru?amount=20000&days=10&utm_source=widget", nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "https://fin5.ru?amount=20000&days=10&utm_source=widget",
		},
		{
			name:          "Malformed amount",
			query:         "amount=abc&days=10",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid amount",
		},
		{
			name:          "Malformed days",
			query:         "amount=20000&days=",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid days",
		},
		{
			name:  "Internal server error",
			query: "amount=20000&days=10",
			prepareMock: func() {
				service.EXPECT().
					ApplyURL(20000, 10).
					Return("", errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/widget/apply?"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.Apply(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
