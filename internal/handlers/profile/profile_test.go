package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	profileservice "github.com/fin5/microloan/internal/service/profileservice"
	"github.com/fin5/microloan/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func demoProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Phone: "+79991234567",
		Name:  "Иван Иванов",
		Applications: []domain.LoanRecord{
			{ID: 1, Amount: 25000, Status: "approved", Date: "15.01.2024"},
			{ID: 2, Amount: 15000, Status: "paid", Date: "10.12.2023"},
		},
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Login succeeds",
			body: `{"phone":"+79991234567"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "s-1", "+79991234567").
					Return(demoProfile(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Phone is required",
			body: `{"phone":""}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "s-1", "").
					Return(nil, profileservice.ErrPhoneRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"phone":"+79991234567"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "s-1", "+79991234567").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/profile/login", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.SessionIDKey, "s-1"))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "Иван Иванов", body.Name)
				assert.Len(t, body.Applications, 2)
				assert.Equal(t, "Одобрен", body.Applications[0].StatusText)
				assert.Equal(t, "Погашен", body.Applications[1].StatusText)
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "s-1").
					Return(demoProfile(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not logged in",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "s-1").
					Return(nil, profileservice.ErrNotLoggedIn)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "s-1").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			r = r.WithContext(context.WithValue(r.Context(), auth.SessionIDKey, "s-1"))
			w := httptest.NewRecorder()

			handler.GetProfile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Logout succeeds",
			prepareMock: func() {
				service.EXPECT().
					Logout(gomock.Any(), "s-1").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Logout(gomock.Any(), "s-1").
					Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/profile/logout", nil)
			r = r.WithContext(context.WithValue(r.Context(), auth.SessionIDKey, "s-1"))
			w := httptest.NewRecorder()

			handler.Logout(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
