package applications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	applicationservice "github.com/fin5/microloan/internal/service/applicationservice"
	"github.com/fin5/microloan/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ApplicationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withSessionAndID(r *http.Request, sessionID, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(r.Context(), auth.SessionIDKey, sessionID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func sampleApplication(state domain.ApplicationState) *domain.Application {
	return &domain.Application{
		ID:        "a-1",
		SessionID: "s-1",
		State:     state,
		Quote: domain.Quote{
			Amount:       25000,
			Days:         15,
			Overpayment:  300,
			Total:        25300,
			DailyPayment: 1687,
		},
		CreatedAt: time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC),
	}
}

func TestCreateApplicationHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Application created",
			body: `{"amount":25000,"days":15}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "s-1", 25000, 15).
					Return(sampleApplication(domain.StateStep1), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"amount":25000,"days":15}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "s-1", 25000, 15).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.SessionIDKey, "s-1"))
			w := httptest.NewRecorder()

			handler.CreateApplication(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.ApplicationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "a-1", body.ID)
				assert.Equal(t, "step1", body.State)
				assert.Equal(t, 25300, body.Quote.Total)
			}
		})
	}
}

func TestGetApplicationHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Application returned",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "s-1", "a-1").
					Return(sampleApplication(domain.StateStep2), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Application not found",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "s-1", "a-1").
					Return(nil, applicationservice.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "s-1", "a-1").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/applications/a-1", nil)
			r = withSessionAndID(r, "s-1", "a-1")
			w := httptest.NewRecorder()

			handler.GetApplication(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateApplicantHandler(t *testing.T) {
	handler, service := NewMock(t)

	fullName := "Иванов Иван Иванович"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Applicant updated",
			body: `{"full_name":"Иванов Иван Иванович"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateApplicant(gomock.Any(), "s-1", "a-1", applicationservice.ApplicantPatch{FullName: &fullName}).
					Return(sampleApplication(domain.StateStep1), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Already submitted",
			body: `{"full_name":"Иванов Иван Иванович"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateApplicant(gomock.Any(), "s-1", "a-1", gomock.Any()).
					Return(nil, applicationservice.ErrAlreadySubmitted)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPatch, "/api/applications/a-1/applicant", bytes.NewBufferString(tt.body))
			r = withSessionAndID(r, "s-1", "a-1")
			w := httptest.NewRecorder()

			handler.UpdateApplicant(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdvanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Moved to the next step",
			prepareMock: func() {
				service.EXPECT().
					Advance(gomock.Any(), "s-1", "a-1").
					Return(sampleApplication(domain.StateStep2), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Step incomplete",
			prepareMock: func() {
				service.EXPECT().
					Advance(gomock.Any(), "s-1", "a-1").
					Return(nil, applicationservice.ErrStepIncomplete)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "No forward transition",
			prepareMock: func() {
				service.EXPECT().
					Advance(gomock.Any(), "s-1", "a-1").
					Return(nil, applicationservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/applications/a-1/advance", nil)
			r = withSessionAndID(r, "s-1", "a-1")
			w := httptest.NewRecorder()

			handler.Advance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestBackHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Moved to the previous step",
			prepareMock: func() {
				service.EXPECT().
					Back(gomock.Any(), "s-1", "a-1").
					Return(sampleApplication(domain.StateStep1), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No backward transition",
			prepareMock: func() {
				service.EXPECT().
					Back(gomock.Any(), "s-1", "a-1").
					Return(nil, applicationservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/applications/a-1/back", nil)
			r = withSessionAndID(r, "s-1", "a-1")
			w := httptest.NewRecorder()

			handler.Back(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Submitted for scoring",
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), "s-1", "a-1").
					Return(sampleApplication(domain.StateProcessing), nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Consent required",
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), "s-1", "a-1").
					Return(nil, applicationservice.ErrConsentRequired)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Not at the final step",
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), "s-1", "a-1").
					Return(nil, applicationservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/applications/a-1/submit", nil)
			r = withSessionAndID(r, "s-1", "a-1")
			w := httptest.NewRecorder()

			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetProcessingHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Steps returned",
			prepareMock: func() {
				service.EXPECT().
					Processing(gomock.Any(), "s-1", "a-1").
					Return([]domain.ProcessingStep{
						{ID: 1, Title: "Проверка данных", Description: "Валидация введенной информации", Status: domain.StepCompleted},
						{ID: 2, Title: "Скоринг", Description: "Анализ кредитной истории", Status: domain.StepProcessing},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Application not submitted yet",
			prepareMock: func() {
				service.EXPECT().
					Processing(gomock.Any(), "s-1", "a-1").
					Return(nil, applicationservice.ErrNotSubmitted)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/applications/a-1/processing", nil)
			r = withSessionAndID(r, "s-1", "a-1")
			w := httptest.NewRecorder()

			handler.GetProcessing(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProcessingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body.Steps, tt.expectedLen)
				assert.Equal(t, "completed", body.Steps[0].Status)
			}
		})
	}
}
