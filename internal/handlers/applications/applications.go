package applications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	applicationservice "github.com/fin5/microloan/internal/service/applicationservice"
	"github.com/fin5/microloan/pkg/auth"
	"github.com/fin5/microloan/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, sessionID string, amount, days int) (*domain.Application, error)
	Get(ctx context.Context, sessionID, id string) (*domain.Application, error)
	UpdateApplicant(ctx context.Context, sessionID, id string, patch applicationservice.ApplicantPatch) (*domain.Application, error)
	Advance(ctx context.Context, sessionID, id string) (*domain.Application, error)
	Back(ctx context.Context, sessionID, id string) (*domain.Application, error)
	Submit(ctx context.Context, sessionID, id string) (*domain.Application, error)
	Processing(ctx context.Context, sessionID, id string) ([]domain.ProcessingStep, error)
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// CreateApplication godoc
//
//	@Summary		Start a loan application
//	@Description	Open a new application at the first collection step with the chosen terms
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateApplicationRequestDTO	true	"Loan terms"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ApplicationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications [post]
func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)

	var req dto.CreateApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := h.applicationService.Create(r.Context(), sessionID, req.Amount, req.Days)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toApplicationDTO(app))
}

// GetApplication godoc
//
//	@Summary		Get an application
//	@Description	Current workflow state, applicant data, quote and fill progress
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	string	true	"Application ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, sessionID, id string) (*domain.Application, error) {
		return h.applicationService.Get(ctx, sessionID, id)
	}, http.StatusOK)
}

// UpdateApplicant godoc
//
//	@Summary		Update applicant data
//	@Description	Merge a partial applicant update into the application; rejected once submitted
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Application ID"
//	@Param			request	body	dto.ApplicantPatchDTO	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"Application already submitted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplicant(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)
	id := chi.URLParam(r, "id")

	var req dto.ApplicantPatchDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := h.applicationService.UpdateApplicant(r.Context(), sessionID, id, applicationservice.ApplicantPatch{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		Passport:  req.Passport,
		Income:    req.Income,
		Workplace: req.Workplace,
		Purpose:   req.Purpose,
		Consent:   req.Consent,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toApplicationDTO(app))
}

// Advance godoc
//
//	@Summary		Advance the workflow
//	@Description	Move one collection step forward after validating the current step's fields
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	string	true	"Application ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"No forward transition from this state"
//	@Failure		422	{object}	utils.Response	"Step is incomplete"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/advance [post]
func (h *ApplicationHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.applicationService.Advance, http.StatusOK)
}

// Back godoc
//
//	@Summary		Step back in the workflow
//	@Description	Move one collection step backward; collected data is kept
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	string	true	"Application ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"No backward transition from this state"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/back [post]
func (h *ApplicationHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.applicationService.Back, http.StatusOK)
}

// Submit godoc
//
//	@Summary		Submit the application
//	@Description	Validate the final step, hand the payload off and start the scoring run
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	string	true	"Application ID"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"Not at the final step"
//	@Failure		422	{object}	utils.Response	"Consent required or step incomplete"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/submit [post]
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.applicationService.Submit, http.StatusAccepted)
}

// GetProcessing godoc
//
//	@Summary		Scoring run status
//	@Description	Ordered processing steps with their statuses
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path	string	true	"Application ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProcessingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"Application not submitted yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{id}/processing [get]
func (h *ApplicationHandler) GetProcessing(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)
	id := chi.URLParam(r, "id")

	steps, err := h.applicationService.Processing(r.Context(), sessionID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := dto.ProcessingResponseDTO{Steps: make([]dto.ProcessingStepDTO, 0, len(steps))}
	for _, step := range steps {
		resp.Steps = append(resp.Steps, dto.ProcessingStepDTO{
			ID:          step.ID,
			Title:       step.Title,
			Description: step.Description,
			Status:      string(step.Status),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ApplicationHandler) respond(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, sessionID, id string) (*domain.Application, error), code int) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)
	id := chi.URLParam(r, "id")

	app, err := op(r.Context(), sessionID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, code, toApplicationDTO(app))
}

func (h *ApplicationHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, applicationservice.ErrApplicationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, applicationservice.ErrStepIncomplete),
		errors.Is(err, applicationservice.ErrConsentRequired):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, applicationservice.ErrInvalidTransition),
		errors.Is(err, applicationservice.ErrAlreadySubmitted),
		errors.Is(err, applicationservice.ErrNotSubmitted):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toApplicationDTO(app *domain.Application) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:       app.ID,
		State:    string(app.State),
		Progress: app.Applicant.FillProgress(),
		Applicant: dto.ApplicantDTO{
			FullName:  app.Applicant.FullName,
			Phone:     app.Applicant.Phone,
			Email:     app.Applicant.Email,
			Passport:  app.Applicant.Passport,
			Income:    app.Applicant.Income,
			Workplace: app.Applicant.Workplace,
			Purpose:   app.Applicant.Purpose,
			Consent:   app.Applicant.Consent,
		},
		Quote: dto.QuoteResponseDTO{
			Amount:       app.Quote.Amount,
			Days:         app.Quote.Days,
			Overpayment:  app.Quote.Overpayment,
			Total:        app.Quote.Total,
			DailyPayment: app.Quote.DailyPayment,
		},
		RejectReason: app.RejectReason,
		CreatedAt:    app.CreatedAt.Format(time.RFC3339),
	}
}
