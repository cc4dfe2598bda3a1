package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	profileservice "github.com/fin5/microloan/internal/service/profileservice"
	"github.com/fin5/microloan/pkg/auth"
	"github.com/fin5/microloan/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, sessionID, phone string) (*domain.UserProfile, error)
	Get(ctx context.Context, sessionID string) (*domain.UserProfile, error)
	Logout(ctx context.Context, sessionID string) error
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Login godoc
//
//	@Summary		Log into the personal account
//	@Description	Bind a demo profile with loan history to the current session
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.LoginRequestDTO	true	"Phone number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		400	{object}	utils.Response	"Phone is required"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/profile/login [post]
func (h *ProfileHandler) Login(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)

	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.Login(r.Context(), sessionID, req.Phone)
	if err != nil {
		if errors.Is(err, profileservice.ErrPhoneRequired) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(profile))
}

// GetProfile godoc
//
//	@Summary		Personal account data
//	@Description	Profile and loan history for the logged-in session
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Not logged in"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)

	profile, err := h.profileService.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, profileservice.ErrNotLoggedIn) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(profile))
}

// Logout godoc
//
//	@Summary		Log out of the personal account
//	@Description	Detach the profile from the session; repeated calls succeed
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/profile/logout [post]
func (h *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)

	if err := h.profileService.Logout(r.Context(), sessionID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}

func toProfileDTO(profile *domain.UserProfile) dto.ProfileResponseDTO {
	resp := dto.ProfileResponseDTO{
		Phone:        profile.Phone,
		Name:         profile.Name,
		Applications: make([]dto.LoanRecordDTO, 0, len(profile.Applications)),
	}
	for _, rec := range profile.Applications {
		resp.Applications = append(resp.Applications, dto.LoanRecordDTO{
			ID:         rec.ID,
			Amount:     rec.Amount,
			Status:     rec.Status,
			StatusText: rec.DisplayStatus(),
			Date:       rec.Date,
		})
	}
	return resp
}
