package session

import (
	"context"
	"net/http"
	"time"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	"github.com/fin5/microloan/pkg/auth"
	"github.com/fin5/microloan/pkg/utils"
)

type Service interface {
	Create(ctx context.Context) (*domain.Session, string, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) bool
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Create godoc
//
//	@Summary		Open a page session
//	@Description	Create a server-side session for one page load and get its bearer token
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	dto.CreateSessionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, token, err := h.sessionService.Create(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating session")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateSessionResponseDTO{
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// Delete godoc
//
//	@Summary		Close the session
//	@Description	Discard all session state and cancel scheduled work
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session [delete]
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)

	if err := h.sessionService.Delete(r.Context(), sessionID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error closing session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Session closed"})
}
