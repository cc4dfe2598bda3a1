package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	chatservice "github.com/fin5/microloan/internal/service/chatservice"
	"github.com/fin5/microloan/pkg/auth"
	"github.com/fin5/microloan/pkg/utils"
)

type Service interface {
	Send(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error)
	Messages(ctx context.Context, sessionID string) ([]domain.ChatMessage, bool, error)
	QuickQuestions() []string
}

type ChatHandler struct {
	chatService Service
}

func New(chatService Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// SendMessage godoc
//
//	@Summary		Send a chat message
//	@Description	Append the visitor's message; the assistant replies after a short typing delay
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SendMessageRequestDTO	true	"Message text"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.ChatMessageDTO
//	@Failure		400	{object}	utils.Response	"Empty message"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Chat session not found"
//	@Failure		409	{object}	utils.Response	"Reply already pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/chat/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)

	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.chatService.Send(r.Context(), sessionID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, chatservice.ErrEmptyMessage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, chatservice.ErrReplyPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, chatservice.ErrChatNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toMessageDTO(*msg))
}

// GetMessages godoc
//
//	@Summary		Chat history
//	@Description	Ordered session messages and whether the assistant is typing
//	@Tags			Chat
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ChatHistoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Chat session not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/chat/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Context().Value(auth.SessionIDKey).(string)

	messages, typing, err := h.chatService.Messages(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, chatservice.ErrChatNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.ChatHistoryResponseDTO{
		Messages: make([]dto.ChatMessageDTO, 0, len(messages)),
		Typing:   typing,
	}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, toMessageDTO(msg))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetQuickQuestions godoc
//
//	@Summary		Quick questions
//	@Description	Shortcut questions shown under the chat input
//	@Tags			Chat
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.QuickQuestionsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/chat/questions [get]
func (h *ChatHandler) GetQuickQuestions(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.QuickQuestionsResponseDTO{
		Questions: h.chatService.QuickQuestions(),
	})
}

func toMessageDTO(msg domain.ChatMessage) dto.ChatMessageDTO {
	return dto.ChatMessageDTO{
		ID:        msg.ID,
		Text:      msg.Text,
		IsBot:     msg.FromBot,
		Timestamp: msg.SentAt.Format(time.RFC3339),
	}
}
