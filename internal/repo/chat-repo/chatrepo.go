package chatrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/fin5/microloan/internal/domain"
)

var ErrUnknownSession = errors.New("unknown chat session")

type conversation struct {
	messages []domain.ChatMessage
	typing   bool
}

// Repository keeps per-session chat history in memory. A conversation exists
// from session creation (greeting) until the session is discarded.
type Repository struct {
	mu            sync.Mutex
	conversations map[string]*conversation
}

func New() *Repository {
	return &Repository{
		conversations: make(map[string]*conversation),
	}
}

func (r *Repository) Create(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conversations[sessionID]; !ok {
		r.conversations[sessionID] = &conversation{}
	}
	return nil
}

func (r *Repository) Append(ctx context.Context, sessionID string, msg domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.conversations[sessionID]
	if !ok {
		return ErrUnknownSession
	}
	conv.messages = append(conv.messages, msg)
	return nil
}

func (r *Repository) Messages(ctx context.Context, sessionID string) ([]domain.ChatMessage, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.conversations[sessionID]
	if !ok {
		return nil, false, ErrUnknownSession
	}
	messages := make([]domain.ChatMessage, len(conv.messages))
	copy(messages, conv.messages)
	return messages, conv.typing, nil
}

// StartTyping marks the bot as replying. Returns false when a reply is
// already pending, which keeps at most one reply in flight per session.
func (r *Repository) StartTyping(ctx context.Context, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.conversations[sessionID]
	if !ok {
		return false, ErrUnknownSession
	}
	if conv.typing {
		return false, nil
	}
	conv.typing = true
	return true, nil
}

func (r *Repository) StopTyping(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.conversations[sessionID]
	if !ok {
		return ErrUnknownSession
	}
	conv.typing = false
	return nil
}

func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conversations, sessionID)
	return nil
}
