package chatservice

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fin5/microloan/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, sessionID string) error
	Append(ctx context.Context, sessionID string, msg domain.ChatMessage) error
	Messages(ctx context.Context, sessionID string) ([]domain.ChatMessage, bool, error)
	StartTyping(ctx context.Context, sessionID string) (bool, error)
	StopTyping(ctx context.Context, sessionID string) error
	Delete(ctx context.Context, sessionID string) error
}

// ReplyPicker selects the bot's answer. Production picks uniformly at random;
// tests substitute a deterministic picker.
type ReplyPicker interface {
	Pick(replies []string) string
}

var (
	ErrEmptyMessage = errors.New("message text is empty")
	ErrReplyPending = errors.New("bot reply is already pending")
	ErrChatNotFound = errors.New("chat session not found")
)

const replyDelay = 1500 * time.Millisecond

const greeting = "Здравствуйте! Я помогу вам с оформлением займа. Есть вопросы?"

var botReplies = []string{
	"Для займа до 50000₽ нужен только паспорт!",
	"Рассмотрение займа занимает до 10 минут",
	"Ставка 0.08% в день - одна из самых низких на рынке",
	"Первый займ для новых клиентов под 0%!",
	"Деньги поступят на карту в течение 15 минут",
}

var quickQuestions = []string{
	"Какие документы нужны?",
	"Сколько займет рассмотрение?",
	"Какая максимальная сумма?",
	"Есть ли скрытые комиссии?",
}

type RandomPicker struct {
	rng *rand.Rand
}

func NewRandomPicker() *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomPicker) Pick(replies []string) string {
	return replies[p.rng.Intn(len(replies))]
}

type Service struct {
	repo   Repo
	clk    clock.Clock
	picker ReplyPicker

	mu      sync.Mutex
	pending map[string]context.CancelFunc
}

func New(repo Repo, clk clock.Clock, picker ReplyPicker) *Service {
	return &Service{
		repo:    repo,
		clk:     clk,
		picker:  picker,
		pending: make(map[string]context.CancelFunc),
	}
}

// Greet opens the session's conversation with the assistant's first message.
func (s *Service) Greet(ctx context.Context, sessionID string) error {
	if err := s.repo.Create(ctx, sessionID); err != nil {
		return err
	}
	return s.repo.Append(ctx, sessionID, domain.ChatMessage{
		ID:      uuid.NewString(),
		Text:    greeting,
		FromBot: true,
		SentAt:  s.clk.Now(),
	})
}

// Send appends the user's message and schedules one canned reply after the
// typing delay. Blank text is rejected; so is a send while a reply is still
// pending, which keeps at most one reply in flight.
func (s *Service) Send(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	ok, err := s.repo.StartTyping(ctx, sessionID)
	if err != nil {
		return nil, ErrChatNotFound
	}
	if !ok {
		return nil, ErrReplyPending
	}

	msg := domain.ChatMessage{
		ID:      uuid.NewString(),
		Text:    text,
		FromBot: false,
		SentAt:  s.clk.Now(),
	}
	if err := s.repo.Append(ctx, sessionID, msg); err != nil {
		s.repo.StopTyping(ctx, sessionID)
		return nil, err
	}

	s.scheduleReply(sessionID)

	return &msg, nil
}

func (s *Service) Messages(ctx context.Context, sessionID string) ([]domain.ChatMessage, bool, error) {
	messages, typing, err := s.repo.Messages(ctx, sessionID)
	if err != nil {
		return nil, false, ErrChatNotFound
	}
	return messages, typing, nil
}

// QuickQuestions returns the shortcut questions shown under the input. They
// go through Send like any other message.
func (s *Service) QuickQuestions() []string {
	questions := make([]string, len(quickQuestions))
	copy(questions, quickQuestions)
	return questions
}

// DiscardSession cancels a pending reply and drops the conversation.
func (s *Service) DiscardSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	if cancel, ok := s.pending[sessionID]; ok {
		cancel()
		delete(s.pending, sessionID)
	}
	s.mu.Unlock()

	return s.repo.Delete(ctx, sessionID)
}

func (s *Service) scheduleReply(sessionID string) {
	replyCtx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.pending[sessionID] = cancel
	s.mu.Unlock()

	timer := s.clk.Timer(replyDelay)
	go func() {
		defer func() {
			s.mu.Lock()
			if c, ok := s.pending[sessionID]; ok {
				c()
				delete(s.pending, sessionID)
			}
			s.mu.Unlock()
		}()

		select {
		case <-replyCtx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		reply := domain.ChatMessage{
			ID:      uuid.NewString(),
			Text:    s.picker.Pick(botReplies),
			FromBot: true,
			SentAt:  s.clk.Now(),
		}
		if err := s.repo.Append(replyCtx, sessionID, reply); err != nil {
			zap.L().Error("can't append bot reply", zap.String("session_id", sessionID), zap.Error(err))
		}
		if err := s.repo.StopTyping(replyCtx, sessionID); err != nil {
			zap.L().Error("can't clear typing flag", zap.String("session_id", sessionID), zap.Error(err))
		}
	}()
}
