package chatservice

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatrepo "github.com/fin5/microloan/internal/repo/chat-repo"
)

// fixedPicker always answers with the first canned reply.
type fixedPicker struct{}

func (fixedPicker) Pick(replies []string) string { return replies[0] }

func newService() (*Service, *clock.Mock) {
	clk := clock.NewMock()
	svc := New(chatrepo.New(), clk, fixedPicker{})
	return svc, clk
}

func TestGreet(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.Greet(ctx, "s-1"))

	messages, typing, err := svc.Messages(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, typing)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].FromBot)
	assert.Equal(t, "Здравствуйте! Я помогу вам с оформлением займа. Есть вопросы?", messages[0].Text)
}

func TestSend(t *testing.T) {
	svc, clk := newService()
	ctx := context.Background()

	require.NoError(t, svc.Greet(ctx, "s-1"))

	_, err := svc.Send(ctx, "s-1", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Send(ctx, "unknown", "Привет")
	assert.ErrorIs(t, err, ErrChatNotFound)

	msg, err := svc.Send(ctx, "s-1", "Какие документы нужны?")
	require.NoError(t, err)
	assert.False(t, msg.FromBot)

	_, typing, err := svc.Messages(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, typing)

	// Only one reply may be in flight.
	_, err = svc.Send(ctx, "s-1", "Еще вопрос")
	assert.ErrorIs(t, err, ErrReplyPending)

	clk.Add(1500 * time.Millisecond)

	require.Eventually(t, func() bool {
		messages, typing, err := svc.Messages(ctx, "s-1")
		return err == nil && !typing && len(messages) == 3 && messages[2].FromBot
	}, 2*time.Second, 5*time.Millisecond)

	messages, _, err := svc.Messages(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "Для займа до 50000₽ нужен только паспорт!", messages[2].Text)

	// Once the reply landed the user may write again.
	_, err = svc.Send(ctx, "s-1", "Сколько займет рассмотрение?")
	require.NoError(t, err)
}

func TestReplyArrivesOnlyAfterDelay(t *testing.T) {
	svc, clk := newService()
	ctx := context.Background()

	require.NoError(t, svc.Greet(ctx, "s-1"))
	_, err := svc.Send(ctx, "s-1", "Какая максимальная сумма?")
	require.NoError(t, err)

	clk.Add(1400 * time.Millisecond)

	messages, typing, err := svc.Messages(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, typing)
	assert.Len(t, messages, 2)

	clk.Add(100 * time.Millisecond)

	require.Eventually(t, func() bool {
		messages, typing, err := svc.Messages(ctx, "s-1")
		return err == nil && !typing && len(messages) == 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestQuickQuestions(t *testing.T) {
	svc, _ := newService()

	questions := svc.QuickQuestions()
	require.Len(t, questions, 4)
	assert.Equal(t, "Какие документы нужны?", questions[0])

	// The returned slice is a copy.
	questions[0] = "changed"
	assert.Equal(t, "Какие документы нужны?", svc.QuickQuestions()[0])
}

func TestDiscardSession(t *testing.T) {
	svc, clk := newService()
	ctx := context.Background()

	require.NoError(t, svc.Greet(ctx, "s-1"))
	_, err := svc.Send(ctx, "s-1", "Есть ли скрытые комиссии?")
	require.NoError(t, err)

	require.NoError(t, svc.DiscardSession(ctx, "s-1"))

	_, _, err = svc.Messages(ctx, "s-1")
	assert.ErrorIs(t, err, ErrChatNotFound)

	// The cancelled reply must not recreate the conversation.
	clk.Add(5 * time.Second)
	_, _, err = svc.Messages(ctx, "s-1")
	assert.ErrorIs(t, err, ErrChatNotFound)
}
