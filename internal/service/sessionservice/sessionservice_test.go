package sessionservice

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatrepo "github.com/fin5/microloan/internal/repo/chat-repo"
	sessionrepo "github.com/fin5/microloan/internal/repo/session-repo"
	chatservice "github.com/fin5/microloan/internal/service/chatservice"
	"github.com/fin5/microloan/pkg/auth"
)

func newService() (*Service, *sessionrepo.Repository, *chatservice.Service, *clock.Mock) {
	clk := clock.NewMock()
	clk.Set(time.Now())

	repo := sessionrepo.New()
	chatSvc := chatservice.New(chatrepo.New(), clk, chatservice.NewRandomPicker())
	svc := New(repo, &auth.JWTService{}, chatSvc, time.Hour, clk, chatSvc)
	return svc, repo, chatSvc, clk
}

func TestCreate(t *testing.T) {
	svc, _, chatSvc, clk := newService()
	ctx := context.Background()

	session, token, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, clk.Now().Add(time.Hour), session.ExpiresAt)

	claims, err := (&auth.JWTService{}).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, claims.SessionID)

	// A fresh session already carries the assistant's greeting.
	messages, _, err := chatSvc.Messages(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].FromBot)
}

func TestExists(t *testing.T) {
	svc, _, _, clk := newService()
	ctx := context.Background()

	session, _, err := svc.Create(ctx)
	require.NoError(t, err)

	assert.True(t, svc.Exists(ctx, session.ID))
	assert.False(t, svc.Exists(ctx, "unknown"))

	clk.Add(time.Hour + time.Second)
	assert.False(t, svc.Exists(ctx, session.ID))
}

func TestDelete(t *testing.T) {
	svc, _, chatSvc, _ := newService()
	ctx := context.Background()

	session, _, err := svc.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, session.ID))
	assert.False(t, svc.Exists(ctx, session.ID))

	// The cleaners dropped the session's conversation too.
	_, _, err = chatSvc.Messages(ctx, session.ID)
	assert.ErrorIs(t, err, chatservice.ErrChatNotFound)
}

func TestJanitorEvictsExpired(t *testing.T) {
	svc, repo, _, clk := newService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Start(ctx)

	session, _, err := svc.Create(ctx)
	require.NoError(t, err)

	clk.Add(2 * time.Hour)

	require.Eventually(t, func() bool {
		clk.Add(janitorInterval)
		found, err := repo.FindByID(context.Background(), session.ID)
		return err == nil && found == nil
	}, 2*time.Second, 5*time.Millisecond)
}
