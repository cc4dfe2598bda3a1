package repo

import (
	applicationrepo "github.com/fin5/microloan/internal/repo/application-repo"
	chatrepo "github.com/fin5/microloan/internal/repo/chat-repo"
	profilerepo "github.com/fin5/microloan/internal/repo/profile-repo"
	sessionrepo "github.com/fin5/microloan/internal/repo/session-repo"
	"github.com/fin5/microloan/internal/service/applicationservice"
	"github.com/fin5/microloan/internal/service/chatservice"
	"github.com/fin5/microloan/internal/service/profileservice"
	"github.com/fin5/microloan/internal/service/sessionservice"
)

type Repositories struct {
	SessionRepo     sessionservice.Repo
	ApplicationRepo applicationservice.Repo
	ChatRepo        chatservice.Repo
	ProfileRepo     profileservice.Repo
}

func New() *Repositories {
	sessionRepo := sessionrepo.New()
	applicationRepo := applicationrepo.New()
	chatRepo := chatrepo.New()
	profileRepo := profilerepo.New()

	return &Repositories{
		SessionRepo:     sessionRepo,
		ApplicationRepo: applicationRepo,
		ChatRepo:        chatRepo,
		ProfileRepo:     profileRepo,
	}
}
