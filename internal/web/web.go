// Package web is the JSON admin surface: auth, repository configuration,
// content reads, and the mutation endpoints. Handlers are thin; everything
// content-shaped goes through the service.
package web

import (
	"net/http"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"

	"gitfolio/internal/ai"
	"gitfolio/internal/config"
	"gitfolio/internal/domain"
	"gitfolio/internal/service"
	"gitfolio/internal/store"
)

type Handler struct {
	Config   *config.Configuration
	service  service.Service
	Sessions store.SessionStore
	Configs  store.ConfigStore
	AI       *ai.Client
	OAuth    *oauth2.Config
}

func New(cfg *config.Configuration, svc service.Service, sessions store.SessionStore, configs store.ConfigStore, aiClient *ai.Client) *Handler {
	return &Handler{
		Config:   cfg,
		service:  svc,
		Sessions: sessions,
		Configs:  configs,
		AI:       aiClient,
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauthgithub.Endpoint,
			RedirectURL:  cfg.BaseURL + "/api/auth/callback",
			Scopes:       []string{"user:email"},
		},
	}
}

// repoConfig returns the stored repository target, falling back to the
// public repo from the environment. Reads against the fallback are what
// let the public site render without anyone logged in.
func (h *Handler) repoConfig(r *http.Request) domain.RepoConfig {
	if cfg, ok := h.Configs.Get(r); ok {
		return cfg
	}
	return domain.RepoConfig{Repo: h.Config.PublicRepo, Branch: h.Config.PublicBranch}
}
