// Package core implements the application service: the collection manager,
// the content mutation orchestrator and the image operations, all working
// against a remote.Repository.
package core

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/service"
)

type AppService struct {
	repo remote.Repository

	now    func() time.Time
	random func() string
}

var _ service.Service = (*AppService)(nil)

func New(repo remote.Repository) *AppService {
	return &AppService{
		repo:   repo,
		now:    time.Now,
		random: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:6] },
	}
}

// target resolves a RepoConfig into a remote target. An unset config is
// ErrNotConfigured; callers on the read side usually short-circuit to an
// empty result before getting here.
func target(cfg domain.RepoConfig) (remote.Target, error) {
	if !cfg.Configured() {
		return remote.Target{}, service.ErrNotConfigured
	}
	t, err := remote.ParseTarget(cfg.Repo, cfg.Branch)
	if err != nil {
		return remote.Target{}, service.ErrNotConfigured
	}
	if t.Branch == "" {
		t.Branch = "main"
	}
	return t, nil
}
