package core

import (
	"context"
	"errors"
	"fmt"

	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/service"
)

// CreateRepository bootstraps a content repository. auto_init gives it an
// initial commit, so the default branch exists and content writes work
// immediately.
func (s *AppService) CreateRepository(ctx context.Context, name, description string, private bool) (domain.RepoConfig, error) {
	if name == "" {
		return domain.RepoConfig{}, fmt.Errorf("%w: repository name is required", service.ErrInvalidInput)
	}
	if description == "" {
		description = "Personal website content - Managed by gitfolio"
	}

	info, err := s.repo.CreateRepository(ctx, name, description, private)
	if err != nil {
		return domain.RepoConfig{}, err
	}

	branch := info.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	return domain.RepoConfig{Repo: info.FullName, Branch: branch}, nil
}

func (s *AppService) CheckRepository(ctx context.Context, owner, name string) (domain.RepoConfig, bool, error) {
	info, err := s.repo.GetRepository(ctx, owner, name)
	if errors.Is(err, remote.ErrNotFound) {
		return domain.RepoConfig{}, false, nil
	}
	if err != nil {
		return domain.RepoConfig{}, false, err
	}

	branch := info.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	return domain.RepoConfig{Repo: info.FullName, Branch: branch}, true, nil
}
