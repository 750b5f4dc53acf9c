package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/service"
)

// Repositories lists the admin's own repositories for the importer. Forks
// are filtered out; nobody showcases those.
func (s *AppService) Repositories(ctx context.Context) ([]domain.RepositorySummary, error) {
	listed, err := s.repo.ListUserRepositories(ctx)
	if err != nil {
		return nil, err
	}

	repos := make([]domain.RepositorySummary, 0, len(listed))
	for _, r := range listed {
		if r.Fork {
			continue
		}
		repos = append(repos, domain.RepositorySummary{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			URL:         r.HTMLURL,
			Homepage:    r.Homepage,
			Private:     r.Private,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return repos, nil
}

// ImportProject drafts a project from a repository: metadata, README and
// languages are fetched concurrently. The metadata is required; a missing
// README or an unlistable language set degrade to empty values, as the
// draft is editable anyway.
func (s *AppService) ImportProject(ctx context.Context, owner, name string) (domain.Project, error) {
	if owner == "" || name == "" {
		return domain.Project{}, fmt.Errorf("%w: owner and repository are required", service.ErrInvalidInput)
	}

	var details remote.RepoDetails
	var readme string
	var languages []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = s.repo.GetRepositoryDetails(gctx, owner, name)
		return err
	})
	g.Go(func() error {
		content, err := s.repo.GetReadme(gctx, owner, name)
		if err != nil {
			if !errors.Is(err, remote.ErrNotFound) {
				log.Error().Err(err).Str("repo", owner+"/"+name).Msg("readme unavailable, importing without it")
			}
			return nil
		}
		readme = content
		return nil
	})
	g.Go(func() error {
		listed, err := s.repo.ListLanguages(gctx, owner, name)
		if err != nil {
			log.Error().Err(err).Str("repo", owner+"/"+name).Msg("languages unavailable, importing without them")
			return nil
		}
		languages = listed
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Project{}, err
	}

	return domain.Project{
		ID:          fmt.Sprintf("project-%d", s.now().UnixMilli()),
		Title:       details.Name,
		Description: details.Description,
		Content:     readme,
		Tags:        mergeTags(languages, details.Topics),
		Link:        details.Homepage,
		GitHub:      details.HTMLURL,
		CreatedAt:   details.CreatedAt,
	}, nil
}

// mergeTags unions languages and topics, first occurrence wins.
func mergeTags(languages, topics []string) []string {
	seen := map[string]bool{}
	tags := make([]string, 0, len(languages)+len(topics))
	for _, tag := range append(append([]string{}, languages...), topics...) {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
