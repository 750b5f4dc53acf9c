package core

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/repopath"
)

func (s *AppService) Profile(ctx context.Context, cfg domain.RepoConfig) (*domain.Profile, error) {
	if !cfg.Configured() {
		return nil, nil
	}
	t, err := target(cfg)
	if err != nil {
		return nil, err
	}

	content, err := s.repo.ReadFile(ctx, t, repopath.ProfilePath)
	if errors.Is(err, remote.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	profile := decodeProfile(string(content))
	return &profile, nil
}

func (s *AppService) Projects(ctx context.Context, cfg domain.RepoConfig) ([]domain.Project, error) {
	items, err := listSection(ctx, s, cfg, domain.TypeProject, decodeProject)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return parseWhen(items[i].CreatedAt).After(parseWhen(items[j].CreatedAt))
	})
	return items, nil
}

func (s *AppService) Blogs(ctx context.Context, cfg domain.RepoConfig) ([]domain.BlogPost, error) {
	items, err := listSection(ctx, s, cfg, domain.TypeBlog, decodeBlog)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return parseWhen(items[i].PublishedAt).After(parseWhen(items[j].PublishedAt))
	})
	return items, nil
}

// listSection walks one type's tree: the root listing, then every
// collection directory, then every markdown file. The per-collection and
// per-file fetches are independent and fan out concurrently; an individual
// file that fails to fetch is skipped, not fatal. Root files whose id also
// exists in some collection are shadowed by the collection copy.
func listSection[T any](ctx context.Context, s *AppService, cfg domain.RepoConfig, typ domain.ContentType, decode func(id, collection, text string) T) ([]T, error) {
	if !cfg.Configured() {
		return []T{}, nil
	}
	t, err := target(cfg)
	if err != nil {
		return nil, err
	}

	root, err := repopath.SectionRoot(typ)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListDirectory(ctx, t, root)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var collected []T
	inCollections := map[string]bool{}

	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		if entry.Kind != remote.KindDir {
			continue
		}
		g.Go(func() error {
			files, err := s.repo.ListDirectory(gctx, t, entry.Path)
			if err != nil {
				log.Error().Err(err).Str("collection", entry.Name).Msg("skipping unlistable collection")
				return nil
			}

			fg, fctx := errgroup.WithContext(gctx)
			for _, file := range files {
				if !isItemFile(file) {
					continue
				}
				fg.Go(func() error {
					content, err := s.repo.ReadFile(fctx, t, file.Path)
					if err != nil {
						log.Error().Err(err).Str("path", file.Path).Msg("skipping unreadable item")
						return nil
					}
					item := decode(itemID(file.Name), entry.Name, string(content))
					mu.Lock()
					collected = append(collected, item)
					inCollections[itemID(file.Name)] = true
					mu.Unlock()
					return nil
				})
			}
			return fg.Wait()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	g, gctx = errgroup.WithContext(ctx)
	for _, entry := range entries {
		if entry.Kind != remote.KindFile || !isItemFile(entry) {
			continue
		}
		if inCollections[itemID(entry.Name)] {
			continue
		}
		g.Go(func() error {
			content, err := s.repo.ReadFile(gctx, t, entry.Path)
			if err != nil {
				log.Error().Err(err).Str("path", entry.Path).Msg("skipping unreadable item")
				return nil
			}
			item := decode(itemID(entry.Name), "", string(content))
			mu.Lock()
			collected = append(collected, item)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if collected == nil {
		collected = []T{}
	}
	return collected, nil
}

func isItemFile(e remote.Entry) bool {
	return e.Kind == remote.KindFile &&
		strings.HasSuffix(e.Name, ".md") &&
		e.Name != repopath.MarkerFile
}

func itemID(filename string) string {
	return strings.TrimSuffix(filename, ".md")
}

// parseWhen accepts the two timestamp shapes the content carries, full
// RFC 3339 and bare dates. Anything else sorts last.
func parseWhen(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
