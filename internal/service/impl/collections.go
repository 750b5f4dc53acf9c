package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/repopath"
	"gitfolio/internal/service"
	"gitfolio/internal/validate"
)

// Collections lists the type's sub-directories. Each directory's marker
// file is read concurrently; a missing or unreadable marker is non-fatal
// and the directory name stands in for the display name.
func (s *AppService) Collections(ctx context.Context, cfg domain.RepoConfig, typ domain.ContentType) ([]domain.Collection, error) {
	if !cfg.Configured() {
		return []domain.Collection{}, nil
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

	var dirs []remote.Entry
	for _, e := range entries {
		if e.Kind == remote.KindDir {
			dirs = append(dirs, e)
		}
	}

	collections := make([]domain.Collection, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		g.Go(func() error {
			marker, err := repopath.MarkerPath(typ, dir.Name)
			if err != nil {
				return err
			}
			content, err := s.repo.ReadFile(gctx, t, marker)
			if err != nil {
				if !errors.Is(err, remote.ErrNotFound) {
					log.Error().Err(err).Str("collection", dir.Name).Msg("marker unreadable, using directory name")
				}
				collections[i] = domain.Collection{ID: dir.Name, Name: dir.Name}
				return nil
			}
			collections[i] = decodeCollectionMarker(dir.Name, string(content))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collections, nil
}

// CreateCollection materialises the directory by writing its marker file;
// there is no other representation of an empty collection. Re-creating an
// existing id overwrites the marker, it is not rejected.
func (s *AppService) CreateCollection(ctx context.Context, cfg domain.RepoConfig, typ domain.ContentType, id, name, description string) error {
	if err := validate.CollectionID(id); err != nil {
		return fmt.Errorf("%w: id: %s", service.ErrInvalidInput, err)
	}
	if err := validate.CollectionName(name); err != nil {
		return fmt.Errorf("%w: name: %s", service.ErrInvalidInput, err)
	}

	t, err := target(cfg)
	if err != nil {
		return err
	}

	marker, err := repopath.MarkerPath(typ, id)
	if err != nil {
		return err
	}

	sha, err := s.repo.StatFile(ctx, t, marker)
	if err != nil && !errors.Is(err, remote.ErrNotFound) {
		return err
	}

	_, err = s.repo.WriteFile(ctx, t, marker,
		[]byte(encodeCollectionMarker(name, description)), sha,
		fmt.Sprintf("Create collection: %s", name))
	return err
}

// DeleteCollection removes every file under the collection directory,
// marker included, fanning the deletes out concurrently. Individual
// failures do not abort the rest; the report carries both lists so the
// caller can tell a full deletion from a partial one.
func (s *AppService) DeleteCollection(ctx context.Context, cfg domain.RepoConfig, typ domain.ContentType, id string) (service.DeleteReport, error) {
	var report service.DeleteReport

	t, err := target(cfg)
	if err != nil {
		return report, err
	}

	dir, err := repopath.CollectionDir(typ, id)
	if err != nil {
		return report, err
	}

	files, err := s.repo.ListDirectory(ctx, t, dir)
	if err != nil {
		return report, err
	}
	// The directory only exists through its files, so an empty listing
	// means the collection does not exist.
	if len(files) == 0 {
		return report, remote.ErrNotFound
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, file := range files {
		if file.Kind != remote.KindFile {
			continue
		}
		g.Go(func() error {
			message := fmt.Sprintf("Delete collection: %s", id)
			err := s.repo.DeleteFile(gctx, t, file.Path, file.SHA, message)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error().Err(err).Str("path", file.Path).Msg("collection delete left a file behind")
				report.Failed = append(report.Failed, file.Path)
			} else {
				report.Succeeded = append(report.Succeeded, file.Path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, nil
}
