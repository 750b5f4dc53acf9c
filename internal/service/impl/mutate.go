package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/repopath"
	"gitfolio/internal/service"
	"gitfolio/internal/validate"
)

func (s *AppService) SaveProfile(ctx context.Context, cfg domain.RepoConfig, p domain.Profile) error {
	t, err := target(cfg)
	if err != nil {
		return err
	}
	return s.write(ctx, t, domain.TypeProfile, "profile", "", encodeProfile(p), p.Name)
}

func (s *AppService) SaveProject(ctx context.Context, cfg domain.RepoConfig, p domain.Project, oldCollection string) error {
	if err := validate.ItemID(p.ID); err != nil {
		return fmt.Errorf("%w: id: %s", service.ErrInvalidInput, err)
	}
	if err := validate.ItemTitle(p.Title); err != nil {
		return fmt.Errorf("%w: title: %s", service.ErrInvalidInput, err)
	}

	t, err := target(cfg)
	if err != nil {
		return err
	}

	s.moveIfNeeded(ctx, t, domain.TypeProject, p.ID, oldCollection, p.Collection)
	return s.write(ctx, t, domain.TypeProject, p.ID, p.Collection, encodeProject(p), p.Title)
}

func (s *AppService) SaveBlog(ctx context.Context, cfg domain.RepoConfig, b domain.BlogPost, oldCollection string) error {
	if err := validate.ItemID(b.ID); err != nil {
		return fmt.Errorf("%w: id: %s", service.ErrInvalidInput, err)
	}
	if err := validate.ItemTitle(b.Title); err != nil {
		return fmt.Errorf("%w: title: %s", service.ErrInvalidInput, err)
	}

	t, err := target(cfg)
	if err != nil {
		return err
	}

	s.moveIfNeeded(ctx, t, domain.TypeBlog, b.ID, oldCollection, b.Collection)
	return s.write(ctx, t, domain.TypeBlog, b.ID, b.Collection, encodeBlog(b), b.Title)
}

// moveIfNeeded deletes the item's previous file when a save moves it to a
// different collection. The store has no rename, so a move is delete plus
// recreate. This phase is best effort: its failure is logged and the save
// proceeds, which can strand the old copy (the documented trade-off of the
// two-phase move).
func (s *AppService) moveIfNeeded(ctx context.Context, t remote.Target, typ domain.ContentType, id, oldCollection, newCollection string) {
	if oldCollection == "" || oldCollection == newCollection {
		return
	}

	oldPath, err := repopath.Resolve(typ, id, oldCollection)
	if err != nil {
		log.Error().Err(err).Msg("move skipped: old path unresolvable")
		return
	}

	sha, err := s.repo.StatFile(ctx, t, oldPath)
	if errors.Is(err, remote.ErrNotFound) {
		return
	}
	if err != nil {
		log.Error().Err(err).Str("path", oldPath).Msg("move skipped: could not stat old file")
		return
	}

	message := fmt.Sprintf("Delete %s: %s", typ, id)
	if err := s.repo.DeleteFile(ctx, t, oldPath, sha, message); err != nil {
		log.Error().Err(err).Str("path", oldPath).Msg("move left the old file behind")
	}
}

// write performs the create-or-update: stat the target to learn whether a
// prior revision exists, then write with or without its SHA. A stat
// failure other than absence is logged and the write proceeds as a create,
// which the upstream API rejects if the file does exist.
func (s *AppService) write(ctx context.Context, t remote.Target, typ domain.ContentType, id, collection, content, title string) error {
	path, err := repopath.Resolve(typ, id, collection)
	if err != nil {
		return err
	}

	sha, err := s.repo.StatFile(ctx, t, path)
	if err != nil && !errors.Is(err, remote.ErrNotFound) {
		log.Error().Err(err).Str("path", path).Msg("could not read current revision, writing as create")
		sha = ""
	}

	verb := "Update"
	if sha == "" {
		verb = "Create"
	}
	label := title
	if label == "" {
		label = id
	}

	_, err = s.repo.WriteFile(ctx, t, path, []byte(content), sha, fmt.Sprintf("%s %s: %s", verb, typ, label))
	return err
}

// DeleteItem requires the item to exist: unlike the lenient move step, an
// absent file is an explicit ErrNotFound.
func (s *AppService) DeleteItem(ctx context.Context, cfg domain.RepoConfig, typ domain.ContentType, id, collection string) error {
	t, err := target(cfg)
	if err != nil {
		return err
	}

	path, err := repopath.Resolve(typ, id, collection)
	if err != nil {
		return err
	}

	sha, err := s.repo.StatFile(ctx, t, path)
	if err != nil {
		return err
	}
	return s.repo.DeleteFile(ctx, t, path, sha, fmt.Sprintf("Delete %s: %s", typ, id))
}
