package core

import (
	"context"
	"fmt"
	"strings"

	"gitfolio/internal/domain"
	"gitfolio/internal/repopath"
	"gitfolio/internal/service"
)

const maxImageSize = 5 * 1024 * 1024

func (s *AppService) UploadImage(ctx context.Context, cfg domain.RepoConfig, typ domain.ContentType, filename, mimeType string, content []byte) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: file must be an image", service.ErrInvalidInput)
	}
	if len(content) > maxImageSize {
		return "", fmt.Errorf("%w: file size must be less than 5MB", service.ErrInvalidInput)
	}

	t, err := target(cfg)
	if err != nil {
		return "", err
	}

	path, err := repopath.ImagePath(typ, filename, mimeType, s.random(), s.now())
	if err != nil {
		return "", err
	}

	if _, err := s.repo.WriteFile(ctx, t, path, content, "", "Upload image: "+path); err != nil {
		return "", err
	}
	return repopath.RawURL(cfg.Repo, t.Branch, path), nil
}

func (s *AppService) DeleteImage(ctx context.Context, cfg domain.RepoConfig, imageURL string) error {
	path, ok := repopath.ImagePathFromURL(imageURL)
	if !ok {
		return fmt.Errorf("%w: unrecognized image url", service.ErrInvalidInput)
	}

	t, err := target(cfg)
	if err != nil {
		return err
	}

	sha, err := s.repo.StatFile(ctx, t, path)
	if err != nil {
		return err
	}
	return s.repo.DeleteFile(ctx, t, path, sha, "Delete image: "+path)
}
