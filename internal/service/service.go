// Package service declares the application operations behind the admin
// surface. The implementation lives in service/impl so handlers and tests
// depend only on this interface.
package service

import (
	"context"
	"errors"

	"gitfolio/internal/domain"
)

var (
	// ErrInvalidInput marks a mutation request missing required fields or
	// carrying an unusable value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotConfigured means no repository target is set; reads return
	// empty instead, but mutations fail with this.
	ErrNotConfigured = errors.New("repository not configured")
	// ErrDisabled marks an optional feature whose credential is absent.
	ErrDisabled = errors.New("feature disabled")
)

// DeleteReport is the per-file outcome of a cascading collection delete.
// The operation as a whole does not fail on partial failure; callers
// inspect Failed to decide what partial deletion means for them.
type DeleteReport struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

func (r DeleteReport) Partial() bool {
	return len(r.Failed) > 0
}

type Service interface {
	// Profile returns the stored profile, or nil when the repository has
	// none (or none is configured).
	Profile(ctx context.Context, cfg domain.RepoConfig) (*domain.Profile, error)
	SaveProfile(ctx context.Context, cfg domain.RepoConfig, p domain.Profile) error

	// Projects and Blogs list every item of the type: all collections
	// plus uncollected root files, newest first.
	Projects(ctx context.Context, cfg domain.RepoConfig) ([]domain.Project, error)
	Blogs(ctx context.Context, cfg domain.RepoConfig) ([]domain.BlogPost, error)

	// SaveProject/SaveBlog create or update an item. A non-empty
	// oldCollection differing from the item's current collection makes
	// this a move: the old file is deleted best effort before the write.
	SaveProject(ctx context.Context, cfg domain.RepoConfig, p domain.Project, oldCollection string) error
	SaveBlog(ctx context.Context, cfg domain.RepoConfig, b domain.BlogPost, oldCollection string) error

	// DeleteItem removes an item; remote.ErrNotFound when it is absent.
	DeleteItem(ctx context.Context, cfg domain.RepoConfig, t domain.ContentType, id, collection string) error

	Collections(ctx context.Context, cfg domain.RepoConfig, t domain.ContentType) ([]domain.Collection, error)
	CreateCollection(ctx context.Context, cfg domain.RepoConfig, t domain.ContentType, id, name, description string) error
	DeleteCollection(ctx context.Context, cfg domain.RepoConfig, t domain.ContentType, id string) (DeleteReport, error)

	// UploadImage stores an image under images/{type}/ and returns its
	// public URL. DeleteImage accepts that URL back.
	UploadImage(ctx context.Context, cfg domain.RepoConfig, t domain.ContentType, filename, mimeType string, content []byte) (string, error)
	DeleteImage(ctx context.Context, cfg domain.RepoConfig, imageURL string) error

	// CreateRepository bootstraps a new content repository and returns the
	// config pointing at it.
	CreateRepository(ctx context.Context, name, description string, private bool) (domain.RepoConfig, error)
	// CheckRepository reports whether owner/name exists upstream.
	CheckRepository(ctx context.Context, owner, name string) (domain.RepoConfig, bool, error)

	// Repositories lists the authenticated user's own repositories, forks
	// excluded, for the project importer.
	Repositories(ctx context.Context) ([]domain.RepositorySummary, error)
	// ImportProject drafts a project from a repository's metadata, README
	// and languages; remote.ErrNotFound when the repository is absent.
	ImportProject(ctx context.Context, owner, name string) (domain.Project, error)
}
