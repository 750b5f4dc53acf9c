// Package remote defines the contract for the version-control hosting API
// that acts as the content datastore. The interface is deliberately file
// oriented: directories exist only as path prefixes, and conditional writes
// and deletes are mediated by an opaque revision SHA.
package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// UpstreamError carries a non-2xx status from the hosting API together with
// whatever message text the API returned.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream error: status %d", e.Status)
	}
	return fmt.Sprintf("upstream error: status %d: %s", e.Status, e.Message)
}

// Target identifies the repository and branch an operation acts on.
type Target struct {
	Owner  string
	Repo   string
	Branch string
}

// ParseTarget splits an "owner/name" repository identifier.
func ParseTarget(repo, branch string) (Target, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return Target{}, fmt.Errorf("malformed repository identifier %q", repo)
	}
	return Target{Owner: owner, Repo: name, Branch: branch}, nil
}

type EntryKind string

const (
	KindFile EntryKind = "file"
	KindDir  EntryKind = "dir"
)

// Entry is one element of a directory listing.
type Entry struct {
	Name string
	Path string
	Kind EntryKind
	SHA  string
}

// RepoInfo describes a repository, as returned by creation and lookup.
type RepoInfo struct {
	FullName      string
	DefaultBranch string
	Private       bool
}

// RepoSummary is one element of the authenticated user's repository
// listing.
type RepoSummary struct {
	Name        string
	FullName    string
	Description string
	Language    string
	Stars       int
	Forks       int
	Homepage    string
	HTMLURL     string
	Private     bool
	Fork        bool
	CreatedAt   string
	UpdatedAt   string
}

// RepoDetails carries the metadata the project importer draws on.
type RepoDetails struct {
	Name        string
	Description string
	Homepage    string
	HTMLURL     string
	CreatedAt   string
	Topics      []string
}

// Repository wraps the hosting API's contents operations. Absence of a
// directory is normal (empty listing), absence of a file is ErrNotFound,
// and every other non-2xx response surfaces as an UpstreamError.
type Repository interface {
	// ListDirectory lists the entries under path. A missing directory
	// yields an empty slice and a nil error.
	ListDirectory(ctx context.Context, t Target, path string) ([]Entry, error)

	// ReadFile returns the raw content of the file at path.
	ReadFile(ctx context.Context, t Target, path string) ([]byte, error)

	// StatFile returns the current revision SHA of the file at path,
	// which callers need for conditional updates and deletes.
	StatFile(ctx context.Context, t Target, path string) (string, error)

	// WriteFile creates or updates the file at path. A non-empty sha makes
	// the write a conditional update; an empty sha is a create. Both go
	// through the same endpoint upstream. The new revision SHA is returned.
	WriteFile(ctx context.Context, t Target, path string, content []byte, sha, message string) (string, error)

	// DeleteFile removes the file at path. The caller must supply the
	// revision SHA it read beforehand; deleting an already-absent file is
	// an upstream error, not a no-op.
	DeleteFile(ctx context.Context, t Target, path, sha, message string) error

	// CreateRepository creates a new repository for the authenticated user,
	// initialised with a first commit so the branch exists.
	CreateRepository(ctx context.Context, name, description string, private bool) (RepoInfo, error)

	// GetRepository looks up a repository; ErrNotFound when absent.
	GetRepository(ctx context.Context, owner, name string) (RepoInfo, error)

	// ListUserRepositories lists the repositories the token's user owns,
	// most recently updated first.
	ListUserRepositories(ctx context.Context) ([]RepoSummary, error)

	// GetRepositoryDetails returns importer metadata for a repository;
	// ErrNotFound when absent.
	GetRepositoryDetails(ctx context.Context, owner, name string) (RepoDetails, error)

	// GetReadme returns the repository's README content; ErrNotFound when
	// it has none.
	GetReadme(ctx context.Context, owner, name string) (string, error)

	// ListLanguages returns the repository's languages, largest share
	// first.
	ListLanguages(ctx context.Context, owner, name string) ([]string, error)
}
