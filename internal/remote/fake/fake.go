// Package fake holds an in-memory remote.Repository used by tests. It
// reproduces the contents-API semantics the service layer depends on:
// listings are derived from path prefixes, writes are conditional on the
// revision SHA, and deleting an absent file is an error.
package fake

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"gitfolio/internal/remote"
)

type file struct {
	content []byte
	sha     string
}

type Repo struct {
	mu      sync.Mutex
	files   map[string]file
	nextSHA int

	// FailDelete lists paths whose deletion reports an upstream failure,
	// for exercising partial cascade deletes.
	FailDelete map[string]bool

	// Importer fixtures, keyed "owner/name" where applicable.
	UserRepos []remote.RepoSummary
	Details   map[string]remote.RepoDetails
	Readmes   map[string]string
	Langs     map[string][]string
}

func New() *Repo {
	return &Repo{
		files:      map[string]file{},
		FailDelete: map[string]bool{},
		Details:    map[string]remote.RepoDetails{},
		Readmes:    map[string]string{},
		Langs:      map[string][]string{},
	}
}

// Seed writes a file directly, bypassing the conditional-write checks.
func (r *Repo) Seed(path, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSHA++
	r.files[path] = file{content: []byte(content), sha: fmt.Sprintf("sha-%d", r.nextSHA)}
}

// Exists reports whether a file is present at path.
func (r *Repo) Exists(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.files[path]
	return ok
}

// Content returns the current content of the file at path.
func (r *Repo) Content(path string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[path]
	return string(f.content), ok
}

// Paths returns every stored path, sorted.
func (r *Repo) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, 0, len(r.files))
	for p := range r.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (r *Repo) ListDirectory(_ context.Context, _ remote.Target, path string) ([]remote.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := strings.TrimSuffix(path, "/") + "/"
	seen := map[string]remote.Entry{}
	for p, f := range r.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if name, _, nested := strings.Cut(rest, "/"); nested {
			seen[name] = remote.Entry{Name: name, Path: prefix + name, Kind: remote.KindDir}
		} else {
			seen[name] = remote.Entry{Name: name, Path: p, Kind: remote.KindFile, SHA: f.sha}
		}
	}

	entries := make([]remote.Entry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (r *Repo) ReadFile(_ context.Context, _ remote.Target, path string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.files[path]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return append([]byte(nil), f.content...), nil
}

func (r *Repo) StatFile(_ context.Context, _ remote.Target, path string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.files[path]
	if !ok {
		return "", remote.ErrNotFound
	}
	return f.sha, nil
}

func (r *Repo) WriteFile(_ context.Context, _ remote.Target, path string, content []byte, sha, _ string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.files[path]
	if sha == "" && ok {
		return "", &remote.UpstreamError{Status: http.StatusUnprocessableEntity, Message: "sha missing for existing file"}
	}
	if sha != "" && (!ok || existing.sha != sha) {
		return "", &remote.UpstreamError{Status: http.StatusConflict, Message: "sha mismatch"}
	}

	r.nextSHA++
	next := fmt.Sprintf("sha-%d", r.nextSHA)
	r.files[path] = file{content: append([]byte(nil), content...), sha: next}
	return next, nil
}

func (r *Repo) DeleteFile(_ context.Context, _ remote.Target, path, sha, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailDelete[path] {
		return &remote.UpstreamError{Status: http.StatusInternalServerError, Message: "delete failed"}
	}

	f, ok := r.files[path]
	if !ok {
		return remote.ErrNotFound
	}
	if f.sha != sha {
		return &remote.UpstreamError{Status: http.StatusConflict, Message: "sha mismatch"}
	}
	delete(r.files, path)
	return nil
}

func (r *Repo) CreateRepository(_ context.Context, name, _ string, private bool) (remote.RepoInfo, error) {
	return remote.RepoInfo{FullName: "owner/" + name, DefaultBranch: "main", Private: private}, nil
}

func (r *Repo) GetRepository(_ context.Context, owner, name string) (remote.RepoInfo, error) {
	return remote.RepoInfo{FullName: owner + "/" + name, DefaultBranch: "main"}, nil
}

func (r *Repo) ListUserRepositories(_ context.Context) ([]remote.RepoSummary, error) {
	return append([]remote.RepoSummary(nil), r.UserRepos...), nil
}

func (r *Repo) GetRepositoryDetails(_ context.Context, owner, name string) (remote.RepoDetails, error) {
	d, ok := r.Details[owner+"/"+name]
	if !ok {
		return remote.RepoDetails{}, remote.ErrNotFound
	}
	return d, nil
}

func (r *Repo) GetReadme(_ context.Context, owner, name string) (string, error) {
	readme, ok := r.Readmes[owner+"/"+name]
	if !ok {
		return "", remote.ErrNotFound
	}
	return readme, nil
}

func (r *Repo) ListLanguages(_ context.Context, owner, name string) ([]string, error) {
	return append([]string(nil), r.Langs[owner+"/"+name]...), nil
}
