// Package github implements remote.Repository against the GitHub REST
// contents API. The bearer token comes from process configuration, never
// from user input.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"gitfolio/internal/remote"
)

const (
	DefaultBaseURL = "https://api.github.com"

	acceptJSON = "application/vnd.github.v3+json"
	acceptRaw  = "application/vnd.github.raw"
	userAgent  = "gitfolio"
)

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New builds a client against the public GitHub API. baseURL overrides the
// API host, which the tests use to point at an httptest server.
func New(token, baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  client,
	}
}

type entryResponse struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
}

func (c *Client) ListDirectory(ctx context.Context, t remote.Target, path string) ([]remote.Entry, error) {
	res, err := c.do(ctx, http.MethodGet, c.contentsURL(t, path), acceptJSON, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return []remote.Entry{}, nil
	}
	if err := c.checkStatus(res); err != nil {
		return nil, err
	}

	var listed []entryResponse
	if err := json.NewDecoder(res.Body).Decode(&listed); err != nil {
		log.Error().Err(err).Str("path", path).Msg("directory listing unmarshaling error")
		return nil, err
	}

	entries := make([]remote.Entry, 0, len(listed))
	for _, e := range listed {
		kind := remote.KindFile
		if e.Type == "dir" {
			kind = remote.KindDir
		}
		entries = append(entries, remote.Entry{
			Name: e.Name,
			Path: e.Path,
			Kind: kind,
			SHA:  e.SHA,
		})
	}
	return entries, nil
}

func (c *Client) ReadFile(ctx context.Context, t remote.Target, path string) ([]byte, error) {
	res, err := c.do(ctx, http.MethodGet, c.contentsURL(t, path), acceptRaw, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return nil, err
	}
	return io.ReadAll(res.Body)
}

func (c *Client) StatFile(ctx context.Context, t remote.Target, path string) (string, error) {
	res, err := c.do(ctx, http.MethodGet, c.contentsURL(t, path), acceptJSON, nil)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return "", err
	}

	var entry entryResponse
	if err := json.NewDecoder(res.Body).Decode(&entry); err != nil {
		return "", err
	}
	return entry.SHA, nil
}

func (c *Client) WriteFile(ctx context.Context, t remote.Target, path string, content []byte, sha, message string) (string, error) {
	body := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
		"branch":  t.Branch,
	}
	if sha != "" {
		body["sha"] = sha
	}

	res, err := c.do(ctx, http.MethodPut, c.contentsURL(t, path), acceptJSON, body)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return "", err
	}

	var result struct {
		Content entryResponse `json:"content"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Content.SHA, nil
}

func (c *Client) DeleteFile(ctx context.Context, t remote.Target, path, sha, message string) error {
	body := map[string]string{
		"message": message,
		"sha":     sha,
		"branch":  t.Branch,
	}

	res, err := c.do(ctx, http.MethodDelete, c.contentsURL(t, path), acceptJSON, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return c.checkStatus(res)
}

type repoResponse struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

func (c *Client) CreateRepository(ctx context.Context, name, description string, private bool) (remote.RepoInfo, error) {
	body := map[string]any{
		"name":        name,
		"description": description,
		"private":     private,
		"auto_init":   true,
	}

	res, err := c.do(ctx, http.MethodPost, c.baseURL+"/user/repos", acceptJSON, body)
	if err != nil {
		return remote.RepoInfo{}, err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return remote.RepoInfo{}, err
	}
	return decodeRepo(res.Body)
}

func (c *Client) GetRepository(ctx context.Context, owner, name string) (remote.RepoInfo, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name), acceptJSON, nil)
	if err != nil {
		return remote.RepoInfo{}, err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return remote.RepoInfo{}, err
	}
	return decodeRepo(res.Body)
}

type repoSummaryResponse struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Homepage    string `json:"homepage"`
	HTMLURL     string `json:"html_url"`
	Private     bool   `json:"private"`
	Fork        bool   `json:"fork"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (c *Client) ListUserRepositories(ctx context.Context) ([]remote.RepoSummary, error) {
	res, err := c.do(ctx, http.MethodGet,
		c.baseURL+"/user/repos?per_page=100&type=owner&sort=updated", acceptJSON, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return nil, err
	}

	var listed []repoSummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&listed); err != nil {
		log.Error().Err(err).Msg("repository listing unmarshaling error")
		return nil, err
	}

	repos := make([]remote.RepoSummary, 0, len(listed))
	for _, r := range listed {
		repos = append(repos, remote.RepoSummary{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			Homepage:    r.Homepage,
			HTMLURL:     r.HTMLURL,
			Private:     r.Private,
			Fork:        r.Fork,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return repos, nil
}

func (c *Client) GetRepositoryDetails(ctx context.Context, owner, name string) (remote.RepoDetails, error) {
	res, err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(name)), acceptJSON, nil)
	if err != nil {
		return remote.RepoDetails{}, err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return remote.RepoDetails{}, err
	}

	var decoded struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Homepage    string   `json:"homepage"`
		HTMLURL     string   `json:"html_url"`
		CreatedAt   string   `json:"created_at"`
		Topics      []string `json:"topics"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return remote.RepoDetails{}, err
	}
	return remote.RepoDetails{
		Name:        decoded.Name,
		Description: decoded.Description,
		Homepage:    decoded.Homepage,
		HTMLURL:     decoded.HTMLURL,
		CreatedAt:   decoded.CreatedAt,
		Topics:      decoded.Topics,
	}, nil
}

func (c *Client) GetReadme(ctx context.Context, owner, name string) (string, error) {
	res, err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, url.PathEscape(owner), url.PathEscape(name)), acceptRaw, nil)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return "", err
	}

	content, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (c *Client) ListLanguages(ctx context.Context, owner, name string) ([]string, error) {
	res, err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, url.PathEscape(owner), url.PathEscape(name)), acceptJSON, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return nil, err
	}

	var shares map[string]int64
	if err := json.NewDecoder(res.Body).Decode(&shares); err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(shares))
	for lang := range shares {
		languages = append(languages, lang)
	}
	// Largest byte share first, name as the tie break.
	sort.Slice(languages, func(i, j int) bool {
		if shares[languages[i]] != shares[languages[j]] {
			return shares[languages[i]] > shares[languages[j]]
		}
		return languages[i] < languages[j]
	})
	return languages, nil
}

func decodeRepo(r io.Reader) (remote.RepoInfo, error) {
	var repo repoResponse
	if err := json.NewDecoder(r).Decode(&repo); err != nil {
		return remote.RepoInfo{}, err
	}
	return remote.RepoInfo{
		FullName:      repo.FullName,
		DefaultBranch: repo.DefaultBranch,
		Private:       repo.Private,
	}, nil
}

func (c *Client) contentsURL(t remote.Target, path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		c.baseURL, url.PathEscape(t.Owner), url.PathEscape(t.Repo),
		strings.Join(segments, "/"), url.QueryEscape(t.Branch))
}

func (c *Client) do(ctx context.Context, method, rawURL, accept string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", rawURL).Msg("failed to do request")
		return nil, err
	}
	return res, nil
}

// checkStatus maps a non-2xx response to the package error taxonomy and
// logs the upstream message text, which GitHub puts in a message field.
func (c *Client) checkStatus(res *http.Response) error {
	if res.StatusCode < 300 {
		return nil
	}

	content, _ := io.ReadAll(res.Body)
	var payload struct {
		Message string `json:"message"`
	}
	message := string(content)
	if err := json.Unmarshal(content, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}

	switch res.StatusCode {
	case http.StatusNotFound:
		return remote.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		log.Error().Int("status", res.StatusCode).Str("response", message).Msg("authorization rejected upstream")
		return remote.ErrUnauthorized
	}

	log.Error().Int("status", res.StatusCode).Str("response", message).Msg("upstream api error")
	return &remote.UpstreamError{Status: res.StatusCode, Message: message}
}
