package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitfolio/internal/remote"
)

var ctx = context.Background()

var target = remote.Target{Owner: "me", Repo: "site", Branch: "main"}

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New("test-token", server.URL, server.Client()), server
}

func TestListDirectoryMissingIsEmpty(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	entries, err := client.ListDirectory(ctx, target, "data/blogs")
	if err != nil {
		t.Fatal("expected missing directory to list as empty, got error:", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(entries))
	}
}

func TestListDirectory(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/me/site/contents/data/blogs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if got := r.URL.Query().Get("ref"); got != "main" {
			t.Errorf("unexpected ref %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"name": "b1.md", "path": "data/blogs/b1.md", "type": "file", "sha": "abc"},
			{"name": "tech", "path": "data/blogs/tech", "type": "dir", "sha": ""},
		})
	}))
	defer server.Close()

	entries, err := client.ListDirectory(ctx, target, "data/blogs")
	if err != nil {
		t.Fatal(err)
	}

	expected := []remote.Entry{
		{Name: "b1.md", Path: "data/blogs/b1.md", Kind: remote.KindFile, SHA: "abc"},
		{Name: "tech", Path: "data/blogs/tech", Kind: remote.KindDir},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Error(diff)
	}
}

func TestReadFileErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			"missing file", http.StatusNotFound,
			func(t *testing.T, err error) {
				if !errors.Is(err, remote.ErrNotFound) {
					t.Errorf("expected ErrNotFound, got %v", err)
				}
			},
		},
		{
			"bad credentials", http.StatusUnauthorized,
			func(t *testing.T, err error) {
				if !errors.Is(err, remote.ErrUnauthorized) {
					t.Errorf("expected ErrUnauthorized, got %v", err)
				}
			},
		},
		{
			"other failure carries the status", http.StatusConflict,
			func(t *testing.T, err error) {
				var upstream *remote.UpstreamError
				if !errors.As(err, &upstream) {
					t.Fatalf("expected UpstreamError, got %v", err)
				}
				if upstream.Status != http.StatusConflict {
					t.Errorf("expected status 409, got %d", upstream.Status)
				}
				if upstream.Message != "boom" {
					t.Errorf("expected upstream message text, got %q", upstream.Message)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message": "boom"}`, c.status)
			}))
			defer server.Close()

			_, err := client.ReadFile(ctx, target, "data/profile.md")
			if err == nil {
				t.Fatal("expected an error")
			}
			c.check(t, err)
		})
	}
}

func TestWriteFile(t *testing.T) {
	var received struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha"`
		Branch  string `json:"branch"`
	}

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": map[string]string{"sha": "newsha"},
		})
	}))
	defer server.Close()

	t.Run("create omits the sha", func(t *testing.T) {
		sha, err := client.WriteFile(ctx, target, "data/blogs/b1.md", []byte("hello"), "", "Create blog: b1")
		if err != nil {
			t.Fatal(err)
		}
		if sha != "newsha" {
			t.Errorf("expected new revision sha, got %q", sha)
		}
		if received.SHA != "" {
			t.Errorf("create must not send a sha, sent %q", received.SHA)
		}
		if decoded, _ := base64.StdEncoding.DecodeString(received.Content); string(decoded) != "hello" {
			t.Errorf("content not base64 of the input: %q", received.Content)
		}
		if received.Branch != "main" {
			t.Errorf("expected branch main, got %q", received.Branch)
		}
	})

	t.Run("update sends the prior sha", func(t *testing.T) {
		if _, err := client.WriteFile(ctx, target, "data/blogs/b1.md", []byte("hello"), "oldsha", "Update blog: b1"); err != nil {
			t.Fatal(err)
		}
		if received.SHA != "oldsha" {
			t.Errorf("expected conditional update with sha, got %q", received.SHA)
		}
	})
}

func TestDeleteFile(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		var body struct {
			SHA string `json:"sha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.SHA != "abc" {
			t.Errorf("expected sha abc, got %q", body.SHA)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	if err := client.DeleteFile(ctx, target, "data/blogs/b1.md", "abc", "Delete blog: b1"); err != nil {
		t.Fatal(err)
	}
}

func TestStatFile(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"sha": "abc", "name": "b1.md"})
	}))
	defer server.Close()

	sha, err := client.StatFile(ctx, target, "data/blogs/b1.md")
	if err != nil {
		t.Fatal(err)
	}
	if sha != "abc" {
		t.Errorf("expected sha abc, got %q", sha)
	}
}

func TestContentsPathIsEscaped(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.EscapedPath(); got != "/repos/me/site/contents/data/blogs/caf%C3%A9%20notes%231.md" {
			t.Errorf("unexpected escaped path %s", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"sha": "abc"})
	}))
	defer server.Close()

	if _, err := client.StatFile(ctx, target, "data/blogs/café notes#1.md"); err != nil {
		t.Fatal(err)
	}
}

func TestListUserRepositories(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/repos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("type") != "owner" || q.Get("sort") != "updated" || q.Get("per_page") != "100" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"name": "site", "full_name": "me/site", "language": "Go",
				"stargazers_count": 3, "forks_count": 1, "fork": false,
				"html_url": "https://github.com/me/site",
			},
			{"name": "linux", "full_name": "me/linux", "fork": true},
		})
	}))
	defer server.Close()

	repos, err := client.ListUserRepositories(ctx)
	if err != nil {
		t.Fatal(err)
	}

	expected := []remote.RepoSummary{
		{Name: "site", FullName: "me/site", Language: "Go", Stars: 3, Forks: 1, HTMLURL: "https://github.com/me/site"},
		{Name: "linux", FullName: "me/linux", Fork: true},
	}
	if diff := cmp.Diff(expected, repos); diff != "" {
		t.Error(diff)
	}
}

func TestGetReadmeRequestsRawContent(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/me/site/readme" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != acceptRaw {
			t.Errorf("expected raw accept header, got %q", got)
		}
		w.Write([]byte("# site\n"))
	}))
	defer server.Close()

	readme, err := client.GetReadme(ctx, "me", "site")
	if err != nil {
		t.Fatal(err)
	}
	if readme != "# site\n" {
		t.Errorf("unexpected readme %q", readme)
	}
}

func TestListLanguagesOrdersByShare(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/me/site/languages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]int64{
			"JavaScript": 1200,
			"Go":         98000,
			"CSS":        1200,
			"Makefile":   40,
		})
	}))
	defer server.Close()

	languages, err := client.ListLanguages(ctx, "me", "site")
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"Go", "CSS", "JavaScript", "Makefile"}
	if diff := cmp.Diff(expected, languages); diff != "" {
		t.Error(diff)
	}
}

func TestCreateRepository(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/repos" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			AutoInit bool `json:"auto_init"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if !body.AutoInit {
			t.Error("repository must be created with auto_init")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"full_name":      "me/site",
			"default_branch": "main",
			"private":        true,
		})
	}))
	defer server.Close()

	info, err := client.CreateRepository(ctx, "site", "content repo", true)
	if err != nil {
		t.Fatal(err)
	}
	expected := remote.RepoInfo{FullName: "me/site", DefaultBranch: "main", Private: true}
	if diff := cmp.Diff(expected, info); diff != "" {
		t.Error(diff)
	}
}
