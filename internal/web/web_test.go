package web

import (
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"gitfolio/internal/ai"
	"gitfolio/internal/config"
	"gitfolio/internal/domain"
	"gitfolio/internal/remote"
	"gitfolio/internal/remote/fake"
	core "gitfolio/internal/service/impl"
	"gitfolio/internal/store/cookie"
)

func TestMain(m *testing.M) {
	gob.Register(domain.Session{})
	gob.Register(domain.RepoConfig{})
	os.Exit(m.Run())
}

func newTestServer(repo *fake.Repo) (*Handler, http.Handler) {
	cfg := &config.Configuration{
		BaseURL:         "http://localhost:8080",
		PublicRepo:      "me/site",
		PublicBranch:    "main",
		SessionLifetime: time.Hour,
	}
	sessions, configs := cookie.New("0123456789abcdef0123456789abcdef", time.Hour, false)
	h := New(cfg, core.New(repo), sessions, configs, ai.New("", "", nil))

	r := chi.NewRouter()
	h.Mount(r)
	return h, r
}

// login seeds a session out of band and returns its cookies.
func login(t *testing.T, h *Handler) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	session := domain.Session{
		User:      domain.GitHubUser{Login: "me", Name: "Me"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := h.Sessions.Put(rec, req, session); err != nil {
		t.Fatal(err)
	}
	return rec.Result().Cookies()
}

func doJSON(t *testing.T, srv http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("malformed response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestMutationsRequireSession(t *testing.T) {
	_, srv := newTestServer(fake.New())

	paths := []struct{ method, path string }{
		{http.MethodPut, "/api/config/"},
		{http.MethodPut, "/api/github/push"},
		{http.MethodDelete, "/api/github/push"},
		{http.MethodPost, "/api/github/collections"},
		{http.MethodDelete, "/api/github/collections"},
		{http.MethodPost, "/api/images/upload"},
		{http.MethodPost, "/api/images/delete"},
		{http.MethodPost, "/api/repo/create"},
		{http.MethodGet, "/api/github/repos"},
		{http.MethodGet, "/api/github/repos/me/site"},
		{http.MethodPost, "/api/ai/describe"},
	}
	for _, p := range paths {
		rec := doJSON(t, srv, p.method, p.path, `{}`, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", p.method, p.path, rec.Code)
		}
	}
}

func TestUserAnonymous(t *testing.T) {
	_, srv := newTestServer(fake.New())

	rec := doJSON(t, srv, http.MethodGet, "/api/auth/user", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["user"] != nil {
		t.Errorf("expected a null user, got %v", body["user"])
	}
}

func TestUserLoggedIn(t *testing.T) {
	h, srv := newTestServer(fake.New())
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodGet, "/api/auth/user", "", cookies)
	body := decodeBody(t, rec)
	user, _ := body["user"].(map[string]any)
	if user["login"] != "me" {
		t.Errorf("user = %v", body["user"])
	}
}

func TestConfigFallsBackToPublicRepo(t *testing.T) {
	_, srv := newTestServer(fake.New())

	rec := doJSON(t, srv, http.MethodGet, "/api/config/", "", nil)
	body := decodeBody(t, rec)
	if body["repo"] != "me/site" || body["branch"] != "main" {
		t.Errorf("config = %v", body)
	}
}

func TestPutConfigRoundTrip(t *testing.T) {
	h, srv := newTestServer(fake.New())
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodPut, "/api/config/", `{"repo":"me/other","branch":"dev"}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}
	cookies = append(cookies, rec.Result().Cookies()...)

	rec = doJSON(t, srv, http.MethodGet, "/api/config/", "", cookies)
	body := decodeBody(t, rec)
	if body["repo"] != "me/other" || body["branch"] != "dev" {
		t.Errorf("config after put = %v", body)
	}
}

func TestPutConfigRequiresRepo(t *testing.T) {
	h, srv := newTestServer(fake.New())
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodPut, "/api/config/", `{"branch":"main"}`, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestPushAndListBlogs(t *testing.T) {
	repo := fake.New()
	h, srv := newTestServer(repo)
	cookies := login(t, h)

	push := `{"type":"blog","id":"first","content":{"title":"First Post","content":"hello","publishedAt":"2024-03-01","status":"published"}}`
	rec := doJSON(t, srv, http.MethodPut, "/api/github/push", push, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("push status = %d: %s", rec.Code, rec.Body.String())
	}
	if !repo.Exists("data/blogs/first.md") {
		t.Fatal("push did not write the blog file")
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/github/blogs", "", nil)
	body := decodeBody(t, rec)
	blogs, _ := body["blogs"].([]any)
	if len(blogs) != 1 {
		t.Fatalf("blogs = %v", body)
	}
	first, _ := blogs[0].(map[string]any)
	if first["id"] != "first" || first["title"] != "First Post" {
		t.Errorf("blog = %v", first)
	}
}

func TestPushRejectsUnknownType(t *testing.T) {
	h, srv := newTestServer(fake.New())
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodPut, "/api/github/push", `{"type":"page","id":"x","content":{}}`, cookies)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestDeleteMissingItem(t *testing.T) {
	h, srv := newTestServer(fake.New())
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodDelete, "/api/github/push", `{"type":"blog","id":"ghost"}`, cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteCollectionReportsPartialFailure(t *testing.T) {
	repo := fake.New()
	repo.Seed("data/blogs/tech/.collection.md", "---\nname: \"Tech\"\n---\n")
	repo.Seed("data/blogs/tech/b1.md", "---\ntitle: \"One\"\n---\n\nx")
	repo.FailDelete["data/blogs/tech/b1.md"] = true
	h, srv := newTestServer(repo)
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodDelete, "/api/github/collections?type=blogs&id=tech", "", cookies)
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("expected success=false, got %v", body)
	}
	failed, _ := body["failed"].([]any)
	if len(failed) != 1 || failed[0] != "data/blogs/tech/b1.md" {
		t.Errorf("failed = %v", failed)
	}
}

func TestListRepos(t *testing.T) {
	repo := fake.New()
	repo.UserRepos = []remote.RepoSummary{
		{Name: "site", FullName: "me/site", Language: "Go"},
		{Name: "linux", FullName: "me/linux", Fork: true},
	}
	h, srv := newTestServer(repo)
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodGet, "/api/github/repos", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	repos, _ := body["repos"].([]any)
	if len(repos) != 1 {
		t.Fatalf("repos = %v", body)
	}
	first, _ := repos[0].(map[string]any)
	if first["name"] != "site" || first["language"] != "Go" {
		t.Errorf("repo = %v", first)
	}
}

func TestImportRepo(t *testing.T) {
	repo := fake.New()
	repo.Details["me/site"] = remote.RepoDetails{
		Name:        "site",
		Description: "A portfolio site",
		HTMLURL:     "https://github.com/me/site",
		Topics:      []string{"portfolio"},
	}
	repo.Readmes["me/site"] = "# site"
	repo.Langs["me/site"] = []string{"Go"}
	h, srv := newTestServer(repo)
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodGet, "/api/github/repos/me/site", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	project, _ := body["project"].(map[string]any)
	if project["title"] != "site" || project["description"] != "A portfolio site" || project["content"] != "# site" {
		t.Errorf("project = %v", project)
	}
	tags, _ := project["tags"].([]any)
	if len(tags) != 2 || tags[0] != "Go" || tags[1] != "portfolio" {
		t.Errorf("tags = %v", tags)
	}
	id, _ := project["id"].(string)
	if !strings.HasPrefix(id, "project-") {
		t.Errorf("id = %q", id)
	}
}

func TestImportRepoMissing(t *testing.T) {
	h, srv := newTestServer(fake.New())
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodGet, "/api/github/repos/me/ghost", "", cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDescribeDisabled(t *testing.T) {
	h, srv := newTestServer(fake.New())
	cookies := login(t, h)

	rec := doJSON(t, srv, http.MethodPost, "/api/ai/describe", `{"title":"notes","content":"a tool"}`, cookies)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginRequiresClientID(t *testing.T) {
	_, srv := newTestServer(fake.New())

	rec := doJSON(t, srv, http.MethodGet, "/api/auth/github", "", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestLoginRedirects(t *testing.T) {
	h, srv := newTestServer(fake.New())
	h.OAuth.ClientID = "client-id"

	rec := doJSON(t, srv, http.MethodGet, "/api/auth/github", "", nil)
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d", rec.Code)
	}
	location := rec.Header().Get("Location")
	if !strings.Contains(location, "client_id=client-id") || !strings.Contains(location, "state=") {
		t.Errorf("redirect location = %q", location)
	}
}
