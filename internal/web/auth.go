package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gitfolio/internal/domain"
	"gitfolio/internal/httputil"
	"gitfolio/internal/remote/github"
)

const stateCookie = "gitfolio_oauth_state"

type sessionKey struct{}

// GetSession returns the session placed in the context by
// SessionMiddleware.
func GetSession(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(domain.Session)
	return s, ok
}

// SessionMiddleware loads the admin session, if any, into the request
// context. It never rejects; AuthenticatedMiddleware does that for the
// routes that need it.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, ok := handler.Sessions.Get(r); ok {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Login redirects the browser to the authorization page. The state rides
// in a short-lived cookie and is checked on the way back.
func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler.OAuth.ClientID == "" {
			httputil.RespondError(w, http.StatusInternalServerError, "oauth client not configured")
			return
		}

		state := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   int((10 * time.Minute).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, handler.OAuth.AuthCodeURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback finishes the exchange: code for token, token for identity, and
// a fresh session. Failures land back on /admin with an error query so the
// frontend can show something.
func Callback(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fail := func(reason string) {
			http.Redirect(w, r, "/admin?error="+reason, http.StatusSeeOther)
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			fail("no_code")
			return
		}

		cookie, err := r.Cookie(stateCookie)
		if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
			fail("bad_state")
			return
		}
		http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1})

		token, err := handler.OAuth.Exchange(r.Context(), code)
		if err != nil {
			log.Error().Err(err).Msg("oauth exchange failed")
			fail("token_failed")
			return
		}

		user, err := fetchUser(r.Context(), handler.Config.GithubAPIURL, token.AccessToken)
		if err != nil {
			log.Error().Err(err).Msg("could not fetch the authenticated user")
			fail("oauth_failed")
			return
		}

		session := domain.Session{
			User:      user,
			ExpiresAt: time.Now().Add(handler.Config.SessionLifetime),
		}
		if err := handler.Sessions.Put(w, r, session); err != nil {
			log.Error().Err(err).Msg("could not store the session")
			fail("session_failed")
			return
		}
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

// User reports the logged-in identity, {"user": null} when there is none.
func User(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := GetSession(r.Context())
		if !ok {
			httputil.RespondJSON(w, http.StatusOK, map[string]any{"user": nil})
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"user": s.User})
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler.Sessions.Destroy(w, r); err != nil {
			log.Error().Err(err).Msg("could not destroy the session")
			httputil.RespondError(w, http.StatusInternalServerError, "logout failed")
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// fetchUser resolves the OAuth token into an identity via the /user
// endpoint.
func fetchUser(ctx context.Context, apiURL, accessToken string) (domain.GitHubUser, error) {
	if apiURL == "" {
		apiURL = github.DefaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"/user", nil)
	if err != nil {
		return domain.GitHubUser{}, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "gitfolio")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return domain.GitHubUser{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return domain.GitHubUser{}, fmt.Errorf("user lookup failed with status %d", res.StatusCode)
	}

	var decoded struct {
		Login  string `json:"login"`
		Name   string `json:"name"`
		Avatar string `json:"avatar_url"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return domain.GitHubUser{}, err
	}
	return domain.GitHubUser{Login: decoded.Login, Name: decoded.Name, Avatar: decoded.Avatar}, nil
}
