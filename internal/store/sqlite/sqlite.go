// Package sqlite persists sessions and the repository config server side,
// for deployments where cookie-resident state is not wanted. A random
// token in a plain cookie keys the session row; the config is a singleton
// row, since there is exactly one operator.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gitfolio/internal/domain"
	"gitfolio/internal/store"
)

const tokenCookie = "gitfolio_sid"

func New(db *sql.DB, lifetime time.Duration, secure bool) (*SessionStore, *ConfigStore) {
	return &SessionStore{
			db:       db,
			lifetime: lifetime,
			secure:   secure,
			now:      time.Now,
		}, &ConfigStore{
			db: db,
		}
}

type SessionStore struct {
	db       *sql.DB
	lifetime time.Duration
	secure   bool
	now      func() time.Time
}

func (s *SessionStore) Get(r *http.Request) (domain.Session, bool) {
	c, err := r.Cookie(tokenCookie)
	if err != nil {
		return domain.Session{}, false
	}

	row := s.db.QueryRowContext(r.Context(),
		"SELECT payload, expires_at FROM sessions WHERE token = ?", c.Value)

	var payload string
	var expiresAt int64
	if err := row.Scan(&payload, &expiresAt); err != nil {
		if err != sql.ErrNoRows {
			log.Error().Err(err).Msg("session lookup failed")
		}
		return domain.Session{}, false
	}

	// Expiry is checked lazily; stale rows are reaped on read.
	if time.Unix(expiresAt, 0).Before(s.now()) {
		if _, err := s.db.ExecContext(r.Context(), "DELETE FROM sessions WHERE token = ?", c.Value); err != nil {
			log.Error().Err(err).Msg("failed to reap expired session")
		}
		return domain.Session{}, false
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return domain.Session{}, false
	}
	if session.Expired(s.now()) {
		return domain.Session{}, false
	}
	return session, true
}

func (s *SessionStore) Put(w http.ResponseWriter, r *http.Request, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	expires := s.now().Add(s.lifetime)
	_, err = s.db.ExecContext(r.Context(),
		"INSERT INTO sessions(token, payload, expires_at) VALUES(?, ?, ?)",
		token, string(payload), expires.Unix())
	if err != nil {
		log.Error().Err(err).Msg("failed to persist session")
		return store.ErrInternal
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
	return nil
}

func (s *SessionStore) Destroy(w http.ResponseWriter, r *http.Request) error {
	if c, err := r.Cookie(tokenCookie); err == nil {
		if _, err := s.db.ExecContext(r.Context(), "DELETE FROM sessions WHERE token = ?", c.Value); err != nil {
			log.Error().Err(err).Msg("failed to delete session row")
			return store.ErrInternal
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}

type ConfigStore struct {
	db *sql.DB
}

func (s *ConfigStore) Get(r *http.Request) (domain.RepoConfig, bool) {
	row := s.db.QueryRowContext(r.Context(), "SELECT repo, branch FROM repo_config WHERE id = 1")

	var cfg domain.RepoConfig
	if err := row.Scan(&cfg.Repo, &cfg.Branch); err != nil {
		if err != sql.ErrNoRows {
			log.Error().Err(err).Msg("config lookup failed")
		}
		return domain.RepoConfig{}, false
	}
	if !cfg.Configured() {
		return domain.RepoConfig{}, false
	}
	return cfg, true
}

func (s *ConfigStore) Put(_ http.ResponseWriter, r *http.Request, cfg domain.RepoConfig) error {
	_, err := s.db.ExecContext(r.Context(),
		`INSERT INTO repo_config(id, repo, branch) VALUES(1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET repo = excluded.repo, branch = excluded.branch`,
		cfg.Repo, cfg.Branch)
	if err != nil {
		log.Error().Err(err).Msg("failed to persist repo config")
		return store.ErrInternal
	}
	return nil
}
