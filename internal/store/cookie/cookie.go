// Package cookie implements the session and config stores on top of scs
// cookie managers, so the whole admin state lives client side.
package cookie

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs"
	"github.com/rs/zerolog/log"

	"gitfolio/internal/domain"
)

const (
	sessionKey = "session"
	configKey  = "config"
)

// New builds the two stores off one signing secret. lifetime bounds both
// cookies; session expiry is additionally checked lazily against the
// ExpiresAt carried in the payload.
func New(secret string, lifetime time.Duration, secure bool) (*SessionStore, *ConfigStore) {
	return &SessionStore{
			manager: newManager(secret, "gitfolio_session", lifetime, secure),
			now:     time.Now,
		}, &ConfigStore{
			manager: newManager(secret, "gitfolio_config", lifetime, secure),
		}
}

func newManager(secret, name string, lifetime time.Duration, secure bool) *scs.Manager {
	manager := scs.NewCookieManager(secret)
	manager.Name(name)
	manager.Lifetime(lifetime)
	manager.HttpOnly(true)
	manager.Secure(secure)
	manager.SameSite("Lax")
	return manager
}

type SessionStore struct {
	manager *scs.Manager
	now     func() time.Time
}

func (s *SessionStore) Get(r *http.Request) (domain.Session, bool) {
	var session domain.Session
	err := s.manager.Load(r).GetObject(sessionKey, &session)
	if err != nil || session.User.Login == "" {
		return domain.Session{}, false
	}
	if session.Expired(s.now()) {
		return domain.Session{}, false
	}
	return session, true
}

func (s *SessionStore) Put(w http.ResponseWriter, r *http.Request, session domain.Session) error {
	if err := s.manager.Load(r).PutObject(w, sessionKey, session); err != nil {
		log.Error().Err(err).Msg("failed to write session cookie")
		return err
	}
	return nil
}

func (s *SessionStore) Destroy(w http.ResponseWriter, r *http.Request) error {
	return s.manager.Load(r).Destroy(w)
}

type ConfigStore struct {
	manager *scs.Manager
}

func (s *ConfigStore) Get(r *http.Request) (domain.RepoConfig, bool) {
	var cfg domain.RepoConfig
	err := s.manager.Load(r).GetObject(configKey, &cfg)
	if err != nil || !cfg.Configured() {
		// Malformed or absent config reads as unset.
		return domain.RepoConfig{}, false
	}
	return cfg, true
}

func (s *ConfigStore) Put(w http.ResponseWriter, r *http.Request, cfg domain.RepoConfig) error {
	if err := s.manager.Load(r).PutObject(w, configKey, cfg); err != nil {
		log.Error().Err(err).Msg("failed to write config cookie")
		return err
	}
	return nil
}
