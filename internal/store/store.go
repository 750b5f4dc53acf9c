// Package store defines the pseudo-session and pseudo-config stores that
// stand in for a real backend. Two implementations exist: a cookie-backed
// one for single-operator deployments, where all state rides in the
// client's cookies, and a sqlite-backed one that persists server side.
//
// The cookie implementation authenticates its payload with the manager's
// secret, but anyone holding that secret (or the server) can mint cookies;
// this is an admin tool for one operator, not a multi-tenant system.
package store

import (
	"errors"
	"net/http"

	"gitfolio/internal/domain"
)

var ErrInternal = errors.New("store error")

// SessionStore holds the authenticated admin identity. Get treats an
// expired session identically to no session.
type SessionStore interface {
	Get(r *http.Request) (domain.Session, bool)
	Put(w http.ResponseWriter, r *http.Request, s domain.Session) error
	Destroy(w http.ResponseWriter, r *http.Request) error
}

// ConfigStore holds the repository target. A malformed stored value reads
// as absent, falling back to whatever default the caller carries.
type ConfigStore interface {
	Get(r *http.Request) (domain.RepoConfig, bool)
	Put(w http.ResponseWriter, r *http.Request, c domain.RepoConfig) error
}
