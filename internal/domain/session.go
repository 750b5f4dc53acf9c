package domain

import "time"

// GitHubUser is the identity returned by the OAuth exchange.
type GitHubUser struct {
	Login  string `json:"login"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Session is the authenticated admin identity. Expiry is checked lazily on
// read; an expired session is indistinguishable from no session.
type Session struct {
	User      GitHubUser `json:"user"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}

// RepoConfig points content operations at a repository and branch. A zero
// Repo means the system has no data and reads return empty results.
type RepoConfig struct {
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}

func (c RepoConfig) Configured() bool {
	return c.Repo != ""
}
