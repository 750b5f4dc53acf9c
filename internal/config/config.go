// Package config loads process configuration. Values come from the
// environment, with an optional gitfolio.yaml file for local development;
// environment variables win.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Configuration struct {
	// Port the HTTP server listens on.
	Port string
	// BaseURL is the externally visible origin, used to build the OAuth
	// callback address.
	BaseURL string
	// GithubToken is the remote-API access credential. All content
	// operations fail Unauthorized without it.
	GithubToken string
	// GithubAPIURL overrides the hosting API host. Empty means the public
	// endpoint.
	GithubAPIURL string
	// OAuth client pair for the admin login exchange.
	ClientID     string
	ClientSecret string
	// PublicRepo/PublicBranch are the fallback repository target used when
	// no per-admin configuration has been stored yet.
	PublicRepo   string
	PublicBranch string
	// SessionKey signs the session cookies. SessionLifetime bounds how long
	// a login lasts; expiry is checked lazily on read.
	SessionKey      string
	SessionLifetime time.Duration
	// StoreBackend picks the session/config store: "cookie" or "sqlite".
	StoreBackend string
	// DBPath is the sqlite file used when StoreBackend is "sqlite".
	DBPath string
	// MigrationsFolder holds the sqlite store schema migrations.
	MigrationsFolder string
	// CORSOrigins is the comma-separated list of allowed admin origins.
	CORSOrigins string
	// AIAPIKey enables the optional description-generation helper.
	AIAPIKey string
	// AIAPIURL overrides the text-completion endpoint.
	AIAPIURL string
	// Debug enables request logging.
	Debug bool
}

func ReadConfig() (Configuration, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("public_github_branch", "main")
	v.SetDefault("session_lifetime", 7*24*time.Hour)
	v.SetDefault("store_backend", "cookie")
	v.SetDefault("db_path", "gitfolio.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("cors_origins", "http://localhost:3000")

	v.SetConfigName("gitfolio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	v.AutomaticEnv()
	for _, key := range []string{
		"port", "base_url", "github_token", "github_api_url",
		"github_client_id", "github_client_secret",
		"public_github_repo", "public_github_branch",
		"session_key", "session_lifetime", "store_backend", "db_path",
		"migrations_folder", "cors_origins", "ai_api_key", "ai_api_url", "debug",
	} {
		if err := v.BindEnv(key); err != nil {
			return Configuration{}, err
		}
	}

	cfg := Configuration{
		Port:             v.GetString("port"),
		BaseURL:          v.GetString("base_url"),
		GithubToken:      v.GetString("github_token"),
		GithubAPIURL:     v.GetString("github_api_url"),
		ClientID:         v.GetString("github_client_id"),
		ClientSecret:     v.GetString("github_client_secret"),
		PublicRepo:       v.GetString("public_github_repo"),
		PublicBranch:     v.GetString("public_github_branch"),
		SessionKey:       v.GetString("session_key"),
		SessionLifetime:  v.GetDuration("session_lifetime"),
		StoreBackend:     v.GetString("store_backend"),
		DBPath:           v.GetString("db_path"),
		MigrationsFolder: v.GetString("migrations_folder"),
		CORSOrigins:      v.GetString("cors_origins"),
		AIAPIKey:         v.GetString("ai_api_key"),
		AIAPIURL:         v.GetString("ai_api_url"),
		Debug:            v.GetBool("debug"),
	}

	if cfg.SessionKey == "" {
		return cfg, errors.New("session_key must be set")
	}
	return cfg, nil
}
