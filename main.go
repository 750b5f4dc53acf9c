package main

import (
	"encoding/gob"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"gitfolio/internal/ai"
	"gitfolio/internal/config"
	"gitfolio/internal/domain"
	"gitfolio/internal/remote/github"
	core "gitfolio/internal/service/impl"
	"gitfolio/internal/store"
	"gitfolio/internal/store/cookie"
	"gitfolio/internal/store/sqlite"
	"gitfolio/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	_ = godotenv.Load()

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	gob.Register(domain.Session{})
	gob.Register(domain.RepoConfig{})

	secure := strings.HasPrefix(cfg.BaseURL, "https://")

	var sessions store.SessionStore
	var configs store.ConfigStore
	switch cfg.StoreBackend {
	case "cookie":
		sessions, configs = cookie.New(cfg.SessionKey, cfg.SessionLifetime, secure)
	case "sqlite":
		d, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			zero.Fatal().Err(err).Msg("unable to open the store database")
		}
		if err := sqlite.Setup(d, cfg.MigrationsFolder, cfg.DBPath); err != nil {
			zero.Fatal().Err(err).Msg("store migration failed")
		}
		sessions, configs = sqlite.New(d, cfg.SessionLifetime, secure)
		zero.Info().Str("path", cfg.DBPath).Msg("store database ready")
	default:
		zero.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}

	remote := github.New(cfg.GithubToken, cfg.GithubAPIURL, &http.Client{})
	service := core.New(remote)
	assistant := ai.New(cfg.AIAPIKey, cfg.AIAPIURL, &http.Client{})
	if assistant.Enabled() {
		zero.Info().Msg("description helper enabled")
	}

	handler := web.New(&cfg, service, sessions, configs, assistant)
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if cfg.Debug {
		router.Use(middleware.Logger)
	}
	handler.Mount(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	})

	s := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Handler(router),
	}

	zero.Info().Str("port", cfg.Port).Msg("started server")
	if err := s.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
