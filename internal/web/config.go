package web

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"gitfolio/internal/domain"
	"gitfolio/internal/httputil"
)

type configResponse struct {
	Repo   *string `json:"repo"`
	Branch string  `json:"branch"`
}

// GetConfig is public: the frontend needs the repository target to render
// content before anyone logs in.
func GetConfig(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := handler.repoConfig(r)

		res := configResponse{Branch: cfg.Branch}
		if res.Branch == "" {
			res.Branch = "main"
		}
		if cfg.Configured() {
			res.Repo = &cfg.Repo
		}
		httputil.RespondJSON(w, http.StatusOK, res)
	}
}

func PutConfig(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Repo   string `json:"repo"`
			Branch string `json:"branch"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if body.Repo == "" {
			httputil.RespondError(w, http.StatusBadRequest, "repository is required")
			return
		}
		if body.Branch == "" {
			body.Branch = "main"
		}

		cfg := domain.RepoConfig{Repo: body.Repo, Branch: body.Branch}
		if err := handler.Configs.Put(w, r, cfg); err != nil {
			log.Error().Err(err).Msg("could not store the repository config")
			httputil.RespondError(w, http.StatusInternalServerError, "could not store config")
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{
			"repo":    cfg.Repo,
			"branch":  cfg.Branch,
			"success": true,
		})
	}
}
