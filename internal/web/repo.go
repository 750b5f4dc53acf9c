package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"gitfolio/internal/httputil"
)

// CreateRepo bootstraps a content repository. The frontend follows up
// with a config PUT pointing at the returned target.
func CreateRepo(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			IsPrivate   bool   `json:"isPrivate"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		cfg, err := handler.service.CreateRepository(r.Context(), body.Name, body.Description, body.IsPrivate)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"repo":    cfg.Repo,
			"branch":  cfg.Branch,
		})
	}
}

// ListRepos feeds the project importer with the admin's own repositories.
func ListRepos(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := handler.service.Repositories(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"repos": repos})
	}
}

// ImportRepo builds a project draft from one repository. When the
// repository has no description and the description helper is configured,
// the helper fills it; a helper failure just leaves the field empty.
func ImportRepo(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "owner")
		name := chi.URLParam(r, "repo")

		project, err := handler.service.ImportProject(r.Context(), owner, name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if project.Description == "" && handler.AI.Enabled() {
			description, err := handler.AI.DescribeRepository(r.Context(), project.Title, project.Tags, project.Content)
			if err != nil {
				log.Error().Err(err).Str("repo", owner+"/"+name).Msg("description helper failed, leaving it blank")
			} else {
				project.Description = description
			}
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"project": project})
	}
}

func CheckRepo(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "owner")
		name := chi.URLParam(r, "repo")

		cfg, exists, err := handler.service.CheckRepository(r.Context(), owner, name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !exists {
			httputil.RespondJSON(w, http.StatusOK, map[string]any{"exists": false})
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{
			"exists": true,
			"repo":   cfg.Repo,
			"branch": cfg.Branch,
		})
	}
}
