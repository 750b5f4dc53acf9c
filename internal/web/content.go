package web

import (
	"encoding/json"
	"net/http"

	"gitfolio/internal/domain"
	"gitfolio/internal/httputil"
)

func GetProfile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := handler.service.Profile(r.Context(), handler.repoConfig(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"profile": profile})
	}
}

func GetProjects(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := handler.service.Projects(r.Context(), handler.repoConfig(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"projects": projects})
	}
}

func GetBlogs(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := handler.service.Blogs(r.Context(), handler.repoConfig(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"blogs": blogs})
	}
}

// Push writes one content item. The body carries the item type, its id,
// the item payload, and for moves the collection the item used to live in.
func Push(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Type          string          `json:"type"`
			ID            string          `json:"id"`
			Content       json.RawMessage `json:"content"`
			OldCollection string          `json:"oldCollection"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if body.Type == "" || len(body.Content) == 0 {
			httputil.RespondError(w, http.StatusBadRequest, "missing required fields")
			return
		}

		typ, err := domain.ParseContentType(body.Type)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid type")
			return
		}

		cfg := handler.repoConfig(r)
		ctx := r.Context()

		switch typ {
		case domain.TypeProfile:
			var profile domain.Profile
			if err := json.Unmarshal(body.Content, &profile); err != nil {
				httputil.RespondError(w, http.StatusBadRequest, "malformed profile payload")
				return
			}
			err = handler.service.SaveProfile(ctx, cfg, profile)
		case domain.TypeProject:
			var project domain.Project
			if err := json.Unmarshal(body.Content, &project); err != nil {
				httputil.RespondError(w, http.StatusBadRequest, "malformed project payload")
				return
			}
			project.ID = body.ID
			err = handler.service.SaveProject(ctx, cfg, project, body.OldCollection)
		case domain.TypeBlog:
			var blog domain.BlogPost
			if err := json.Unmarshal(body.Content, &blog); err != nil {
				httputil.RespondError(w, http.StatusBadRequest, "malformed blog payload")
				return
			}
			blog.ID = body.ID
			err = handler.service.SaveBlog(ctx, cfg, blog, body.OldCollection)
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// DeleteItem removes one content item.
func DeleteItem(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Type       string `json:"type"`
			ID         string `json:"id"`
			Collection string `json:"collection"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		typ, err := domain.ParseContentType(body.Type)
		if err != nil || typ == domain.TypeProfile || body.ID == "" {
			httputil.RespondError(w, http.StatusBadRequest, "invalid type or id")
			return
		}

		if err := handler.service.DeleteItem(r.Context(), handler.repoConfig(r), typ, body.ID, body.Collection); err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
