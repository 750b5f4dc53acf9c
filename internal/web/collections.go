package web

import (
	"net/http"

	"gitfolio/internal/domain"
	"gitfolio/internal/httputil"
)

// sectionType reads the ?type= query, defaulting to blogs like the
// frontend does.
func sectionType(r *http.Request) (domain.ContentType, error) {
	section := r.URL.Query().Get("type")
	if section == "" {
		section = "blogs"
	}
	return domain.ParseSectionType(section)
}

func GetCollections(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typ, err := sectionType(r)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid type")
			return
		}

		collections, err := handler.service.Collections(r.Context(), handler.repoConfig(r), typ)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"collections": collections})
	}
}

func CreateCollection(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Type        string `json:"type"`
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}

		typ, err := domain.ParseSectionType(body.Type)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid type")
			return
		}

		if err := handler.service.CreateCollection(r.Context(), handler.repoConfig(r), typ, body.ID, body.Name, body.Description); err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// DeleteCollection cascades over the collection's files. The response
// reports per-file outcomes; success means nothing was left behind.
func DeleteCollection(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typ, err := sectionType(r)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid type")
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			httputil.RespondError(w, http.StatusBadRequest, "collection id is required")
			return
		}

		report, err := handler.service.DeleteCollection(r.Context(), handler.repoConfig(r), typ, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{
			"success":   !report.Partial(),
			"succeeded": report.Succeeded,
			"failed":    report.Failed,
		})
	}
}
